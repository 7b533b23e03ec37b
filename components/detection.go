package components

import (
	"github.com/yohamta/donburi"
)

// DetectionZoneData is the circle an enemy watches for the player. The
// attached box bounds the circle for the broadphase. Seen is the player
// currently inside, nil when nobody is.
type DetectionZoneData struct {
	Attachment
	Radius float64
	Seen   *donburi.Entry
}

// CanSeePlayer reports whether a player is inside the zone.
func (d *DetectionZoneData) CanSeePlayer() bool {
	return d.Seen != nil && d.Seen.Valid()
}

var DetectionZone = donburi.NewComponentType[DetectionZoneData]()
