package components

import (
	"slices"

	"github.com/automoto/actionrpg/actor"
	"github.com/yohamta/donburi"
)

// HitboxData is the dealing side of combat. Targets lists the hurtbox tags
// this box can damage; Active gates it, so a sword only cuts mid-swing.
type HitboxData struct {
	Attachment
	Hitbox  *actor.Hitbox
	Owner   *donburi.Entry
	Targets []string
	Active  bool
}

// Hits reports whether the hitbox damages hurtboxes carrying tag.
func (h *HitboxData) Hits(tag string) bool {
	return slices.Contains(h.Targets, tag)
}

var Hitbox = donburi.NewComponentType[HitboxData]()
