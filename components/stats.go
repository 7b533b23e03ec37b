package components

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/yohamta/donburi"
)

// StatsData points at the stats the controller was built with so both see
// the same health.
type StatsData struct {
	*actor.Stats
}

var Stats = donburi.NewComponentType[StatsData]()
