package components

import (
	cfg "github.com/automoto/actionrpg/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's state for all actions.
// Strength is the analog value in [0, 1]; digital bindings report 0 or 1.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Strength [cfg.ActionCount]float64
}

var Input = donburi.NewComponentType[InputData]()
