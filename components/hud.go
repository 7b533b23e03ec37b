package components

import "github.com/yohamta/donburi"

// HealthUIData mirrors the player's stats as hearts. It is kept up to date
// by the stats change notifications rather than polled.
type HealthUIData struct {
	Hearts    int
	MaxHearts int
}

// SetHearts clamps value into [0, MaxHearts].
func (h *HealthUIData) SetHearts(value int) {
	h.Hearts = min(max(value, 0), h.MaxHearts)
}

// SetMaxHearts changes the cap and clamps the current hearts under it.
func (h *HealthUIData) SetMaxHearts(value int) {
	h.MaxHearts = max(value, 1)
	h.SetHearts(h.Hearts)
}

var HealthUI = donburi.NewComponentType[HealthUIData]()
