package components

import "github.com/yohamta/donburi"

// SettingsData holds the player-facing toggles that survive restarts.
// Dirty is set when a toggle changes and cleared once it is saved.
type SettingsData struct {
	SFXVolume    float64
	Muted        bool
	ShowHitboxes bool
	Fullscreen   bool
	Dirty        bool
}

var Settings = donburi.NewComponentType[SettingsData]()
