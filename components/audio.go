package components

import (
	cfg "github.com/automoto/actionrpg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

// QueueSFX asks the audio system to play sound on its next update. It is a
// no-op in worlds without audio, like most tests.
func QueueSFX(w donburi.World, sound cfg.SoundID) {
	entry, ok := Audio.First(w)
	if !ok {
		return
	}
	a := Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, sound)
}
