package components

import (
	"github.com/automoto/actionrpg/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectData is a one-shot visual left in the level, like a hit spark or
// the puff a bat leaves when it dies. Fade, when set, drives Alpha.
type EffectData struct {
	Kind  string // config.Effect*
	Fade  *gween.Tween
	Alpha float32
}

var Effect = donburi.NewComponentType[EffectData]()

// AutoDestroyData marks entities that should be destroyed after a duration or animation
type AutoDestroyData struct {
	FramesRemaining   int  // frames until destruction (-1 = use animation)
	DestroyOnAnimLoop bool // destroy when animation loops
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// OneShotSoundData is a sound that exists as its own entity, like the
// player's hurt sound, and removes itself once it has played out.
type OneShotSoundData struct {
	Sound     config.SoundID
	Queued    bool
	Remaining float64 // seconds until the entity is removed
}

var OneShotSound = donburi.NewComponentType[OneShotSoundData]()
