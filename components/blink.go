package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// BlinkData flashes a sprite while its hurtbox is invincible. Alpha is what
// the renderer multiplies the sprite by.
type BlinkData struct {
	Period float32 // seconds per on/off cycle
	Tween  *gween.Tween
	Alpha  float32
}

// Play handles the "start" and "stop" cues.
func (b *BlinkData) Play(name string) {
	switch name {
	case "start":
		b.Tween = gween.New(1, 0, b.Period, ease.Linear)
		b.Alpha = 1
	case "stop":
		b.Tween = nil
		b.Alpha = 1
	}
}

// Active reports whether the sprite is blinking.
func (b *BlinkData) Active() bool {
	return b.Tween != nil
}

// Update advances the blink by dt seconds, wrapping at the end of a cycle.
func (b *BlinkData) Update(dt float32) {
	if b.Tween == nil {
		return
	}
	alpha, done := b.Tween.Update(dt)
	if done {
		b.Tween.Reset()
	}
	// Snap to on/off rather than fading.
	if alpha < 0.5 {
		b.Alpha = 0
	} else {
		b.Alpha = 1
	}
}

var Blink = donburi.NewComponentType[BlinkData]()
