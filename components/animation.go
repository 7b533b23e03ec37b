package components

import (
	"github.com/automoto/actionrpg/assets/animations"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// AnimationData is a small state machine of frame animations. Blend is the
// direction the player's four-way animations face; FlipH mirrors the sprite.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     string
	Animations       map[string]*animations.Animation
	Blend            dmath.Vec2
	FlipH            bool
}

// Travel switches to state, restarting its animation if it was not already
// playing. Unknown states clear the current animation.
func (a *AnimationData) Travel(state string) {
	if a.CurrentState == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentState = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentState = state
	a.CurrentAnimation.Restart()
}

func (a *AnimationData) SetBlendPosition(dir dmath.Vec2) {
	a.Blend = dir
}

func (a *AnimationData) SetFlipH(flip bool) {
	a.FlipH = flip
}

// SetFrame jumps the current animation to frame.
func (a *AnimationData) SetFrame(frame int) {
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.SetFrame(frame)
	}
}

// Frame returns the current frame, 0 with no animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
