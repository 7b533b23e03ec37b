package components

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// WanderData keeps an enemy roaming around where it spawned. Target is
// re-rolled within Range of Home whenever the timer runs out.
type WanderData struct {
	Home   dmath.Vec2
	Target dmath.Vec2
	Range  float64
	Timer  float64 // seconds left, 0 once expired
	Rand   actor.Random
}

// TimeLeft, TargetPosition and StartWanderTimer make WanderData an
// actor.WanderController.
func (w *WanderData) TimeLeft() float64          { return w.Timer }
func (w *WanderData) TargetPosition() dmath.Vec2 { return w.Target }

func (w *WanderData) StartWanderTimer(seconds float64) {
	w.Timer = max(seconds, 0)
}

// PickTarget rolls a new point in the square of half-width Range around Home.
func (w *WanderData) PickTarget() {
	if w.Rand == nil {
		w.Target = w.Home
		return
	}
	w.Target = dmath.Vec2{
		X: w.Home.X + (w.Rand.Float64()*2-1)*w.Range,
		Y: w.Home.Y + (w.Rand.Float64()*2-1)*w.Range,
	}
}

// Tick counts the timer down. When it runs out a new target is picked and
// the timer stays at 0 until the controller restarts it.
func (w *WanderData) Tick(delta float64) {
	if w.Timer == 0 {
		return
	}
	w.Timer -= delta
	if w.Timer <= 0 {
		w.Timer = 0
		w.PickTarget()
	}
}

var Wander = donburi.NewComponentType[WanderData]()
