// Package animations steps frame counters for procedurally drawn
// characters and effects. A frame is a phase index the renderer turns
// into a pose (wing span, sword progress, effect radius), not a sprite.
package animations

// Animation advances a phase index from First to Last, one Step every
// SpeedInTps ticks.
type Animation struct {
	First        int
	Last         int
	Step         int     // phases advanced per step
	SpeedInTps   float32 // ticks between steps
	frameCounter float32
	frame        int

	// Looped is set once the phase passes Last. Gameplay reads it as
	// "finished": a roll or swing ends, an effect is removed. It stays set
	// until Restart or the reader clears it.
	Looped bool
	// FreezeOnComplete holds the final phase instead of wrapping, for
	// one-shot effects that fade out after finishing.
	FreezeOnComplete bool
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

// Frame returns the current phase index.
func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to a phase, clamped into [First, Last].
func (a *Animation) SetFrame(frame int) {
	a.frame = min(max(frame, a.First), a.Last)
	a.frameCounter = a.SpeedInTps
}

// Restart rewinds to First and clears Looped.
func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
