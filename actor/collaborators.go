package actor

import (
	"math/rand/v2"

	dmath "github.com/yohamta/donburi/features/math"
)

// Body is the physics body an actor steers. MoveAndSlide moves the body by
// velocity*delta against solid geometry and returns the velocity left after
// sliding along whatever it hit.
type Body interface {
	Position() dmath.Vec2
	MoveAndSlide(velocity dmath.Vec2, delta float64) dmath.Vec2
}

// Target is anything with a position an enemy can chase.
type Target interface {
	Position() dmath.Vec2
}

// WanderController owns the wander countdown and the current wander target.
type WanderController interface {
	TimeLeft() float64
	TargetPosition() dmath.Vec2
	StartWanderTimer(seconds float64)
}

// SoftCollision reports overlap with neighbouring actors and the direction
// that pushes away from them.
type SoftCollision interface {
	IsColliding() bool
	PushVector() dmath.Vec2
}

// Hurtbox is the receiving side of a hit. The invincibility window and the
// hit effect belong to it.
type Hurtbox interface {
	StartInvincibility(seconds float64)
	CreateHitEffect()
}

// Cue plays a named animation, like the hurt blink.
type Cue interface {
	Play(name string)
}

// Sprite is the cosmetic half of an enemy.
type Sprite interface {
	SetFlipH(flip bool)
	SetFrame(frame int)
}

// AnimationTree drives the player's directional blend spaces.
type AnimationTree interface {
	SetBlendPosition(dir dmath.Vec2)
	Travel(state string)
}

// KnockbackSetter is implemented by the sword hitbox so the player can aim it.
type KnockbackSetter interface {
	SetKnockbackVector(v dmath.Vec2)
}

// Input is polled by the player during Move.
type Input interface {
	Strength(action Action) float64
	JustPressed(action Action) bool
}

// Spawner removes the actor from the scene and instances one-shot scenes
// into it. Spawn errors wrap ErrSceneUnavailable.
type Spawner interface {
	Despawn()
	SpawnDeathEffect(at dmath.Vec2) error
	SpawnHurtSound() error
}

// Random is the subset of *rand.Rand the controllers use.
type Random interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a Random backed by a PCG source.
func NewRandom(seed1, seed2 uint64) Random {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Action is a logical input the player reacts to.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionRoll
	ActionAttack
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionRoll:
		return "roll"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

func randRange(r Random, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
