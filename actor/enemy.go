package actor

import (
	"github.com/automoto/actionrpg/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// EnemyState is the active behaviour of an enemy.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyWander
	EnemyChase
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyWander:
		return "wander"
	case EnemyChase:
		return "chase"
	default:
		return "unknown"
	}
}

// EnemyConfig holds the tunables of a wandering, chasing enemy.
type EnemyConfig struct {
	Acceleration      float64
	MaxSpeed          float64
	Friction          float64
	WanderTargetRange float64

	KnockbackDecay    float64 // units/sec knockback loses regardless of state
	SoftCollisionPush float64

	WanderTimeMin float64
	WanderTimeMax float64

	SpriteFrames int // idle frames to randomise the starting frame over

	Hurt HurtPolicy
}

// DefaultEnemyConfig returns the bat tuning.
func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Acceleration:      300,
		MaxSpeed:          50,
		Friction:          200,
		WanderTargetRange: 4,
		KnockbackDecay:    200,
		SoftCollisionPush: 400,
		WanderTimeMin:     1,
		WanderTimeMax:     3,
		SpriteFrames:      4,
		Hurt: HurtPolicy{
			KnockbackScale:       120,
			InvincibilitySeconds: 0.4,
		},
	}
}

// EnemyDeps are the collaborators an enemy needs. All of them are required.
type EnemyDeps struct {
	Body          Body
	Stats         *Stats
	Hurtbox       Hurtbox
	SoftCollision SoftCollision
	Wander        WanderController
	Sprite        Sprite
	Blink         Cue
	Spawner       Spawner
	Rand          Random
}

// Enemy is the idle/wander/chase controller.
type Enemy struct {
	name string
	cfg  EnemyConfig
	deps EnemyDeps

	state     EnemyState
	velocity  dmath.Vec2
	knockback dmath.Vec2
	target    Target
}

// NewEnemy wires an enemy to its collaborators, fills its health and picks a
// starting state. A missing collaborator is a *ConfigurationError.
func NewEnemy(name string, cfg EnemyConfig, deps EnemyDeps) (*Enemy, error) {
	err := checkRequired(name,
		requirement{"body", deps.Body != nil},
		requirement{"stats", deps.Stats != nil},
		requirement{"hurtbox", deps.Hurtbox != nil},
		requirement{"soft collision", deps.SoftCollision != nil},
		requirement{"wander controller", deps.Wander != nil},
		requirement{"sprite", deps.Sprite != nil},
		requirement{"blink animation", deps.Blink != nil},
		requirement{"spawner", deps.Spawner != nil},
		requirement{"random", deps.Rand != nil},
	)
	if err != nil {
		return nil, err
	}

	e := &Enemy{name: name, cfg: cfg, deps: deps}
	deps.Stats.Refill()
	if cfg.SpriteFrames > 0 {
		deps.Sprite.SetFrame(deps.Rand.IntN(cfg.SpriteFrames))
	}
	e.state = e.pickRandomState(EnemyIdle, EnemyWander)
	return e, nil
}

func (e *Enemy) Name() string             { return e.name }
func (e *Enemy) State() EnemyState        { return e.state }
func (e *Enemy) Velocity() dmath.Vec2     { return e.velocity }
func (e *Enemy) Knockback() dmath.Vec2    { return e.knockback }
func (e *Enemy) Target() Target           { return e.target }
func (e *Enemy) Config() EnemyConfig      { return e.cfg }
func (e *Enemy) SetVelocity(v dmath.Vec2) { e.velocity = v }

// PhysicsProcess runs one physics tick.
func (e *Enemy) PhysicsProcess(delta float64) {
	e.knockback = gamemath.MoveToward(e.knockback, gamemath.Zero, e.cfg.KnockbackDecay*delta)
	e.knockback = e.deps.Body.MoveAndSlide(e.knockback, delta)

	switch e.state {
	case EnemyIdle:
		e.velocity = gamemath.MoveToward(e.velocity, gamemath.Zero, e.cfg.Friction*delta)
		if e.wanderTimerExpired() {
			e.updateWander()
		}
	case EnemyWander:
		if e.wanderTimerExpired() {
			e.updateWander()
		}
		e.steerToWanderTarget(delta)
		if e.deps.Body.Position().Distance(e.deps.Wander.TargetPosition()) <= e.cfg.WanderTargetRange {
			e.updateWander()
		}
	case EnemyChase:
		if e.target == nil {
			e.velocity = gamemath.MoveToward(e.velocity, gamemath.Zero, e.cfg.Friction*delta)
			break
		}
		e.accelerateTowardsPoint(e.target.Position(), delta)
	}

	if e.deps.SoftCollision.IsColliding() {
		push := e.deps.SoftCollision.PushVector().MulScalar(delta * e.cfg.SoftCollisionPush)
		e.velocity = e.velocity.Add(push)
	}

	e.velocity = e.deps.Body.MoveAndSlide(e.velocity, delta)
}

// OnDetectionEnter starts chasing target.
func (e *Enemy) OnDetectionEnter(target Target) {
	e.state = EnemyChase
	e.target = target
}

// OnDetectionExit drops the target and goes idle.
func (e *Enemy) OnDetectionExit() {
	e.state = EnemyIdle
	e.target = nil
}

// OnHurtboxAreaEntered applies a hit to this enemy.
func (e *Enemy) OnHurtboxAreaEntered(hit Hit) {
	e.knockback = ApplyHit(e.deps.Stats, hit, e.cfg.Hurt)
	e.deps.Hurtbox.CreateHitEffect()
	e.deps.Hurtbox.StartInvincibility(e.cfg.Hurt.InvincibilitySeconds)
}

// OnNoHealth removes the enemy and leaves a death effect where it was.
// The returned error is informational: the enemy is gone either way.
func (e *Enemy) OnNoHealth() error {
	pos := e.deps.Body.Position()
	e.deps.Spawner.Despawn()
	return e.deps.Spawner.SpawnDeathEffect(pos)
}

func (e *Enemy) OnInvincibilityStarted() { e.deps.Blink.Play("start") }
func (e *Enemy) OnInvincibilityEnded()   { e.deps.Blink.Play("stop") }

func (e *Enemy) wanderTimerExpired() bool {
	return e.deps.Wander.TimeLeft() == 0
}

func (e *Enemy) updateWander() {
	e.state = e.pickRandomState(EnemyIdle, EnemyWander)
	e.deps.Wander.StartWanderTimer(randRange(e.deps.Rand, e.cfg.WanderTimeMin, e.cfg.WanderTimeMax))
}

// steerToWanderTarget eases toward the wander point; the step shrinks as the
// enemy gets closer so it settles instead of orbiting.
func (e *Enemy) steerToWanderTarget(delta float64) {
	pos := e.deps.Body.Position()
	target := e.deps.Wander.TargetPosition()
	desired := gamemath.DirectionTo(pos, target).MulScalar(e.cfg.MaxSpeed)
	e.velocity = gamemath.MoveToward(e.velocity, desired, pos.Distance(target)*delta)
}

func (e *Enemy) accelerateTowardsPoint(point dmath.Vec2, delta float64) {
	dir := gamemath.DirectionTo(e.deps.Body.Position(), point)
	e.velocity = gamemath.MoveToward(e.velocity, dir.MulScalar(e.cfg.MaxSpeed), e.cfg.Acceleration*delta)
	e.deps.Sprite.SetFlipH(e.velocity.X < 0)
}

// pickRandomState shuffles the candidates and takes the first, so each is
// equally likely.
func (e *Enemy) pickRandomState(candidates ...EnemyState) EnemyState {
	states := append([]EnemyState(nil), candidates...)
	e.deps.Rand.Shuffle(len(states), func(i, j int) {
		states[i], states[j] = states[j], states[i]
	})
	return states[0]
}
