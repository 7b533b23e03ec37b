package actor

import (
	"github.com/automoto/actionrpg/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerState is the active behaviour of the player.
type PlayerState int

const (
	PlayerMove PlayerState = iota
	PlayerRoll
	PlayerAttack
)

func (s PlayerState) String() string {
	switch s {
	case PlayerMove:
		return "move"
	case PlayerRoll:
		return "roll"
	case PlayerAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Animation tree states travelled to by the player.
const (
	AnimIdle   = "Idle"
	AnimRun    = "Run"
	AnimRoll   = "Roll"
	AnimAttack = "Attack"
)

// PlayerConfig holds the player's tunables.
type PlayerConfig struct {
	Acceleration   float64
	MaxSpeed       float64
	Friction       float64
	RollSpeed      float64
	RollExitDamp   float64 // velocity multiplier when a roll finishes
	KnockbackDecay float64

	Hurt HurtPolicy
}

// DefaultPlayerConfig returns the player tuning. Incoming knockback is
// applied unscaled.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Acceleration:   500,
		MaxSpeed:       80,
		Friction:       500,
		RollSpeed:      120,
		RollExitDamp:   0.8,
		KnockbackDecay: 200,
		Hurt: HurtPolicy{
			KnockbackScale:       1,
			InvincibilitySeconds: 0.5,
		},
	}
}

// PlayerDeps are the collaborators the player needs. All of them are required.
type PlayerDeps struct {
	Body        Body
	Stats       *Stats
	Hurtbox     Hurtbox
	Input       Input
	Animation   AnimationTree
	SwordHitbox KnockbackSetter
	Blink       Cue
	Spawner     Spawner
}

// Player is the move/roll/attack controller.
type Player struct {
	name string
	cfg  PlayerConfig
	deps PlayerDeps

	state      PlayerState
	velocity   dmath.Vec2
	knockback  dmath.Vec2
	inputDir   dmath.Vec2
	rollVector dmath.Vec2
}

// NewPlayer wires the player to its collaborators. The player starts in Move
// facing down. A missing collaborator is a *ConfigurationError.
func NewPlayer(name string, cfg PlayerConfig, deps PlayerDeps) (*Player, error) {
	err := checkRequired(name,
		requirement{"body", deps.Body != nil},
		requirement{"stats", deps.Stats != nil},
		requirement{"hurtbox", deps.Hurtbox != nil},
		requirement{"input", deps.Input != nil},
		requirement{"animation tree", deps.Animation != nil},
		requirement{"sword hitbox", deps.SwordHitbox != nil},
		requirement{"blink animation", deps.Blink != nil},
		requirement{"spawner", deps.Spawner != nil},
	)
	if err != nil {
		return nil, err
	}

	p := &Player{
		name:       name,
		cfg:        cfg,
		deps:       deps,
		state:      PlayerMove,
		rollVector: dmath.Vec2{X: 0, Y: 1},
	}
	deps.SwordHitbox.SetKnockbackVector(p.rollVector)
	return p, nil
}

func (p *Player) Name() string            { return p.name }
func (p *Player) State() PlayerState      { return p.state }
func (p *Player) Velocity() dmath.Vec2    { return p.velocity }
func (p *Player) Knockback() dmath.Vec2   { return p.knockback }
func (p *Player) RollVector() dmath.Vec2  { return p.rollVector }
func (p *Player) InputVector() dmath.Vec2 { return p.inputDir }
func (p *Player) Config() PlayerConfig    { return p.cfg }

// PhysicsProcess runs one physics tick.
func (p *Player) PhysicsProcess(delta float64) {
	if !p.knockback.IsZero() {
		p.knockback = gamemath.MoveToward(p.knockback, gamemath.Zero, p.cfg.KnockbackDecay*delta)
		p.knockback = p.deps.Body.MoveAndSlide(p.knockback, delta)
	}

	switch p.state {
	case PlayerMove:
		p.moveState(delta)
	case PlayerRoll:
		p.rollState(delta)
	case PlayerAttack:
		p.attackState()
	}
}

func (p *Player) moveState(delta float64) {
	in := p.deps.Input
	raw := dmath.Vec2{
		X: in.Strength(ActionRight) - in.Strength(ActionLeft),
		Y: in.Strength(ActionDown) - in.Strength(ActionUp),
	}
	p.inputDir = gamemath.Normalized(raw)

	if !p.inputDir.IsZero() {
		p.rollVector = p.inputDir
		p.deps.SwordHitbox.SetKnockbackVector(p.inputDir)
		p.deps.Animation.SetBlendPosition(p.inputDir)
		p.deps.Animation.Travel(AnimRun)
		target := p.inputDir.MulScalar(p.cfg.MaxSpeed)
		p.velocity = gamemath.MoveToward(p.velocity, target, p.cfg.Acceleration*delta)
	} else {
		p.deps.Animation.Travel(AnimIdle)
		p.velocity = gamemath.MoveToward(p.velocity, gamemath.Zero, p.cfg.Friction*delta)
	}

	p.velocity = p.deps.Body.MoveAndSlide(p.velocity, delta)

	if in.JustPressed(ActionRoll) {
		p.state = PlayerRoll
	}
	if in.JustPressed(ActionAttack) {
		p.state = PlayerAttack
	}
}

func (p *Player) rollState(delta float64) {
	p.velocity = p.rollVector.MulScalar(p.cfg.RollSpeed)
	p.deps.Animation.Travel(AnimRoll)
	p.velocity = p.deps.Body.MoveAndSlide(p.velocity, delta)
}

func (p *Player) attackState() {
	p.velocity = gamemath.Zero
	p.deps.Animation.Travel(AnimAttack)
}

// RollAnimationFinished ends a roll. Calls outside Roll are ignored.
func (p *Player) RollAnimationFinished() {
	if p.state != PlayerRoll {
		return
	}
	p.velocity = p.velocity.MulScalar(p.cfg.RollExitDamp)
	p.state = PlayerMove
}

// AttackAnimationFinished ends an attack. Calls outside Attack are ignored.
func (p *Player) AttackAnimationFinished() {
	if p.state != PlayerAttack {
		return
	}
	p.state = PlayerMove
}

// OnHurtboxAreaEntered applies a hit to the player. A missing hurt sound is
// returned but does not undo the hit.
func (p *Player) OnHurtboxAreaEntered(hit Hit) error {
	p.knockback = ApplyHit(p.deps.Stats, hit, p.cfg.Hurt)
	p.deps.Hurtbox.StartInvincibility(p.cfg.Hurt.InvincibilitySeconds)
	p.deps.Hurtbox.CreateHitEffect()
	return p.deps.Spawner.SpawnHurtSound()
}

// OnNoHealth removes the player from the scene.
func (p *Player) OnNoHealth() {
	p.deps.Spawner.Despawn()
}

func (p *Player) OnInvincibilityStarted() { p.deps.Blink.Play("start") }
func (p *Player) OnInvincibilityEnded()   { p.deps.Blink.Play("stop") }
