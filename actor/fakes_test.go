package actor

import (
	"math/rand/v2"

	dmath "github.com/yohamta/donburi/features/math"
)

// freeBody moves without ever colliding.
type freeBody struct {
	pos   dmath.Vec2
	calls int
}

func (b *freeBody) Position() dmath.Vec2 { return b.pos }

func (b *freeBody) MoveAndSlide(v dmath.Vec2, delta float64) dmath.Vec2 {
	b.calls++
	b.pos = b.pos.Add(v.MulScalar(delta))
	return v
}

// wallBody stops all horizontal motion, as if pressed against a wall.
type wallBody struct {
	freeBody
}

func (b *wallBody) MoveAndSlide(v dmath.Vec2, delta float64) dmath.Vec2 {
	v.X = 0
	return b.freeBody.MoveAndSlide(v, delta)
}

type fakeWander struct {
	timeLeft float64
	target   dmath.Vec2
	started  []float64
}

func (w *fakeWander) TimeLeft() float64          { return w.timeLeft }
func (w *fakeWander) TargetPosition() dmath.Vec2 { return w.target }
func (w *fakeWander) StartWanderTimer(s float64) {
	w.started = append(w.started, s)
	w.timeLeft = s
}

type fakeSoft struct {
	colliding bool
	push      dmath.Vec2
}

func (s *fakeSoft) IsColliding() bool      { return s.colliding }
func (s *fakeSoft) PushVector() dmath.Vec2 { return s.push }

type fakeHurtbox struct {
	invincibility []float64
	hitEffects    int
}

func (h *fakeHurtbox) StartInvincibility(s float64) { h.invincibility = append(h.invincibility, s) }
func (h *fakeHurtbox) CreateHitEffect()             { h.hitEffects++ }

type fakeCue struct{ played []string }

func (c *fakeCue) Play(name string) { c.played = append(c.played, name) }

type fakeSprite struct {
	flipped bool
	frame   int
}

func (s *fakeSprite) SetFlipH(flip bool) { s.flipped = flip }
func (s *fakeSprite) SetFrame(f int)     { s.frame = f }

type fakeSpawner struct {
	despawned    int
	deathEffects []dmath.Vec2
	hurtSounds   int
	err          error
}

func (s *fakeSpawner) Despawn() { s.despawned++ }

func (s *fakeSpawner) SpawnDeathEffect(at dmath.Vec2) error {
	if s.err != nil {
		return s.err
	}
	s.deathEffects = append(s.deathEffects, at)
	return nil
}

func (s *fakeSpawner) SpawnHurtSound() error {
	if s.err != nil {
		return s.err
	}
	s.hurtSounds++
	return nil
}

type fakeTree struct {
	blend   dmath.Vec2
	travels []string
}

func (t *fakeTree) SetBlendPosition(d dmath.Vec2) { t.blend = d }
func (t *fakeTree) Travel(state string)           { t.travels = append(t.travels, state) }

func (t *fakeTree) last() string {
	if len(t.travels) == 0 {
		return ""
	}
	return t.travels[len(t.travels)-1]
}

type fakeInput struct {
	strength map[Action]float64
	pressed  map[Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{strength: map[Action]float64{}, pressed: map[Action]bool{}}
}

func (i *fakeInput) Strength(a Action) float64 { return i.strength[a] }
func (i *fakeInput) JustPressed(a Action) bool { return i.pressed[a] }

type fakeTarget struct{ pos dmath.Vec2 }

func (t fakeTarget) Position() dmath.Vec2 { return t.pos }

type enemyRig struct {
	body    *freeBody
	stats   *Stats
	hurtbox *fakeHurtbox
	soft    *fakeSoft
	wander  *fakeWander
	sprite  *fakeSprite
	blink   *fakeCue
	spawner *fakeSpawner
}

func (r *enemyRig) deps(rnd Random) EnemyDeps {
	return EnemyDeps{
		Body:          r.body,
		Stats:         r.stats,
		Hurtbox:       r.hurtbox,
		SoftCollision: r.soft,
		Wander:        r.wander,
		Sprite:        r.sprite,
		Blink:         r.blink,
		Spawner:       r.spawner,
		Rand:          rnd,
	}
}

func newEnemyRig(maxHealth int) *enemyRig {
	stats, err := NewStats(maxHealth)
	if err != nil {
		panic(err)
	}
	return &enemyRig{
		body:    &freeBody{},
		stats:   stats,
		hurtbox: &fakeHurtbox{},
		soft:    &fakeSoft{},
		wander:  &fakeWander{timeLeft: 1},
		sprite:  &fakeSprite{},
		blink:   &fakeCue{},
		spawner: &fakeSpawner{},
	}
}

func seeded() Random {
	return rand.New(rand.NewPCG(1, 2))
}

// stubRand is a predictable Random. When swap is set the shuffle reverses a
// two element slice, otherwise it leaves the order alone.
type stubRand struct {
	n    int
	f    float64
	swap bool
}

func (r *stubRand) IntN(int) int     { return r.n }
func (r *stubRand) Float64() float64 { return r.f }

func (r *stubRand) Shuffle(n int, swap func(i, j int)) {
	if r.swap && n > 1 {
		swap(0, n-1)
	}
}
