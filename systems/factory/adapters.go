package factory

import (
	"fmt"
	"log"

	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// The adapters below hand controllers a view of their entity. They hold
// the entry and fetch components per call, and turn into no-ops once the
// entity is gone.

type spawner struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

func (s *spawner) Despawn() {
	Destroy(s.ecs, s.entry)
}

func (s *spawner) SpawnDeathEffect(at dmath.Vec2) error {
	_, err := CreateEffect(s.ecs, cfg.EffectEnemyDeath, at)
	return err
}

func (s *spawner) SpawnHurtSound() error {
	_, err := CreateHurtSound(s.ecs)
	return err
}

type hurtbox struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

func (h *hurtbox) StartInvincibility(seconds float64) {
	if h.entry.Valid() {
		components.Hurtbox.Get(h.entry).StartInvincibility(seconds)
	}
}

func (h *hurtbox) CreateHitEffect() {
	if !h.entry.Valid() {
		return
	}
	at := components.Hurtbox.Get(h.entry).Center()
	if _, err := CreateEffect(h.ecs, cfg.EffectHit, at); err != nil {
		log.Printf("hit effect: %v", err)
	}
}

type blink struct {
	entry *donburi.Entry
}

func (b *blink) Play(name string) {
	if b.entry.Valid() {
		components.Blink.Get(b.entry).Play(name)
	}
}

// animation serves as both actor.AnimationTree and actor.Sprite.
type animation struct {
	entry *donburi.Entry
}

func (a *animation) data() *components.AnimationData {
	if !a.entry.Valid() {
		return &components.AnimationData{}
	}
	return components.Animation.Get(a.entry)
}

func (a *animation) SetBlendPosition(dir dmath.Vec2) { a.data().SetBlendPosition(dir) }
func (a *animation) Travel(state string)             { a.data().Travel(state) }
func (a *animation) SetFlipH(flip bool)              { a.data().SetFlipH(flip) }
func (a *animation) SetFrame(frame int)              { a.data().SetFrame(frame) }

type wander struct {
	entry *donburi.Entry
}

func (w *wander) TimeLeft() float64 {
	if !w.entry.Valid() {
		return 0
	}
	return components.Wander.Get(w.entry).TimeLeft()
}

func (w *wander) TargetPosition() dmath.Vec2 {
	if !w.entry.Valid() {
		return dmath.Vec2{}
	}
	return components.Wander.Get(w.entry).TargetPosition()
}

func (w *wander) StartWanderTimer(seconds float64) {
	if w.entry.Valid() {
		components.Wander.Get(w.entry).StartWanderTimer(seconds)
	}
}

type softCollision struct {
	entry *donburi.Entry
}

func (s *softCollision) IsColliding() bool {
	return s.entry.Valid() && components.SoftCollision.Get(s.entry).IsColliding()
}

func (s *softCollision) PushVector() dmath.Vec2 {
	if !s.entry.Valid() {
		return dmath.Vec2{}
	}
	return components.SoftCollision.Get(s.entry).PushVector()
}

// input reads the global input singleton for the player.
type input struct {
	world donburi.World
}

func (in *input) state() (*components.InputData, bool) {
	entry, ok := components.Input.First(in.world)
	if !ok {
		return nil, false
	}
	return components.Input.Get(entry), true
}

func (in *input) Strength(action actor.Action) float64 {
	data, ok := in.state()
	if !ok {
		return 0
	}
	return data.Strength[cfg.ActorActions[action]]
}

func (in *input) JustPressed(action actor.Action) bool {
	data, ok := in.state()
	if !ok {
		return false
	}
	id := cfg.ActorActions[action]
	return data.Current[id] && !data.Previous[id]
}

// entityTarget lets an enemy chase another entity's body.
type entityTarget struct {
	entry *donburi.Entry
	last  dmath.Vec2
}

// Position is the entity's centre, or where it was last seen once gone.
func (t *entityTarget) Position() dmath.Vec2 {
	if t.entry.Valid() {
		t.last = components.Object.Get(t.entry).Center()
	}
	return t.last
}

// NewTarget wraps entry as something an enemy can chase.
func NewTarget(entry *donburi.Entry) actor.Target {
	t := &entityTarget{entry: entry}
	t.Position()
	return t
}

// Destroy removes entry and all of its collision objects.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range objectsOf(entry) {
			if obj != nil && obj.Space != nil {
				space.Remove(obj)
			}
		}
	}
	ecs.World.Remove(entry.Entity())
}

func unavailable(what string) error {
	return fmt.Errorf("%s: %w", what, actor.ErrSceneUnavailable)
}
