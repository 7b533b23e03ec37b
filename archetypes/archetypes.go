package archetypes

import (
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Player carries its sword as its Hitbox.
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Stats,
		components.Hurtbox,
		components.Hitbox,
		components.Animation,
		components.Blink,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Stats,
		components.Hurtbox,
		components.Hitbox,
		components.SoftCollision,
		components.DetectionZone,
		components.Wander,
		components.Animation,
		components.Blink,
	)
	Grass = newArchetype(
		tags.Grass,
		components.Object,
		components.Hurtbox,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Object,
		components.Animation,
		components.AutoDestroy,
	)
	HurtSound = newArchetype(
		tags.HurtSound,
		components.OneShotSound,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HealthUI = newArchetype(
		components.HealthUI,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
