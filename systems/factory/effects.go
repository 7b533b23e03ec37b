package factory

import (
	"github.com/automoto/actionrpg/archetypes"
	"github.com/automoto/actionrpg/assets/animations"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// effectSize is the footprint of an effect, used for drawing only.
const effectSize = 16

var effectSounds = map[string]cfg.SoundID{
	cfg.EffectHit:        cfg.SoundHit,
	cfg.EffectEnemyDeath: cfg.SoundEnemyDeath,
	cfg.EffectGrass:      cfg.SoundGrass,
}

// CreateEffect spawns a one-shot effect centred on at. It plays its
// animation once and removes itself. Effects never join the collision
// space. An unknown kind wraps actor.ErrSceneUnavailable.
func CreateEffect(ecs *ecs.ECS, kind string, at dmath.Vec2) (*donburi.Entry, error) {
	def, ok := cfg.CharacterAnimations["effect"][kind]
	if !ok {
		return nil, unavailable("effect " + kind)
	}

	e := archetypes.Effect.Spawn(ecs)

	obj := resolv.NewObject(at.X-effectSize/2, at.Y-effectSize/2, effectSize, effectSize)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	anim.FreezeOnComplete = true
	components.Animation.SetValue(e, components.AnimationData{
		CurrentAnimation: anim,
		CurrentState:     kind,
		Animations:       map[string]*animations.Animation{kind: anim},
	})

	effect := components.EffectData{Kind: kind, Alpha: 1}
	if kind == cfg.EffectEnemyDeath && cfg.Combat.FadeSeconds > 0 {
		effect.Fade = gween.New(1, 0, float32(cfg.Combat.FadeSeconds), ease.InQuad)
	}
	components.Effect.SetValue(e, effect)

	components.AutoDestroy.SetValue(e, components.AutoDestroyData{
		FramesRemaining:   -1,
		DestroyOnAnimLoop: true,
	})

	if sound, ok := effectSounds[kind]; ok {
		components.QueueSFX(ecs.World, sound)
	}
	return e, nil
}
