package systems

import (
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances blinks and one-shot effects, then removes the
// effects that have played out.
func UpdateEffects(ecs *ecs.ECS) {
	updateBlinks(ecs)
	updateEffectAnimations(ecs)
	updateAutoDestroy(ecs)
}

func updateBlinks(ecs *ecs.ECS) {
	dt := float32(cfg.Physics.TickDelta)
	components.Blink.Each(ecs.World, func(e *donburi.Entry) {
		components.Blink.Get(e).Update(dt)
	})
}

// updateEffectAnimations advances effect animations and fades; effects
// have no controller to do it for them.
func updateEffectAnimations(ecs *ecs.ECS) {
	dt := float32(cfg.Physics.TickDelta)
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e).CurrentAnimation; anim != nil {
			anim.Update()
		}
		fx := components.Effect.Get(e)
		if fx.Fade != nil {
			alpha, _ := fx.Fade.Update(dt)
			fx.Alpha = alpha
		}
	})
}

// updateAutoDestroy handles entities that should be destroyed after duration or animation
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)

		if ad.DestroyOnAnimLoop && e.HasComponent(components.Animation) {
			anim := components.Animation.Get(e)
			if anim.CurrentAnimation != nil && anim.CurrentAnimation.Looped {
				toDestroy = append(toDestroy, e)
				return
			}
		}

		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		factory.Destroy(ecs, e)
	}
}

// UpdateOneShotSounds plays each sound entity once and removes it when the
// sound has had time to finish.
func UpdateOneShotSounds(ecs *ecs.ECS) {
	var done []*donburi.Entry

	components.OneShotSound.Each(ecs.World, func(e *donburi.Entry) {
		s := components.OneShotSound.Get(e)
		if !s.Queued {
			PlaySFX(ecs, s.Sound)
			s.Queued = true
		}
		s.Remaining -= cfg.Physics.TickDelta
		if s.Remaining <= 0 {
			done = append(done, e)
		}
	})

	for _, e := range done {
		factory.Destroy(ecs, e)
	}
}
