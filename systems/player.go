package systems

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the player controller for one tick, then keeps the
// animation and the sword in step with whatever state it ended in.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		ctrl := player.Controller

		ctrl.PhysicsProcess(cfg.Physics.TickDelta)

		if state := ctrl.State(); state != player.LastState {
			switch state {
			case actor.PlayerRoll:
				PlaySFX(ecs, cfg.SoundRoll)
			case actor.PlayerAttack:
				PlaySFX(ecs, cfg.SoundSwipe)
			}
			player.LastState = state
		}

		updatePlayerAnimation(e, ctrl)
		updateSword(e, ctrl)
	})
}

// updateSword points the sword along the facing and arms it only while
// attacking.
func updateSword(e *donburi.Entry, ctrl *actor.Player) {
	sword := components.Hitbox.Get(e)
	sword.Offset = ctrl.RollVector().MulScalar(cfg.Player.SwordReach)
	sword.Active = ctrl.State() == actor.PlayerAttack
	sword.Follow(components.Object.Get(e).Center())
}

// updatePlayerAnimation advances the current animation and reports the end
// of a roll or an attack back to the controller.
func updatePlayerAnimation(e *donburi.Entry, ctrl *actor.Player) {
	animData := components.Animation.Get(e)
	anim := animData.CurrentAnimation
	if anim == nil {
		return
	}
	anim.Update()
	if !anim.Looped {
		return
	}
	anim.Looped = false

	switch animData.CurrentState {
	case actor.AnimRoll:
		ctrl.RollAnimationFinished()
	case actor.AnimAttack:
		ctrl.AttackAnimationFinished()
	}
}
