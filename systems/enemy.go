package systems

import (
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs every enemy controller for one tick.
func UpdateEnemies(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.Controller.PhysicsProcess(cfg.Physics.TickDelta)

		if anim := components.Animation.Get(e).CurrentAnimation; anim != nil {
			anim.Update()
		}
	})
}

// UpdateWanderTimers counts every wander timer down.
func UpdateWanderTimers(ecs *ecs.ECS) {
	components.Wander.Each(ecs.World, func(e *donburi.Entry) {
		components.Wander.Get(e).Tick(cfg.Physics.TickDelta)
	})
}
