package systems

import (
	"log"

	"github.com/automoto/actionrpg/components"
	"github.com/automoto/actionrpg/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeDeaths routes NoHealth events to the controller of the entity
// that ran out of health. Call it once per world.
func SubscribeDeaths(w donburi.World) {
	components.NoHealthEvent.Subscribe(w, OnNoHealth)
}

// OnNoHealth lets the dead entity's controller clean up after itself.
func OnNoHealth(w donburi.World, ev components.NoHealth) {
	e := ev.Entry
	if e == nil || !e.Valid() {
		return
	}

	switch {
	case e.HasComponent(tags.Player):
		components.Player.Get(e).Controller.OnNoHealth()
		components.PlayerDiedEvent.Publish(w, components.PlayerDied{})
	case e.HasComponent(components.Enemy):
		enemy := components.Enemy.Get(e)
		if err := enemy.Controller.OnNoHealth(); err != nil {
			log.Printf("enemy %s died: %v", enemy.ID, err)
		}
	}
}

// UpdateDeaths handles everything that ran out of health this tick.
func UpdateDeaths(ecs *ecs.ECS) {
	components.NoHealthEvent.ProcessEvents(ecs.World)
	components.PlayerDiedEvent.ProcessEvents(ecs.World)
}
