package factory

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/archetypes"
	"github.com/automoto/actionrpg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHealthUI spawns the hearts HUD and binds it to stats, so the hearts
// change exactly when health does.
func CreateHealthUI(ecs *ecs.ECS, stats *actor.Stats) *donburi.Entry {
	ui := archetypes.HealthUI.Spawn(ecs)

	data := components.HealthUIData{}
	data.SetMaxHearts(stats.MaxHealth())
	data.SetHearts(stats.Health())
	components.HealthUI.SetValue(ui, data)

	stats.OnHealthChanged(func(health int) {
		if ui.Valid() {
			components.HealthUI.Get(ui).SetHearts(health)
		}
	})
	stats.OnMaxHealthChanged(func(maxHealth int) {
		if ui.Valid() {
			components.HealthUI.Get(ui).SetMaxHearts(maxHealth)
		}
	})
	return ui
}
