package factory

import (
	"log"

	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/archetypes"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateGrass spawns a tuft of grass the sword can cut. It has a hurtbox
// but no stats: any hit destroys it and leaves a grass effect.
func CreateGrass(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	grass := archetypes.Grass.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	obj.Data = grass
	components.Object.SetValue(grass, components.ObjectData{Object: obj})

	center := dmath.Vec2{X: x + w/2, Y: y + h/2}
	hurt := newAttachment(grass, center, dmath.Vec2{}, w, h, tags.ResolvHurtbox, tags.ResolvGrassHurtbox)
	components.Hurtbox.SetValue(grass, components.HurtboxData{
		Attachment:  hurt,
		Side:        tags.ResolvGrassHurtbox,
		Overlapping: make(map[*resolv.Object]bool),
		OnHit: func(actor.Hit) {
			if _, err := CreateEffect(ecs, cfg.EffectGrass, center); err != nil {
				log.Printf("grass effect: %v", err)
			}
			Destroy(ecs, grass)
		},
	})

	addToSpace(ecs, hurt.Object)
	return grass
}
