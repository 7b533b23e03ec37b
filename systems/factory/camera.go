package factory

import (
	"github.com/automoto/actionrpg/archetypes"
	"github.com/automoto/actionrpg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, at dmath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: at})
	return camera
}
