package systems

import (
	"math"

	"github.com/automoto/actionrpg/components"
	"github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping the view inside
// the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	target := components.Object.Get(playerEntry).Center()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	target.X = clampAxis(target.X, float64(config.C.Width), float64(levelData.CurrentLevel.Width))
	target.Y = clampAxis(target.Y, float64(config.C.Height), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps a camera centre far enough from the level edges that the
// level fills the screen. A level narrower than the screen stays centred.
func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
