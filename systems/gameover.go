package systems

import (
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// gameOverHintDelay is how many ticks the death screen waits before it
// takes a restart, so a held attack button doesn't skip it.
const gameOverHintDelay = 30

// NewUpdateGameOver creates an UpdateGameOver system that starts a new run
// when the player confirms.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		gameOver.Elapsed++
		if gameOver.Elapsed < gameOverHintDelay {
			return
		}
		if IsJustPressed(e.World, cfg.ActionMenuSelect) {
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.GameOver.OverlayColor, false)

	drawCentered(screen, cfg.GameOver.Title, fonts.Title.Get(), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)
	if gameOver.Elapsed >= gameOverHintDelay {
		drawCentered(screen, cfg.GameOver.Hint, fonts.HUD.Get(), int(cfg.GameOver.HintY), cfg.GameOver.TextColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}
