package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
}

// NewGameOverScene creates a new game over scene. Restarting replays opts.
func NewGameOverScene(sc SceneChanger, opts Options) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts}
}

func (gs *GameOverScene) Update() error {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	return nil
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.opts)
	}

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
