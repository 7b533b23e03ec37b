package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/actionrpg/assets"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/systems"
	"github.com/automoto/actionrpg/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// deathScreenDelay is how many ticks the world keeps running after the
// player dies, so the death effect gets to play.
const deathScreenDelay = 45

// WorldScene is a run through one level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
	err          error

	// sinceDeath counts ticks after the player died; 0 while alive.
	sinceDeath int
}

// NewWorldScene creates a new run with opts.
func NewWorldScene(sc SceneChanger, opts Options) *WorldScene {
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(func() { ws.err = ws.configure() })
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()

	if ws.sinceDeath > 0 {
		ws.sinceDeath++
		if ws.sinceDeath > deathScreenDelay {
			ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.opts))
		}
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() error {
	systems.PreloadAllSFX()

	level, err := assets.NewLevelLoader().LoadLevel(ws.opts.Level)
	if err != nil {
		return err
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with the pause check. Detection and soft
	// collision are sampled before the controllers move.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWanderTimers))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSoftCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDetectionZones))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHurtboxes))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateOneShotSounds))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Systems that run even when paused
	ecs.AddSystem(systems.UpdateSettings)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	systems.GetOrCreateAudio(ws.ecs)
	saved, _ := systems.LoadSettings()
	settings := systems.GetOrCreateSettings(ws.ecs)
	*settings = systems.SettingsFrom(saved)
	systems.ApplySettings(ws.ecs, settings)

	systems.SubscribeDeaths(ws.ecs.World)
	components.PlayerDiedEvent.Subscribe(ws.ecs.World, func(donburi.World, components.PlayerDied) {
		if ws.sinceDeath == 0 {
			ws.sinceDeath = 1
		}
	})

	factory.CreateLevel(ws.ecs, &level)
	factory.CreateSpace(ws.ecs, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)

	seed := ws.opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	player, err := factory.PopulateLevel(ws.ecs, &level, seed)
	if err != nil {
		return fmt.Errorf("populate %s: %w", level.Name, err)
	}
	factory.CreateHealthUI(ws.ecs, components.Stats.Get(player).Stats)

	spawn := level.PlayerSpawns[0]
	factory.CreateCamera(ws.ecs, dmath.Vec2{X: spawn.X, Y: spawn.Y})

	log.Printf("run started on %s with seed %d", level.Name, seed)
	return nil
}
