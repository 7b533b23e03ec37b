package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/fonts"
	"github.com/automoto/actionrpg/scenes"
	"github.com/automoto/actionrpg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, opts)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	debug := flag.Bool("debug", false, "show hitboxes and hurtboxes")
	level := flag.String("level", "world.tmx", "level to play")
	scale := flag.Float64("scale", 0, "window pixels per game pixel (0 keeps the configured scale)")
	seed := flag.Uint64("seed", 0, "random seed for enemy behaviour (0 picks one per run)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *scale > 0 {
		config.C.Scale = *scale
	}
	config.Debug.ShowHitboxes = *debug
	config.Debug.Seed = *seed

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		log.Fatalf("fonts: %v", err)
	}

	ebiten.SetWindowTitle("Action RPG")
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence; settings are read back by each run
	if err := systems.InitPersistence("actionrpg"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	opts := scenes.Options{Level: *level, Seed: config.Debug.Seed}
	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
