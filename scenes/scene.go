package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options picks what a run plays.
type Options struct {
	Level string // .tmx file under levels/
	Seed  uint64 // 0 picks a seed per run
}
