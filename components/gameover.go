package components

import "github.com/yohamta/donburi"

// GameOverData tracks the death screen. Elapsed counts ticks since the
// player died so the hint can fade in.
type GameOverData struct {
	Elapsed int
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
