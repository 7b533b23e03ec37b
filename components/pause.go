package components

import "github.com/yohamta/donburi"

// PauseData stores whether gameplay is frozen.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
