package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NoHealth is published when an actor's health reaches zero. It is handled
// after the tick's combat so a death never interrupts a hit mid-resolution.
type NoHealth struct {
	Entry *donburi.Entry
}

var NoHealthEvent = events.NewEventType[NoHealth]()

// PlayerDied is published once the player has been removed from the level.
type PlayerDied struct{}

var PlayerDiedEvent = events.NewEventType[PlayerDied]()
