package components

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ID         uuid.UUID
	Controller *actor.Player
	LastState  actor.PlayerState // state at the end of the previous tick
}

var Player = donburi.NewComponentType[PlayerData]()
