package components

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	ID         uuid.UUID
	Kind       string // key into config.Enemy.Types
	Controller *actor.Enemy
}

var Enemy = donburi.NewComponentType[EnemyData]()
