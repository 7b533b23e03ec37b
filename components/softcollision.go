package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SoftCollisionData keeps crowds of enemies from stacking. The soft
// collision system refreshes Colliding and Push every tick.
type SoftCollisionData struct {
	Attachment
	Colliding bool
	Push      dmath.Vec2
}

func (s *SoftCollisionData) IsColliding() bool      { return s.Colliding }
func (s *SoftCollisionData) PushVector() dmath.Vec2 { return s.Push }

var SoftCollision = donburi.NewComponentType[SoftCollisionData]()
