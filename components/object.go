package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObjectData is the physics body of an entity. Its position is the
// top-left of the box; actors reason about the centre.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the box.
func (o ObjectData) Center() dmath.Vec2 {
	return dmath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the box so its middle sits at c.
func (o ObjectData) SetCenter(c dmath.Vec2) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space every object lives in.
var Space = donburi.NewComponentType[resolv.Space]()
