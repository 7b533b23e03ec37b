package components

import (
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Attachment is a collision box that rides along with its owner's body.
// Offset is from the owner's centre to the box's centre.
type Attachment struct {
	Object *resolv.Object
	Offset dmath.Vec2
}

// Follow recentres the box on anchor plus the offset.
func (a *Attachment) Follow(anchor dmath.Vec2) {
	if a.Object == nil {
		return
	}
	a.Object.X = anchor.X + a.Offset.X - a.Object.W/2
	a.Object.Y = anchor.Y + a.Offset.Y - a.Object.H/2
	a.Object.Update()
}

// Center returns the middle of the attached box.
func (a *Attachment) Center() dmath.Vec2 {
	return dmath.Vec2{X: a.Object.X + a.Object.W/2, Y: a.Object.Y + a.Object.H/2}
}

// Overlaps reports whether two boxes intersect. resolv's cell check only
// narrows candidates down to shared cells.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
