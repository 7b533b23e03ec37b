package factory

import (
	"math"

	"github.com/automoto/actionrpg/components"
	"github.com/automoto/actionrpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// contactEpsilon absorbs float error once a box has been clipped flush
// against a wall.
const contactEpsilon = 1e-6

// body adapts an entity's collision object to actor.Body. Positions are
// box centres.
type body struct {
	entry *donburi.Entry
}

func (b *body) Position() dmath.Vec2 {
	return components.Object.Get(b.entry).Center()
}

// MoveAndSlide moves along X then Y, stopping flush against solids. A
// component of velocity that was blocked comes back as zero, so the actor
// slides along the wall with whatever is left.
func (b *body) MoveAndSlide(velocity dmath.Vec2, delta float64) dmath.Vec2 {
	if !b.entry.Valid() {
		return velocity
	}
	obj := components.Object.Get(b.entry).Object

	if dx := velocity.X * delta; dx != 0 {
		allowed := clipMove(obj, dx, 0)
		if allowed != dx {
			velocity.X = 0
		}
		obj.X += allowed
		obj.Update()
	}
	if dy := velocity.Y * delta; dy != 0 {
		allowed := clipMove(obj, 0, dy)
		if allowed != dy {
			velocity.Y = 0
		}
		obj.Y += allowed
		obj.Update()
	}

	SyncAttachments(b.entry)
	return velocity
}

// clipMove returns how far obj can travel along a single axis before it
// touches a solid. Solids it already overlaps are ignored so a body spawned
// inside a wall can walk out.
func clipMove(obj *resolv.Object, dx, dy float64) float64 {
	move := dx + dy
	if obj.Space == nil {
		return move
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return move
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		var gap float64
		if dx != 0 {
			if !(obj.Y < solid.Y+solid.H && solid.Y < obj.Y+obj.H) {
				continue
			}
			gap = check.ContactWithObject(solid).X()
		} else {
			if !(obj.X < solid.X+solid.W && solid.X < obj.X+obj.W) {
				continue
			}
			gap = check.ContactWithObject(solid).Y()
		}

		if move > 0 && gap > -contactEpsilon && gap < move {
			move = math.Max(gap, 0)
		}
		if move < 0 && gap < contactEpsilon && gap > move {
			move = math.Min(gap, 0)
		}
	}
	return move
}

// SyncAttachments recentres every box riding on entry onto its body.
func SyncAttachments(entry *donburi.Entry) {
	if !entry.Valid() || !entry.HasComponent(components.Object) {
		return
	}
	center := components.Object.Get(entry).Center()

	if entry.HasComponent(components.Hurtbox) {
		components.Hurtbox.Get(entry).Follow(center)
	}
	if entry.HasComponent(components.Hitbox) {
		components.Hitbox.Get(entry).Follow(center)
	}
	if entry.HasComponent(components.SoftCollision) {
		components.SoftCollision.Get(entry).Follow(center)
	}
	if entry.HasComponent(components.DetectionZone) {
		components.DetectionZone.Get(entry).Follow(center)
	}
}
