package systems

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/gamemath"
	"github.com/automoto/actionrpg/systems/factory"
	"github.com/automoto/actionrpg/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateSoftCollisions refreshes every soft collision area. The push points
// away from the first neighbour found overlapping.
func UpdateSoftCollisions(ecs *ecs.ECS) {
	components.SoftCollision.Each(ecs.World, func(e *donburi.Entry) {
		soft := components.SoftCollision.Get(e)
		soft.Colliding = false
		soft.Push = dmath.Vec2{}

		check := soft.Object.Check(0, 0, tags.ResolvSoftCollision)
		if check == nil {
			return
		}
		for _, other := range check.ObjectsByTags(tags.ResolvSoftCollision) {
			if other == soft.Object || !components.Overlaps(soft.Object, other) {
				continue
			}
			soft.Colliding = true
			soft.Push = gamemath.DirectionTo(centerOf(other), soft.Center())
			return
		}
	})
}

// UpdateDetectionZones tells enemies when the player walks into or out of
// their detection circle.
func UpdateDetectionZones(ecs *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(ecs.World)

	components.DetectionZone.Each(ecs.World, func(e *donburi.Entry) {
		zone := components.DetectionZone.Get(e)
		inside := hasPlayer && zoneContains(zone, playerEntry)

		switch {
		case inside && !zone.CanSeePlayer():
			zone.Seen = playerEntry
			if e.HasComponent(components.Enemy) {
				components.Enemy.Get(e).Controller.OnDetectionEnter(factory.NewTarget(playerEntry))
			}
		case !inside && zone.Seen != nil:
			zone.Seen = nil
			if e.HasComponent(components.Enemy) {
				components.Enemy.Get(e).Controller.OnDetectionExit()
			}
		}
	})
}

// zoneContains reports whether the player's body touches the zone circle.
func zoneContains(zone *components.DetectionZoneData, player *donburi.Entry) bool {
	check := zone.Object.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return false
	}
	body := components.Object.Get(player).Object
	for _, obj := range check.ObjectsByTags(tags.ResolvPlayer) {
		if obj == body && circleOverlapsBox(zone.Center(), zone.Radius, obj) {
			return true
		}
	}
	return false
}

func circleOverlapsBox(c dmath.Vec2, radius float64, box *resolv.Object) bool {
	nearest := dmath.Vec2{
		X: gamemath.ClampFloat(c.X, box.X, box.X+box.W),
		Y: gamemath.ClampFloat(c.Y, box.Y, box.Y+box.H),
	}
	return c.Distance(nearest) <= radius
}

func centerOf(obj *resolv.Object) dmath.Vec2 {
	return dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

type pendingHit struct {
	entry *donburi.Entry
	hit   actor.Hit
}

// seenHitboxes is scratch space reused by UpdateHurtboxes.
var seenHitboxes = map[*resolv.Object]bool{}

// UpdateHurtboxes counts invincibility windows down and lands hits. A hitbox
// lands once, on the tick it starts overlapping a vulnerable hurtbox that
// it targets. Invincible hurtboxes do not watch for overlaps at all, so a
// hitbox still inside when the window closes lands again. At most one hit
// lands per hurtbox per tick; hits are delivered after the scan so a
// handler may remove entities.
func UpdateHurtboxes(ecs *ecs.ECS) {
	var hits []pendingHit

	components.Hurtbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hurtbox.Get(e)
		if hb.IsInvincible() {
			hb.Tick(cfg.Physics.TickDelta)
			return
		}

		clear(seenHitboxes)
		var landed bool
		if check := hb.Object.Check(0, 0, tags.ResolvHitbox); check != nil {
			for _, obj := range check.ObjectsByTags(tags.ResolvHitbox) {
				hitbox, ok := liveHitbox(obj, e, hb.Side)
				if !ok || !components.Overlaps(hb.Object, obj) {
					continue
				}
				if hb.Overlapping[obj] {
					seenHitboxes[obj] = true
					continue
				}
				if landed {
					continue
				}
				landed = true
				seenHitboxes[obj] = true
				hits = append(hits, pendingHit{entry: e, hit: hitbox.Hitbox.Hit()})
			}
		}

		clear(hb.Overlapping)
		for obj := range seenHitboxes {
			hb.Overlapping[obj] = true
		}
	})

	for _, p := range hits {
		if !p.entry.Valid() {
			continue
		}
		if hb := components.Hurtbox.Get(p.entry); hb.OnHit != nil {
			hb.OnHit(p.hit)
		}
	}
}

// liveHitbox returns the hitbox behind obj if it is armed, belongs to
// someone other than self and targets side.
func liveHitbox(obj *resolv.Object, self *donburi.Entry, side string) (*components.HitboxData, bool) {
	owner := factory.OwnerOf(obj)
	if owner == nil || owner == self || !owner.Valid() || !owner.HasComponent(components.Hitbox) {
		return nil, false
	}
	hitbox := components.Hitbox.Get(owner)
	if hitbox.Object != obj || !hitbox.Active || !hitbox.Hits(side) {
		return nil, false
	}
	return hitbox, true
}
