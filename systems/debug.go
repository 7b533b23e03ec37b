package systems

import (
	"image/color"

	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in the space when hitboxes are
// switched on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowHitboxes {
		return
	}

	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if !v.visible(obj) {
			continue
		}

		var c color.Color = color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvHitbox):
			c = cfg.UI.HitboxColor
		case obj.HasTags(tags.ResolvHurtbox):
			c = cfg.UI.HurtboxColor
		case obj.HasTags(tags.ResolvDetectionZone):
			c = color.RGBA{255, 255, 0, 60}
		case obj.HasTags(tags.ResolvSoftCollision):
			c = color.RGBA{255, 128, 0, 120}
		}

		x := float32(obj.X + v.offset.X)
		y := float32(obj.Y + v.offset.Y)
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
	}

	// Detection zones are circles; the box above is only their broadphase.
	components.DetectionZone.Each(ecs.World, func(e *donburi.Entry) {
		zone := components.DetectionZone.Get(e)
		at := zone.Center()
		vector.StrokeCircle(screen, float32(at.X+v.offset.X), float32(at.Y+v.offset.Y),
			float32(zone.Radius), 1, color.RGBA{255, 255, 0, 120}, true)
	})
}
