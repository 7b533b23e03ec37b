package factory

import (
	"github.com/automoto/actionrpg/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// newAttachment creates a w*h box owned by entry, centred offset away from
// anchor. obj.Data points back at the owner so overlap checks can find it.
func newAttachment(entry *donburi.Entry, anchor, offset dmath.Vec2, w, h float64, resolvTags ...string) components.Attachment {
	obj := resolv.NewObject(0, 0, w, h, resolvTags...)
	obj.Data = entry
	a := components.Attachment{Object: obj, Offset: offset}
	a.Follow(anchor)
	return a
}

// OwnerOf returns the entity a collision object belongs to.
func OwnerOf(obj *resolv.Object) *donburi.Entry {
	entry, _ := obj.Data.(*donburi.Entry)
	return entry
}

// objectsOf lists every collision object belonging to entry.
func objectsOf(entry *donburi.Entry) []*resolv.Object {
	var objs []*resolv.Object
	if entry.HasComponent(components.Object) {
		objs = append(objs, components.Object.Get(entry).Object)
	}
	if entry.HasComponent(components.Hurtbox) {
		objs = append(objs, components.Hurtbox.Get(entry).Object)
	}
	if entry.HasComponent(components.Hitbox) {
		objs = append(objs, components.Hitbox.Get(entry).Object)
	}
	if entry.HasComponent(components.SoftCollision) {
		objs = append(objs, components.SoftCollision.Get(entry).Object)
	}
	if entry.HasComponent(components.DetectionZone) {
		objs = append(objs, components.DetectionZone.Get(entry).Object)
	}
	return objs
}
