package actor

import dmath "github.com/yohamta/donburi/features/math"

// DefaultHitboxDamage is the damage a hitbox deals unless configured.
const DefaultHitboxDamage = 1

// Hit is one hitbox/hurtbox overlap, consumed as soon as it is applied.
type Hit struct {
	Damage    int
	Knockback dmath.Vec2
}

// Hitbox is the dealing side of combat.
type Hitbox struct {
	Damage          int
	KnockbackVector dmath.Vec2
}

// NewHitbox returns a hitbox with the default damage and no knockback.
func NewHitbox() *Hitbox {
	return &Hitbox{Damage: DefaultHitboxDamage}
}

func (h *Hitbox) SetKnockbackVector(v dmath.Vec2) {
	h.KnockbackVector = v
}

// Hit snapshots the hitbox into a Hit.
func (h *Hitbox) Hit() Hit {
	return Hit{Damage: h.Damage, Knockback: h.KnockbackVector}
}

// HurtPolicy is the per-actor-kind response to being hit.
type HurtPolicy struct {
	KnockbackScale       float64
	InvincibilitySeconds float64
}

// ApplyHit damages stats and returns the knockback the receiver should take.
func ApplyHit(stats *Stats, hit Hit, policy HurtPolicy) dmath.Vec2 {
	stats.Damage(hit.Damage)
	return hit.Knockback.MulScalar(policy.KnockbackScale)
}
