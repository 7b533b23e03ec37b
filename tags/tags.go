package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Grass     = donburi.NewTag().SetName("Grass")
	Wall      = donburi.NewTag().SetName("Wall")
	Effect    = donburi.NewTag().SetName("Effect")
	HurtSound = donburi.NewTag().SetName("HurtSound")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvEnemy  = "enemy"

	// Hitboxes carry ResolvHitbox. Hurtboxes carry ResolvHurtbox plus the
	// side they belong to, which is what a hitbox targets.
	ResolvHitbox        = "hitbox"
	ResolvHurtbox       = "hurtbox"
	ResolvPlayerHurtbox = "player_hurtbox"
	ResolvEnemyHurtbox  = "enemy_hurtbox"
	ResolvGrassHurtbox  = "grass_hurtbox"
	ResolvSoftCollision = "soft_collision"
	ResolvDetectionZone = "detection_zone"
)
