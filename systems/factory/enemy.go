package factory

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/archetypes"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrUnknownEnemyType is returned for a kind missing from config.Enemy.Types.
var ErrUnknownEnemyType = errors.New("unknown enemy type")

// CreateEnemy spawns an enemy of kind with its body centred on at. rnd
// drives the enemy's state picks and wander targets.
func CreateEnemy(ecs *ecs.ECS, kind string, at dmath.Vec2, rnd actor.Random) (*donburi.Entry, error) {
	t, ok := cfg.Enemy.Types[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyType, kind)
	}

	id := uuid.New()
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(at.X-t.BodyWidth/2, at.Y-t.BodyHeight/2, t.BodyWidth, t.BodyHeight, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	stats, err := actor.NewStats(t.MaxHealth)
	if err != nil {
		Destroy(ecs, enemy)
		return nil, fmt.Errorf("%s %s stats: %w", kind, id, err)
	}
	components.Stats.SetValue(enemy, components.StatsData{Stats: stats})

	// Bats fly: the hurtbox and hitbox sit above the shadow the body marks.
	boxOffset := dmath.Vec2{Y: -(t.HurtboxHeight - t.BodyHeight) / 2}
	hurt := newAttachment(enemy, at, boxOffset, t.HurtboxWidth, t.HurtboxHeight,
		tags.ResolvHurtbox, tags.ResolvEnemyHurtbox)
	components.Hurtbox.SetValue(enemy, components.HurtboxData{
		Attachment:  hurt,
		Side:        tags.ResolvEnemyHurtbox,
		Overlapping: make(map[*resolv.Object]bool),
	})

	hit := actor.NewHitbox()
	hit.Damage = t.Damage
	hitBox := newAttachment(enemy, at, boxOffset, t.HitboxWidth, t.HitboxHeight, tags.ResolvHitbox)
	components.Hitbox.SetValue(enemy, components.HitboxData{
		Attachment: hitBox,
		Hitbox:     hit,
		Owner:      enemy,
		Targets:    []string{tags.ResolvPlayerHurtbox},
		Active:     true,
	})

	soft := newAttachment(enemy, at, dmath.Vec2{}, t.SoftSize, t.SoftSize, tags.ResolvSoftCollision)
	components.SoftCollision.SetValue(enemy, components.SoftCollisionData{Attachment: soft})

	zone := newAttachment(enemy, at, dmath.Vec2{}, t.DetectionRadius*2, t.DetectionRadius*2, tags.ResolvDetectionZone)
	components.DetectionZone.SetValue(enemy, components.DetectionZoneData{Attachment: zone, Radius: t.DetectionRadius})

	wanderData := components.WanderData{Home: at, Range: t.WanderRange, Rand: rnd}
	wanderData.PickTarget()
	components.Wander.SetValue(enemy, wanderData)

	animData, err := GenerateAnimations(kind, "Fly")
	if err != nil {
		animData, err = GenerateAnimations("bat", "Fly")
	}
	if err != nil {
		Destroy(ecs, enemy)
		return nil, fmt.Errorf("%s %s: %w", kind, id, err)
	}
	components.Animation.SetValue(enemy, animData)
	components.Blink.SetValue(enemy, components.BlinkData{Period: float32(cfg.Combat.BlinkPeriod), Alpha: 1})

	ctrl, err := actor.NewEnemy(kind+" "+id.String(), t.Tuning(), actor.EnemyDeps{
		Body:          &body{entry: enemy},
		Stats:         stats,
		Hurtbox:       &hurtbox{ecs: ecs, entry: enemy},
		SoftCollision: &softCollision{entry: enemy},
		Wander:        &wander{entry: enemy},
		Sprite:        &animation{entry: enemy},
		Blink:         &blink{entry: enemy},
		Spawner:       &spawner{ecs: ecs, entry: enemy},
		Rand:          rnd,
	})
	if err != nil {
		Destroy(ecs, enemy)
		return nil, err
	}
	components.Enemy.SetValue(enemy, components.EnemyData{ID: id, Kind: kind, Controller: ctrl})

	hb := components.Hurtbox.Get(enemy)
	hb.Listener = ctrl
	hb.OnHit = ctrl.OnHurtboxAreaEntered
	stats.OnNoHealth(func() {
		components.NoHealthEvent.Publish(ecs.World, components.NoHealth{Entry: enemy})
	})

	addToSpace(ecs, obj, hurt.Object, hitBox.Object, soft.Object, zone.Object)
	log.Printf("spawned %s %s at (%.0f, %.0f) in state %s", kind, id, at.X, at.Y, ctrl.State())
	return enemy, nil
}
