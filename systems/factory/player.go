package factory

import (
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

// CreatePlayer spawns the player with its body centred on at. The sword is
// the player's Hitbox; it only cuts while the player is attacking.
func CreatePlayer(ecs *ecs.ECS, at dmath.Vec2) (*donburi.Entry, error) {
	p := cfg.Player
	id := uuid.New()
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(at.X-p.BodyWidth/2, at.Y-p.BodyHeight/2, p.BodyWidth, p.BodyHeight, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	stats, err := actor.NewStats(p.MaxHealth)
	if err != nil {
		Destroy(ecs, player)
		return nil, fmt.Errorf("player %s stats: %w", id, err)
	}
	components.Stats.SetValue(player, components.StatsData{Stats: stats})

	// The hurtbox stands up from the feet the body sits on.
	hurtOffset := dmath.Vec2{Y: -(p.HurtboxHeight - p.BodyHeight) / 2}
	hurt := newAttachment(player, at, hurtOffset, p.HurtboxWidth, p.HurtboxHeight,
		tags.ResolvHurtbox, tags.ResolvPlayerHurtbox)
	components.Hurtbox.SetValue(player, components.HurtboxData{
		Attachment:  hurt,
		Side:        tags.ResolvPlayerHurtbox,
		Overlapping: make(map[*resolv.Object]bool),
	})

	sword := actor.NewHitbox()
	sword.Damage = p.SwordDamage
	swordBox := newAttachment(player, at, facingDown.MulScalar(p.SwordReach), p.SwordWidth, p.SwordHeight, tags.ResolvHitbox)
	components.Hitbox.SetValue(player, components.HitboxData{
		Attachment: swordBox,
		Hitbox:     sword,
		Owner:      player,
		Targets:    []string{tags.ResolvEnemyHurtbox, tags.ResolvGrassHurtbox},
	})

	animData, err := GenerateAnimations("player", actor.AnimIdle)
	if err != nil {
		Destroy(ecs, player)
		return nil, fmt.Errorf("player %s: %w", id, err)
	}
	components.Animation.SetValue(player, animData)
	components.Blink.SetValue(player, components.BlinkData{Period: float32(cfg.Combat.BlinkPeriod), Alpha: 1})

	ctrl, err := actor.NewPlayer("player "+id.String(), p.Tuning(), actor.PlayerDeps{
		Body:        &body{entry: player},
		Stats:       stats,
		Hurtbox:     &hurtbox{ecs: ecs, entry: player},
		Input:       &input{world: ecs.World},
		Animation:   &animation{entry: player},
		SwordHitbox: sword,
		Blink:       &blink{entry: player},
		Spawner:     &spawner{ecs: ecs, entry: player},
	})
	if err != nil {
		Destroy(ecs, player)
		return nil, err
	}
	components.Player.SetValue(player, components.PlayerData{ID: id, Controller: ctrl})

	hb := components.Hurtbox.Get(player)
	hb.Listener = ctrl
	hb.OnHit = func(hit actor.Hit) {
		if err := ctrl.OnHurtboxAreaEntered(hit); err != nil {
			log.Printf("player %s: %v", id, err)
		}
	}
	stats.OnNoHealth(func() {
		components.NoHealthEvent.Publish(ecs.World, components.NoHealth{Entry: player})
	})

	addToSpace(ecs, obj, hurt.Object, swordBox.Object)
	log.Printf("spawned player %s at (%.0f, %.0f)", id, at.X, at.Y)
	return player, nil
}
