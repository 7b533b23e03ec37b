package factory

import (
	"testing"

	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/assets"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 640, 384, cfg.Physics.CellSize, cfg.Physics.CellSize)
	return e
}

func TestMoveAndSlideStopsFlushAgainstWall(t *testing.T) {
	e := newTestECS()
	CreateWall(e, 120, 0, 16, 200)
	player, err := CreatePlayer(e, dmath.Vec2{X: 100, Y: 100})
	require.NoError(t, err)

	b := &body{entry: player}
	v := b.MoveAndSlide(dmath.Vec2{X: 1000, Y: 60}, 1.0/60)

	assert.Equal(t, 0.0, v.X, "blocked axis keeps its speed")
	assert.Equal(t, 60.0, v.Y)
	pos := b.Position()
	assert.InDelta(t, 120-cfg.Player.BodyWidth/2, pos.X, 1e-9)
	assert.InDelta(t, 101, pos.Y, 1e-9)

	// Attached boxes ride along.
	hurt := components.Hurtbox.Get(player).Center()
	assert.InDelta(t, pos.X, hurt.X, 1e-9)
}

func TestMoveAndSlideAlongWall(t *testing.T) {
	e := newTestECS()
	CreateWall(e, 120, 0, 16, 200)
	player, err := CreatePlayer(e, dmath.Vec2{X: 115, Y: 100})
	require.NoError(t, err)

	b := &body{entry: player}
	v := b.MoveAndSlide(dmath.Vec2{X: 60, Y: -60}, 1.0/60)

	assert.Equal(t, dmath.Vec2{X: 0, Y: -60}, v)
	assert.InDelta(t, 115, b.Position().X, 1e-9)
	assert.InDelta(t, 99, b.Position().Y, 1e-9)
}

func TestMoveAndSlideFreeMovement(t *testing.T) {
	e := newTestECS()
	player, err := CreatePlayer(e, dmath.Vec2{X: 100, Y: 100})
	require.NoError(t, err)

	b := &body{entry: player}
	v := b.MoveAndSlide(dmath.Vec2{X: -30, Y: 30}, 0.5)

	assert.Equal(t, dmath.Vec2{X: -30, Y: 30}, v)
	assert.InDelta(t, 85, b.Position().X, 1e-9)
	assert.InDelta(t, 115, b.Position().Y, 1e-9)
}

func TestMoveAndSlideAfterDestroyIsNoop(t *testing.T) {
	e := newTestECS()
	player, err := CreatePlayer(e, dmath.Vec2{X: 100, Y: 100})
	require.NoError(t, err)
	b := &body{entry: player}

	Destroy(e, player)

	assert.Equal(t, dmath.Vec2{X: 5}, b.MoveAndSlide(dmath.Vec2{X: 5}, 1))
}

func TestCreateEnemyUnknownKind(t *testing.T) {
	e := newTestECS()
	_, err := CreateEnemy(e, "dragon", dmath.Vec2{}, actor.NewRandom(1, 1))
	require.ErrorIs(t, err, ErrUnknownEnemyType)
	assert.Equal(t, 0, countTag(e.World, tags.Enemy))
}

func TestCreateEnemyStartsFull(t *testing.T) {
	e := newTestECS()
	bat, err := CreateEnemy(e, "bat", dmath.Vec2{X: 200, Y: 200}, actor.NewRandom(1, 1))
	require.NoError(t, err)

	stats := components.Stats.Get(bat)
	assert.Equal(t, cfg.Enemy.Types["bat"].MaxHealth, stats.Health())

	hitbox := components.Hitbox.Get(bat)
	assert.True(t, hitbox.Active)
	assert.True(t, hitbox.Hits(tags.ResolvPlayerHurtbox))
	assert.False(t, hitbox.Hits(tags.ResolvEnemyHurtbox))
	assert.Equal(t, dmath.Vec2{}, hitbox.Hitbox.KnockbackVector)

	w := components.Wander.Get(bat)
	assert.Equal(t, dmath.Vec2{X: 200, Y: 200}, w.Home)
	assert.LessOrEqual(t, w.Target.X, 200+cfg.Enemy.Types["bat"].WanderRange)
}

func TestCreateEffectUnknownKind(t *testing.T) {
	e := newTestECS()
	_, err := CreateEffect(e, "sparkles", dmath.Vec2{})
	require.ErrorIs(t, err, actor.ErrSceneUnavailable)
}

func TestHealthUIFollowsStats(t *testing.T) {
	e := newTestECS()
	stats, err := actor.NewStats(4)
	require.NoError(t, err)
	ui := CreateHealthUI(e, stats)

	stats.Damage(1)
	assert.Equal(t, 3, components.HealthUI.Get(ui).Hearts)

	require.NoError(t, stats.SetMaxHealth(2))
	assert.Equal(t, 2, components.HealthUI.Get(ui).MaxHearts)
	assert.Equal(t, 2, components.HealthUI.Get(ui).Hearts)
}

func TestTargetRemembersLastPosition(t *testing.T) {
	e := newTestECS()
	player, err := CreatePlayer(e, dmath.Vec2{X: 40, Y: 60})
	require.NoError(t, err)
	target := NewTarget(player)

	Destroy(e, player)

	assert.Equal(t, dmath.Vec2{X: 40, Y: 60}, target.Position())
}

func TestPopulateWorldLevel(t *testing.T) {
	level, err := assets.NewLevelLoader().LoadLevel("world.tmx")
	require.NoError(t, err)

	e := newTestECS()
	player, err := PopulateLevel(e, &level, 42)
	require.NoError(t, err)

	assert.True(t, player.HasComponent(tags.Player))
	assert.Equal(t, len(level.Walls), countTag(e.World, tags.Wall))
	assert.Equal(t, len(level.Grass), countTag(e.World, tags.Grass))
	assert.Equal(t, len(level.EnemySpawns), countTag(e.World, tags.Enemy))
}

func TestPopulateLevelWithoutSpawnSpawnsNothing(t *testing.T) {
	e := newTestECS()
	level := &assets.Level{
		Name:  "empty",
		Walls: []assets.Rect{{X: 0, Y: 0, Width: 16, Height: 16}},
	}

	player, err := PopulateLevel(e, level, 1)

	require.ErrorIs(t, err, assets.ErrNoPlayerSpawn)
	assert.Nil(t, player)
	assert.Zero(t, countTag(e.World, tags.Wall))
}

func TestPopulateLevelIsSeeded(t *testing.T) {
	level, err := assets.NewLevelLoader().LoadLevel("world.tmx")
	require.NoError(t, err)

	targets := func(seed uint64) []dmath.Vec2 {
		e := newTestECS()
		_, err := PopulateLevel(e, &level, seed)
		require.NoError(t, err)
		var out []dmath.Vec2
		components.Wander.Each(e.World, func(entry *donburi.Entry) {
			out = append(out, components.Wander.Get(entry).Target)
		})
		return out
	}

	assert.Equal(t, targets(7), targets(7))
}

func countTag(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}
