package systems

import (
	"testing"

	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/assets"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/systems/factory"
	"github.com/automoto/actionrpg/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

const (
	testLevelWidth  = 640
	testLevelHeight = 384
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, testLevelWidth, testLevelHeight, cfg.Physics.CellSize, cfg.Physics.CellSize)
	SubscribeDeaths(e.World)
	return e
}

func spawnPlayer(t *testing.T, e *ecs.ECS, at dmath.Vec2) *donburi.Entry {
	t.Helper()
	player, err := factory.CreatePlayer(e, at)
	require.NoError(t, err)
	return player
}

func spawnBat(t *testing.T, e *ecs.ECS, at dmath.Vec2) *donburi.Entry {
	t.Helper()
	bat, err := factory.CreateEnemy(e, "bat", at, actor.NewRandom(1, 2))
	require.NoError(t, err)
	return bat
}

func moveTo(entry *donburi.Entry, at dmath.Vec2) {
	components.Object.Get(entry).SetCenter(at)
	factory.SyncAttachments(entry)
}

func effectsOf(w donburi.World, kind string) []*donburi.Entry {
	var found []*donburi.Entry
	tags.Effect.Each(w, func(e *donburi.Entry) {
		if components.Effect.Get(e).Kind == kind {
			found = append(found, e)
		}
	})
	return found
}

func count(w donburi.World, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

// armSword points the player's sword down and arms it without going
// through an attack.
func armSword(player *donburi.Entry) {
	sword := components.Hitbox.Get(player)
	sword.Active = true
	sword.Follow(components.Object.Get(player).Center())
}

// setInput replaces this frame's input with the given actions held.
func setInput(e *ecs.ECS, held ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range held {
		pressed[a] = true
	}
	applyInput(getOrCreateInput(e), pressed, [cfg.ActionCount]float64{})
}

func health(entry *donburi.Entry) int {
	return components.Stats.Get(entry).Health()
}

func TestHitLandsOncePerOverlap(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, dmath.Vec2{X: 100, Y: 100})
	spawnBat(t, e, dmath.Vec2{X: 100, Y: 100})

	UpdateHurtboxes(e)
	assert.Equal(t, cfg.Player.MaxHealth-1, health(player))
	assert.True(t, components.Hurtbox.Get(player).IsInvincible())
	assert.Len(t, effectsOf(e.World, cfg.EffectHit), 1)
	assert.Equal(t, 1, count(e.World, tags.HurtSound))

	UpdateHurtboxes(e)
	assert.Equal(t, cfg.Player.MaxHealth-1, health(player), "invincible hurtbox took a hit")
}

func TestOverlapLandsAgainAfterInvincibility(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, dmath.Vec2{X: 100, Y: 100})
	spawnBat(t, e, dmath.Vec2{X: 100, Y: 100})

	UpdateHurtboxes(e)
	require.Equal(t, cfg.Player.MaxHealth-1, health(player))

	hb := components.Hurtbox.Get(player)
	maxTicks := int(cfg.Player.InvincibilitySeconds/cfg.Physics.TickDelta) + 2
	ticks := 0
	for hb.IsInvincible() {
		require.Less(t, ticks, maxTicks, "invincibility never ended")
		UpdateHurtboxes(e)
		ticks++
	}
	assert.Equal(t, cfg.Player.MaxHealth-1, health(player))

	UpdateHurtboxes(e)
	assert.Equal(t, cfg.Player.MaxHealth-2, health(player))
}

func TestHitboxIgnoresOwnHurtboxAndOtherSides(t *testing.T) {
	e := newTestECS(t)
	bat := spawnBat(t, e, dmath.Vec2{X: 300, Y: 300})
	spawnBat(t, e, dmath.Vec2{X: 302, Y: 300})

	UpdateHurtboxes(e)

	assert.Equal(t, cfg.Enemy.Types["bat"].MaxHealth, health(bat))
	assert.Empty(t, effectsOf(e.World, cfg.EffectHit))
}

func TestInactiveSwordDoesNotCut(t *testing.T) {
	e := newTestECS(t)
	spawnPlayer(t, e, dmath.Vec2{X: 100, Y: 100})
	bat := spawnBat(t, e, dmath.Vec2{X: 100, Y: 118})

	UpdateHurtboxes(e)
	assert.Equal(t, cfg.Enemy.Types["bat"].MaxHealth, health(bat))
}

func TestSwordKillsBatAndLeavesDeathEffect(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, dmath.Vec2{X: 100, Y: 100})
	bat := spawnBat(t, e, dmath.Vec2{X: 100, Y: 118})
	components.Stats.Get(bat).SetHealth(1)
	armSword(player)

	UpdateHurtboxes(e)
	require.True(t, bat.Valid(), "death must wait for UpdateDeaths")
	assert.Equal(t, 0, health(bat))

	UpdateDeaths(e)
	assert.False(t, bat.Valid())
	assert.Equal(t, 0, count(e.World, tags.Enemy))

	deaths := effectsOf(e.World, cfg.EffectEnemyDeath)
	require.Len(t, deaths, 1)
	assert.Equal(t, dmath.Vec2{X: 100, Y: 118}, components.Object.Get(deaths[0]).Center())
	assert.NotNil(t, components.Effect.Get(deaths[0]).Fade)
}

func TestDestroyedBatLeavesTheSpace(t *testing.T) {
	e := newTestECS(t)
	bat := spawnBat(t, e, dmath.Vec2{X: 300, Y: 300})
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)
	before := len(space.Objects())

	factory.Destroy(e, bat)

	assert.False(t, bat.Valid())
	assert.Equal(t, before-5, len(space.Objects()))
}

func TestSwordCutsGrass(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, dmath.Vec2{X: 100, Y: 100})
	grass := factory.CreateGrass(e, 93, 106, 16, 16)
	armSword(player)

	UpdateHurtboxes(e)

	assert.False(t, grass.Valid())
	assert.Len(t, effectsOf(e.World, cfg.EffectGrass), 1)
}

func TestPlayerDeathPublishesPlayerDied(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, dmath.Vec2{X: 100, Y: 100})
	components.Stats.Get(player).SetHealth(1)
	spawnBat(t, e, dmath.Vec2{X: 100, Y: 100})

	died := 0
	components.PlayerDiedEvent.Subscribe(e.World, func(donburi.World, components.PlayerDied) { died++ })

	UpdateHurtboxes(e)
	UpdateDeaths(e)

	assert.False(t, player.Valid())
	assert.Equal(t, 1, died)

	// Bats keep working without a player to look at.
	assert.NotPanics(t, func() {
		UpdateDetectionZones(e)
		UpdateEnemies(e)
		UpdateCamera(e)
	})
}

func TestDetectionZoneEnterAndExit(t *testing.T) {
	e := newTestECS(t)
	bat := spawnBat(t, e, dmath.Vec2{X: 200, Y: 200})
	player := spawnPlayer(t, e, dmath.Vec2{X: 230, Y: 200})
	ctrl := components.Enemy.Get(bat).Controller

	UpdateDetectionZones(e)
	assert.True(t, components.DetectionZone.Get(bat).CanSeePlayer())
	assert.Equal(t, actor.EnemyChase, ctrl.State())
	require.NotNil(t, ctrl.Target())
	assert.Equal(t, dmath.Vec2{X: 230, Y: 200}, ctrl.Target().Position())

	// Inside the broadphase box but outside the circle.
	moveTo(player, dmath.Vec2{X: 255, Y: 254})
	UpdateDetectionZones(e)
	assert.False(t, components.DetectionZone.Get(bat).CanSeePlayer())
	assert.Equal(t, actor.EnemyIdle, ctrl.State())
	assert.Nil(t, ctrl.Target())
}

func TestSoftCollisionPushesApart(t *testing.T) {
	e := newTestECS(t)
	left := spawnBat(t, e, dmath.Vec2{X: 300, Y: 300})
	right := spawnBat(t, e, dmath.Vec2{X: 304, Y: 300})
	alone := spawnBat(t, e, dmath.Vec2{X: 500, Y: 100})

	UpdateSoftCollisions(e)

	l := components.SoftCollision.Get(left)
	assert.True(t, l.IsColliding())
	assert.InDelta(t, -1, l.PushVector().X, 1e-9)
	assert.InDelta(t, 0, l.PushVector().Y, 1e-9)

	r := components.SoftCollision.Get(right)
	assert.True(t, r.IsColliding())
	assert.InDelta(t, 1, r.PushVector().X, 1e-9)

	a := components.SoftCollision.Get(alone)
	assert.False(t, a.IsColliding())
	assert.Equal(t, dmath.Vec2{}, a.PushVector())
}

func TestWanderTimersCountDownToZero(t *testing.T) {
	e := newTestECS(t)
	bat := spawnBat(t, e, dmath.Vec2{X: 300, Y: 300})
	w := components.Wander.Get(bat)
	w.Timer = cfg.Physics.TickDelta / 2

	UpdateWanderTimers(e)

	assert.Equal(t, 0.0, w.TimeLeft())
}

func TestEnemiesStayOutOfWalls(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 0, 0, testLevelWidth, 16)
	bat := spawnBat(t, e, dmath.Vec2{X: 300, Y: 30})
	ctrl := components.Enemy.Get(bat).Controller
	ctrl.SetVelocity(dmath.Vec2{Y: -50})

	for i := 0; i < 60; i++ {
		ctrl.SetVelocity(dmath.Vec2{Y: -50})
		UpdateEnemies(e)
	}

	obj := components.Object.Get(bat).Object
	assert.GreaterOrEqual(t, obj.Y, 16.0-1e-6)
}

func TestOneShotSoundRemovesItself(t *testing.T) {
	e := newTestECS(t)
	_, err := factory.CreateHurtSound(e)
	require.NoError(t, err)

	UpdateOneShotSounds(e)
	assert.Equal(t, 1, count(e.World, tags.HurtSound))

	for i := 0; i < 60; i++ {
		UpdateOneShotSounds(e)
	}
	assert.Equal(t, 0, count(e.World, tags.HurtSound))
}

func TestEffectsRemoveThemselvesWhenPlayedOut(t *testing.T) {
	e := newTestECS(t)
	fx, err := factory.CreateEffect(e, cfg.EffectHit, dmath.Vec2{X: 50, Y: 50})
	require.NoError(t, err)

	for i := 0; i < 600 && fx.Valid(); i++ {
		UpdateEffects(e)
	}
	assert.False(t, fx.Valid())
}

func TestDeathEffectFadesOut(t *testing.T) {
	e := newTestECS(t)
	fx, err := factory.CreateEffect(e, cfg.EffectEnemyDeath, dmath.Vec2{X: 50, Y: 50})
	require.NoError(t, err)

	UpdateEffects(e)
	alpha := components.Effect.Get(fx).Alpha
	assert.Less(t, alpha, float32(1))
	assert.Greater(t, alpha, float32(0))
}

func TestPlayerAttackArmsSword(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(t, e, dmath.Vec2{X: 100, Y: 100})
	setInput(e, cfg.ActionAttack)

	UpdatePlayer(e)

	ctrl := components.Player.Get(player).Controller
	assert.Equal(t, actor.PlayerAttack, ctrl.State())
	assert.True(t, components.Hitbox.Get(player).Active)

	UpdatePlayer(e)
	assert.Equal(t, actor.AnimAttack, components.Animation.Get(player).CurrentState)

	// Releasing the button lets the swing finish and disarms the sword.
	setInput(e)
	for i := 0; i < 120 && ctrl.State() == actor.PlayerAttack; i++ {
		UpdatePlayer(e)
	}
	assert.Equal(t, actor.PlayerMove, ctrl.State())
	assert.False(t, components.Hitbox.Get(player).Active)
}

func TestCameraFollowsInsideLevel(t *testing.T) {
	e := newTestECS(t)
	level := &assets.Level{Name: "test", Width: testLevelWidth, Height: testLevelHeight}
	factory.CreateLevel(e, level)
	factory.CreateCamera(e, dmath.Vec2{X: 80, Y: 80})
	spawnPlayer(t, e, dmath.Vec2{X: 80, Y: 80})

	for i := 0; i < 300; i++ {
		UpdateCamera(e)
	}

	cameraEntry, _ := components.Camera.First(e.World)
	pos := components.Camera.Get(cameraEntry).Position
	assert.InDelta(t, float64(cfg.C.Width)/2, pos.X, 0.01)
	assert.InDelta(t, float64(cfg.C.Height)/2, pos.Y, 0.01)
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name                 string
		v, screen, level, to float64
	}{
		{"inside", 300, 320, 640, 300},
		{"near start", 10, 320, 640, 160},
		{"near end", 630, 320, 640, 480},
		{"level narrower than screen", 50, 320, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.to, clampAxis(tt.v, tt.screen, tt.level))
		})
	}
}
