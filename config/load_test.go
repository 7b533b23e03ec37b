package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restore puts the package defaults back after a test mutates them.
func restore(t *testing.T) {
	t.Helper()
	screen := *C
	player, grass, combat, physics, camera, audio := Player, Grass, Combat, Physics, Camera, Audio
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		types[k] = v
	}
	t.Cleanup(func() {
		*C = screen
		Player, Grass, Combat, Physics, Camera, Audio = player, grass, combat, physics, camera, audio
		Enemy.Types = types
	})
}

func TestLoadOverlaysOnlyGivenKeys(t *testing.T) {
	restore(t)

	err := Load([]byte(`
player:
  max_speed: 95
  roll_speed: 140
enemies:
  bat:
    knockback_scale: 60
`))
	require.NoError(t, err)

	assert.Equal(t, 95.0, Player.MaxSpeed)
	assert.Equal(t, 140.0, Player.RollSpeed)
	assert.Equal(t, 500.0, Player.Acceleration)

	bat := Enemy.Types["bat"]
	assert.Equal(t, 60.0, bat.KnockbackScale)
	assert.Equal(t, 50.0, bat.MaxSpeed)
	assert.Equal(t, Purple, bat.TintColor)
}

func TestLoadAddsEnemyKindFromBat(t *testing.T) {
	restore(t)

	require.NoError(t, Load([]byte(`
enemies:
  big_bat:
    max_health: 5
`)))

	big, ok := Enemy.Types["big_bat"]
	require.True(t, ok)
	assert.Equal(t, "big_bat", big.Name)
	assert.Equal(t, 5, big.MaxHealth)
	assert.Equal(t, Enemy.Types["bat"].Acceleration, big.Acceleration)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tick", "physics:\n  tick_delta: 0\n"},
		{"no health", "player:\n  max_health: 0\n"},
		{"zero damage", "enemies:\n  bat:\n    damage: 0\n"},
		{"wander range inverted", "enemies:\n  bat:\n    wander_time_min: 4\n    wander_time_max: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)
			before := Player

			err := Load([]byte(tt.yaml))

			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, before, Player)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	restore(t)
	err := Load([]byte("player: [1, 2"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	restore(t)
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  follow_smoothing: 0.5\n"), 0o600))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 0.5, Camera.FollowSmoothing)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTuningCarriesHurtPolicy(t *testing.T) {
	bat := Enemy.Types["bat"].Tuning()
	assert.Equal(t, 120.0, bat.Hurt.KnockbackScale)
	assert.Equal(t, 0.4, bat.Hurt.InvincibilitySeconds)

	p := Player.Tuning()
	assert.Equal(t, 1.0, p.Hurt.KnockbackScale)
	assert.Equal(t, 0.8, p.RollExitDamp)
}
