package systems

import (
	"testing"

	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestSettingsFromSaved(t *testing.T) {
	assert.Equal(t, DefaultSettings(), SettingsFrom(nil))

	s := SettingsFrom(&SavedSettings{SFXVolume: 0.2, Muted: true, Fullscreen: true})
	assert.Equal(t, 0.2, s.SFXVolume)
	assert.True(t, s.Muted)
	assert.True(t, s.Fullscreen)
	assert.False(t, s.Dirty)
}

func TestSaveWithoutPersistenceIsNoop(t *testing.T) {
	require.Nil(t, gdataManager)

	assert.NoError(t, SaveSettings(&SavedSettings{Muted: true}))
	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
}

func TestToggleSettings(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		check  func(*components.SettingsData) bool
	}{
		{"hitboxes", cfg.ActionToggleHitboxes, func(s *components.SettingsData) bool { return s.ShowHitboxes }},
		{"mute", cfg.ActionToggleMute, func(s *components.SettingsData) bool { return s.Muted }},
		{"fullscreen", cfg.ActionToggleFullscreen, func(s *components.SettingsData) bool { return s.Fullscreen }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			s := GetOrCreateSettings(e)
			before := tt.check(s)

			setInput(e, tt.action)
			assert.True(t, toggleSettings(e, s))
			assert.NotEqual(t, before, tt.check(s))
			assert.True(t, s.Dirty)

			s.Dirty = false
			setInput(e, tt.action)
			assert.False(t, toggleSettings(e, s), "held key toggled twice")
		})
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	e := newTestECS(t)
	ran := 0
	system := WithPauseCheck(func(*ecs.ECS) { ran++ })

	system(e)
	assert.Equal(t, 1, ran)

	setInput(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)
	system(e)
	assert.Equal(t, 1, ran)

	setInput(e)
	UpdatePause(e)
	setInput(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	system(e)
	assert.Equal(t, 2, ran)
}

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func TestGameOverWaitsBeforeRestart(t *testing.T) {
	e := newTestECS(t)
	changer := &recordingChanger{}
	update := NewUpdateGameOver(changer, func() interface{} { return "world" })

	setInput(e, cfg.ActionMenuSelect)
	update(e)
	assert.Empty(t, changer.scenes, "restart taken before the screen settled")

	for i := 0; i < gameOverHintDelay; i++ {
		setInput(e)
		update(e)
	}
	setInput(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, []interface{}{"world"}, changer.scenes)
}
