package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume    float64 `json:"sfxVolume"`
	Muted        bool    `json:"muted"`
	ShowHitboxes bool    `json:"showHitboxes"`
	Fullscreen   bool    `json:"fullscreen"`
}

const settingsItem = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when persistence is off or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// DefaultSettings is what a first run starts with.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		SFXVolume:    cfg.Audio.DefaultSFXVol,
		ShowHitboxes: cfg.Debug.ShowHitboxes,
	}
}

// SettingsFrom layers saved settings over the defaults.
func SettingsFrom(saved *SavedSettings) components.SettingsData {
	s := DefaultSettings()
	if saved == nil {
		return s
	}
	s.SFXVolume = saved.SFXVolume
	s.Muted = saved.Muted
	s.ShowHitboxes = saved.ShowHitboxes || cfg.Debug.ShowHitboxes
	s.Fullscreen = saved.Fullscreen
	return s
}

func savedFrom(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		SFXVolume:    s.SFXVolume,
		Muted:        s.Muted,
		ShowHitboxes: s.ShowHitboxes,
		Fullscreen:   s.Fullscreen,
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the defaults if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, DefaultSettings())
	}
	return components.Settings.Get(entry)
}

// ApplySettings pushes settings into the audio system and the window.
func ApplySettings(e *ecs.ECS, s *components.SettingsData) {
	SetSFXVolume(e, s.SFXVolume)
	SetMuted(e, s.Muted)
	ebiten.SetFullscreen(s.Fullscreen)
}

// UpdateSettings handles the settings hotkeys and writes changes to disk.
func UpdateSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	if !toggleSettings(e, s) {
		return
	}
	ApplySettings(e, s)
	if err := SaveSettings(savedFrom(s)); err == nil {
		s.Dirty = false
	}
}

// toggleSettings flips whatever toggles were pressed this frame and reports
// whether anything changed.
func toggleSettings(e *ecs.ECS, s *components.SettingsData) bool {
	if IsJustPressed(e.World, cfg.ActionToggleHitboxes) {
		s.ShowHitboxes = !s.ShowHitboxes
		s.Dirty = true
	}
	if IsJustPressed(e.World, cfg.ActionToggleMute) {
		s.Muted = !s.Muted
		s.Dirty = true
	}
	if IsJustPressed(e.World, cfg.ActionToggleFullscreen) {
		s.Fullscreen = !s.Fullscreen
		s.Dirty = true
	}
	return s.Dirty
}
