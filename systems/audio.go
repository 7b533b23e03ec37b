package systems

import (
	"log"
	"sync"

	"github.com/automoto/actionrpg/assets"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect up front so the first swing of
// the sword doesn't stall on synthesis.
func PreloadAllSFX() {
	initGlobalAudio()

	ids := make([]cfg.SoundID, 0, len(cfg.Sound.Tones))
	for id := range cfg.Sound.Tones {
		ids = append(ids, id)
	}
	if err := globalAudioLoader.PreloadAll(ids); err != nil {
		log.Printf("preload sounds: %v", err)
	}
}

// UpdateAudio plays the sound effects queued since the last update.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 || globalAudioLoader == nil {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("play sound %d: %v", soundID, err)
		return
	}

	volume := globalSFXVolume
	if tone, ok := cfg.Sound.Tones[soundID]; ok && tone.Volume > 0 {
		volume *= tone.Volume
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played. Worlds without audio, like
// the ones tests build, drop it.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	components.QueueSFX(e.World, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).SFXVolume = volume
	}
}

// SetMuted silences or restores every sound effect.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).Muted = muted
	}
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
