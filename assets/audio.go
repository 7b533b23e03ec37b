package assets

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/automoto/actionrpg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/sync/errgroup"
)

// AudioLoader synthesizes, decodes and caches sound effects.
type AudioLoader struct {
	mu       sync.Mutex
	sfxCache map[config.SoundID][]byte // decoded PCM at the context's rate
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders and decodes a sound effect without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	_, err := l.decoded(id)
	return err
}

// PreloadAll renders and decodes the given sounds concurrently. Every sound
// is attempted; the first error is returned.
func (l *AudioLoader) PreloadAll(ids []config.SoundID) error {
	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			return l.PreloadSFX(id)
		})
	}
	return g.Wait()
}

// LoadSFX returns a new player for the sound each time it is called.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	data, err := l.decoded(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) decoded(id config.SoundID) ([]byte, error) {
	l.mu.Lock()
	data, ok := l.sfxCache[id]
	l.mu.Unlock()
	if ok {
		return data, nil
	}

	tone, ok := config.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("sound %d: %w", id, ErrUnknownSound)
	}

	raw := SynthesizeWAV(tone, config.Audio.SampleRate)
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode sound %d: %w", id, err)
	}
	data, err = io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read sound %d: %w", id, err)
	}

	l.mu.Lock()
	l.sfxCache[id] = data
	l.mu.Unlock()
	return data, nil
}
