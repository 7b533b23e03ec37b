package factory

import (
	"github.com/automoto/actionrpg/archetypes"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHurtSound spawns the player's hurt sound. It lives as long as the
// tone lasts, so overlapping hits stack rather than cut each other off.
func CreateHurtSound(ecs *ecs.ECS) (*donburi.Entry, error) {
	tone, ok := cfg.Sound.Tones[cfg.SoundHurt]
	if !ok {
		return nil, unavailable("hurt sound")
	}

	e := archetypes.HurtSound.Spawn(ecs)
	components.OneShotSound.SetValue(e, components.OneShotSoundData{
		Sound:     cfg.SoundHurt,
		Remaining: tone.Seconds,
	})
	return e, nil
}
