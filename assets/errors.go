package assets

import "errors"

var (
	// ErrNoPlayerSpawn is returned for a map without a PlayerSpawn object.
	ErrNoPlayerSpawn = errors.New("no player spawn")
	// ErrUnknownSound is returned when no tone is configured for a sound.
	ErrUnknownSound = errors.New("unknown sound")
)
