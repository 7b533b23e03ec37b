package actor

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCollaborator is matched by every ConfigurationError.
	ErrMissingCollaborator = errors.New("missing collaborator")

	// ErrSceneUnavailable reports an optional scene or resource that could not
	// be produced. Callers log it and carry on without the feature.
	ErrSceneUnavailable = errors.New("scene unavailable")

	// ErrInvalidMaxHealth is returned for a max health below 1.
	ErrInvalidMaxHealth = errors.New("max health must be positive")
)

// ConfigurationError is returned when a controller is constructed without a
// collaborator it needs. The actor cannot run without it.
type ConfigurationError struct {
	Actor        string
	Collaborator string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s collaborator is required", e.Actor, e.Collaborator)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrMissingCollaborator
}

// requirement pairs a collaborator name with whether it was supplied.
type requirement struct {
	name    string
	present bool
}

func checkRequired(actorName string, reqs ...requirement) error {
	for _, r := range reqs {
		if !r.present {
			return &ConfigurationError{Actor: actorName, Collaborator: r.name}
		}
	}
	return nil
}
