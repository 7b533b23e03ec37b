package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure from Load.
var ErrInvalidConfig = errors.New("invalid config")

// document is the on-disk shape of a config override file. Every section
// is optional; missing keys keep their defaults.
type document struct {
	Screen  Config               `yaml:"screen"`
	Player  PlayerConfig         `yaml:"player"`
	Enemies map[string]yaml.Node `yaml:"enemies"`
	Grass   GrassConfig          `yaml:"grass"`
	Combat  CombatConfig         `yaml:"combat"`
	Physics PhysicsConfig        `yaml:"physics"`
	Camera  CameraConfig         `yaml:"camera"`
	Audio   AudioConfig          `yaml:"audio"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Load overlays YAML data onto the current configuration. Nothing is
// applied unless the whole document decodes and validates.
func Load(data []byte) error {
	doc := document{
		Screen:  *C,
		Player:  Player,
		Grass:   Grass,
		Combat:  Combat,
		Physics: Physics,
		Camera:  Camera,
		Audio:   Audio,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	for name, node := range doc.Enemies {
		t, ok := types[name]
		if !ok {
			// New kinds start from the bat so a file only lists what differs.
			t = Enemy.Types["bat"]
			t.Name = name
		}
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("enemy %q: %w", name, err)
		}
		types[name] = t
	}

	if err := validate(&doc, types); err != nil {
		return err
	}

	*C = doc.Screen
	Player = doc.Player
	Enemy.Types = types
	Grass = doc.Grass
	Combat = doc.Combat
	Physics = doc.Physics
	Camera = doc.Camera
	Audio = doc.Audio
	return nil
}

func validate(doc *document, types map[string]EnemyTypeConfig) error {
	switch {
	case doc.Screen.Width <= 0 || doc.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidConfig)
	case doc.Physics.TickDelta <= 0:
		return fmt.Errorf("%w: physics.tick_delta must be positive", ErrInvalidConfig)
	case doc.Physics.CellSize <= 0:
		return fmt.Errorf("%w: physics.cell_size must be positive", ErrInvalidConfig)
	case doc.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player.max_health must be positive", ErrInvalidConfig)
	case doc.Player.SwordDamage < 1:
		return fmt.Errorf("%w: player.sword_damage must be at least 1", ErrInvalidConfig)
	}

	for name, t := range types {
		if t.MaxHealth <= 0 {
			return fmt.Errorf("%w: enemy %q max_health must be positive", ErrInvalidConfig, name)
		}
		if t.Damage < 1 {
			return fmt.Errorf("%w: enemy %q damage must be at least 1", ErrInvalidConfig, name)
		}
		if t.WanderTimeMax < t.WanderTimeMin {
			return fmt.Errorf("%w: enemy %q wander_time_max is below wander_time_min", ErrInvalidConfig, name)
		}
	}
	return nil
}
