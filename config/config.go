package config

import (
	"image/color"

	"github.com/automoto/actionrpg/actor"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Friction     float64 `yaml:"friction"`
	RollSpeed    float64 `yaml:"roll_speed"`
	RollExitDamp float64 `yaml:"roll_exit_damp"` // velocity multiplier when a roll ends

	// Combat
	MaxHealth            int     `yaml:"max_health"`
	KnockbackDecay       float64 `yaml:"knockback_decay"`
	KnockbackScale       float64 `yaml:"knockback_scale"`
	InvincibilitySeconds float64 `yaml:"invincibility_seconds"`
	SwordDamage          int     `yaml:"sword_damage"`

	// Dimensions
	BodyWidth     float64 `yaml:"body_width"`
	BodyHeight    float64 `yaml:"body_height"`
	HurtboxWidth  float64 `yaml:"hurtbox_width"`
	HurtboxHeight float64 `yaml:"hurtbox_height"`
	SwordWidth    float64 `yaml:"sword_width"`
	SwordHeight   float64 `yaml:"sword_height"`
	SwordReach    float64 `yaml:"sword_reach"` // centre of the sword box, from the body centre
}

// Tuning converts the player config into controller tuning.
func (p PlayerConfig) Tuning() actor.PlayerConfig {
	return actor.PlayerConfig{
		Acceleration:   p.Acceleration,
		MaxSpeed:       p.MaxSpeed,
		Friction:       p.Friction,
		RollSpeed:      p.RollSpeed,
		RollExitDamp:   p.RollExitDamp,
		KnockbackDecay: p.KnockbackDecay,
		Hurt: actor.HurtPolicy{
			KnockbackScale:       p.KnockbackScale,
			InvincibilitySeconds: p.InvincibilitySeconds,
		},
	}
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name string `yaml:"name"`

	// Movement
	Acceleration      float64 `yaml:"acceleration"`
	MaxSpeed          float64 `yaml:"max_speed"`
	Friction          float64 `yaml:"friction"`
	WanderTargetRange float64 `yaml:"wander_target_range"` // arrival radius
	WanderRange       float64 `yaml:"wander_range"`        // how far from home a wander target may be
	WanderTimeMin     float64 `yaml:"wander_time_min"`
	WanderTimeMax     float64 `yaml:"wander_time_max"`
	SoftCollisionPush float64 `yaml:"soft_collision_push"`

	// Combat
	MaxHealth            int     `yaml:"max_health"`
	Damage               int     `yaml:"damage"`
	KnockbackDecay       float64 `yaml:"knockback_decay"`
	KnockbackScale       float64 `yaml:"knockback_scale"`
	InvincibilitySeconds float64 `yaml:"invincibility_seconds"`
	DetectionRadius      float64 `yaml:"detection_radius"`

	// Dimensions
	BodyWidth     float64 `yaml:"body_width"`
	BodyHeight    float64 `yaml:"body_height"`
	HurtboxWidth  float64 `yaml:"hurtbox_width"`
	HurtboxHeight float64 `yaml:"hurtbox_height"`
	HitboxWidth   float64 `yaml:"hitbox_width"`
	HitboxHeight  float64 `yaml:"hitbox_height"`
	SoftSize      float64 `yaml:"soft_size"`

	// Visual
	SpriteFrames int        `yaml:"sprite_frames"`
	TintColor    color.RGBA `yaml:"-"`
}

// Tuning converts the type config into controller tuning.
func (t EnemyTypeConfig) Tuning() actor.EnemyConfig {
	return actor.EnemyConfig{
		Acceleration:      t.Acceleration,
		MaxSpeed:          t.MaxSpeed,
		Friction:          t.Friction,
		WanderTargetRange: t.WanderTargetRange,
		KnockbackDecay:    t.KnockbackDecay,
		SoftCollisionPush: t.SoftCollisionPush,
		WanderTimeMin:     t.WanderTimeMin,
		WanderTimeMax:     t.WanderTimeMax,
		SpriteFrames:      t.SpriteFrames,
		Hurt: actor.HurtPolicy{
			KnockbackScale:       t.KnockbackScale,
			InvincibilitySeconds: t.InvincibilitySeconds,
		},
	}
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// GrassConfig contains destructible grass configuration
type GrassConfig struct {
	Size float64 `yaml:"size"`
}

// CombatConfig contains combat feedback configuration values
type CombatConfig struct {
	BlinkPeriod float64 `yaml:"blink_period"` // seconds per blink cycle while invincible
	FadeSeconds float64 `yaml:"fade_seconds"` // death effect fade out
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	TickDelta float64 `yaml:"tick_delta"` // seconds per physics tick
	CellSize  int     `yaml:"cell_size"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HeartSize   float64
	HeartGap    float64
	HeartMargin float64

	HeartFullColor  color.RGBA
	HeartEmptyColor color.RGBA
	BackgroundColor color.RGBA
	WallColor       color.RGBA
	PlayerColor     color.RGBA
	SwordColor      color.RGBA
	GrassColor      color.RGBA
	HitboxColor     color.RGBA
	HurtboxColor    color.RGBA

	HUDFontSize   float64
	TitleFontSize float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	HintY        float64
	Title        string
	Hint         string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	Seed         uint64 // 0 picks a seed from the clock
}

// Config holds general game configuration
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // window pixels per game pixel
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Grass GrassConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Camera CameraConfig
var UI UIConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DarkRed      = color.RGBA{R: 90, G: 20, B: 30, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	GrassGreen   = color.RGBA{R: 60, G: 150, B: 70, A: 255}
	FieldGreen   = color.RGBA{R: 40, G: 90, B: 50, A: 255}
	Stone        = color.RGBA{R: 90, G: 80, B: 70, A: 255}
	Purple       = color.RGBA{R: 128, G: 60, B: 200, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Silver       = color.RGBA{R: 210, G: 210, B: 220, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	HitboxRed    = color.RGBA{R: 255, G: 0, B: 0, A: 120}
	HurtboxBlue  = color.RGBA{R: 0, G: 120, B: 255, A: 120}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 180,
		Scale:  4,
	}

	Physics = PhysicsConfig{
		TickDelta: 1.0 / 60.0,
		CellSize:  16,
	}

	Player = PlayerConfig{
		Acceleration: 500,
		MaxSpeed:     80,
		Friction:     500,
		RollSpeed:    120,
		RollExitDamp: 0.8,

		MaxHealth:            4,
		KnockbackDecay:       200,
		KnockbackScale:       1,
		InvincibilitySeconds: 0.5,
		SwordDamage:          1,

		BodyWidth:     10,
		BodyHeight:    8,
		HurtboxWidth:  10,
		HurtboxHeight: 14,
		SwordWidth:    14,
		SwordHeight:   14,
		SwordReach:    12,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"bat": {
				Name:              "Bat",
				Acceleration:      300,
				MaxSpeed:          50,
				Friction:          200,
				WanderTargetRange: 4,
				WanderRange:       32,
				WanderTimeMin:     1,
				WanderTimeMax:     3,
				SoftCollisionPush: 400,

				MaxHealth:            2,
				Damage:               1,
				KnockbackDecay:       200,
				KnockbackScale:       120,
				InvincibilitySeconds: 0.4,
				DetectionRadius:      64,

				BodyWidth:     8,
				BodyHeight:    6,
				HurtboxWidth:  10,
				HurtboxHeight: 12,
				HitboxWidth:   8,
				HitboxHeight:  8,
				SoftSize:      8,

				SpriteFrames: 4,
				TintColor:    Purple,
			},
		},
	}

	Grass = GrassConfig{
		Size: 16,
	}

	Combat = CombatConfig{
		BlinkPeriod: 0.1,
		FadeSeconds: 0.35,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	UI = UIConfig{
		HeartSize:   6,
		HeartGap:    3,
		HeartMargin: 4,

		HeartFullColor:  LightRed,
		HeartEmptyColor: DarkRed,
		BackgroundColor: FieldGreen,
		WallColor:       Stone,
		PlayerColor:     LightBlue,
		SwordColor:      Silver,
		GrassColor:      GrassGreen,
		HitboxColor:     HitboxRed,
		HurtboxColor:    HurtboxBlue,

		HUDFontSize:   8,
		TitleFontSize: 20,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		TextColor:    White,
		TitleY:       70,
		HintY:        110,
		Title:        "You Died",
		Hint:         "Press ENTER to try again",
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "Paused",
		Hint:         "Esc: Resume   F3: Hitboxes   M: Mute",
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
