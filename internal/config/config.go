// Package config provides YAML-based configuration for Breakout.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig holds all tunables for the game.
type BreakoutConfig struct {
	Window     WindowConfig             `yaml:"window"`
	Player     PlayerConfig             `yaml:"player"`
	Ball       BallConfig               `yaml:"ball"`
	Particles  ParticleConfig           `yaml:"particles"`
	Levels     LevelsConfig             `yaml:"levels"`
	Gameplay   GameplayConfig           `yaml:"gameplay"`
	Textures   map[string]TextureConfig `yaml:"textures"`
	Difficulty DifficultyConfig         `yaml:"difficulty"`
}

// WindowConfig defines the play area in world units.
type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	TickRate   int        `yaml:"tick_rate"`
	Background [3]float32 `yaml:"background"` // RGB tint of the background quad
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
	Velocity float32 `yaml:"velocity"` // Units per second
}

// BallConfig defines the ball and its launch velocity.
type BallConfig struct {
	Radius    float32 `yaml:"radius"`
	VelocityX float32 `yaml:"velocity_x"`
	VelocityY float32 `yaml:"velocity_y"` // Negative means upward
}

// ParticleConfig defines the ball trail.
type ParticleConfig struct {
	Capacity      int     `yaml:"capacity"`
	SpawnPerFrame int     `yaml:"spawn_per_frame"`
	Size          float32 `yaml:"size"`
}

// LevelsConfig selects where level files come from.
type LevelsConfig struct {
	Dir            string   `yaml:"dir"`   // Empty means the embedded levels
	Files          []string `yaml:"files"` // Played in this order
	HeightFraction float32  `yaml:"height_fraction"`
}

// GameplayConfig defines scoring and flow.
type GameplayConfig struct {
	BrickPoints    int     `yaml:"brick_points"`
	PaddleStrength float32 `yaml:"paddle_strength"`
	StartInMenu    bool    `yaml:"start_in_menu"`
}

// TextureConfig describes one named texture.
type TextureConfig struct {
	Path  string `yaml:"path"`
	Glyph string `yaml:"glyph"`
	Fill  bool   `yaml:"fill"`
	Round bool   `yaml:"round"`
	Alpha bool   `yaml:"alpha"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to launch speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports settings the game cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius %v must be positive", c.Ball.Radius))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Particles.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("particle capacity %d must be positive", c.Particles.Capacity))
	}
	if c.Levels.HeightFraction <= 0 || c.Levels.HeightFraction > 1 {
		errs = append(errs, fmt.Errorf("levels height_fraction %v must be in (0, 1]", c.Levels.HeightFraction))
	}
	if len(c.Levels.Files) == 0 {
		errs = append(errs, errors.New("no level files configured"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid breakout config: %w", err)
	}
	return nil
}
