package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hard-coded configuration used when the
// embedded YAML cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			TickRate:   60,
			Background: [3]float32{0.05, 0.05, 0.12},
		},
		Player: PlayerConfig{
			Width:    100,
			Height:   20,
			Velocity: 500,
		},
		Ball: BallConfig{
			Radius:    12.5,
			VelocityX: 100,
			VelocityY: -350,
		},
		Particles: ParticleConfig{
			Capacity:      500,
			SpawnPerFrame: 2,
			Size:          10,
		},
		Levels: LevelsConfig{
			Files:          []string{"one.lvl", "two.lvl", "three.lvl", "four.lvl"},
			HeightFraction: 0.5,
		},
		Gameplay: GameplayConfig{
			BrickPoints:    10,
			PaddleStrength: 2.0,
			StartInMenu:    true,
		},
		Textures: map[string]TextureConfig{
			"background":  {Fill: true},
			"face":        {Glyph: "●", Round: true, Alpha: true},
			"block":       {Fill: true},
			"block_solid": {Fill: true},
			"paddle":      {Fill: true},
			"particle":    {Glyph: "•", Round: true, Alpha: true},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
