package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "breakout.yaml"

// LoadBreakout loads the Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := parse(defaultBreakoutYAML, DefaultBreakoutConfig())
	if err != nil {
		cfg = DefaultBreakoutConfig() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		custom, err := parse(data, cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return custom, custom.Validate()
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if found, err := parse(data, cfg); err == nil && found.Validate() == nil {
			return found, nil
		}
	}

	return cfg, nil
}

func parse(data []byte, base BreakoutConfig) (BreakoutConfig, error) {
	cfg := base
	// Copy the map so layered files never write into base.
	cfg.Textures = make(map[string]TextureConfig, len(base.Textures))
	for k, v := range base.Textures {
		cfg.Textures[k] = v
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}

	// Map values decode into fresh zero values; layer each texture entry
	// over its base entry instead.
	var overlay struct {
		Textures map[string]yaml.Node `yaml:"textures"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return base, err
	}
	for name, node := range overlay.Textures {
		tc := base.Textures[name]
		if err := node.Decode(&tc); err != nil {
			return base, fmt.Errorf("texture %q: %w", name, err)
		}
		cfg.Textures[name] = tc
	}
	return cfg, nil
}

// UserDir returns ~/.breakout, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust paddle based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Width = 130
		cfg.Player.Velocity = 600
	case DifficultyHard:
		cfg.Player.Width = 80
		cfg.Ball.VelocityX *= 1.25
		cfg.Ball.VelocityY *= 1.25
	}
}
