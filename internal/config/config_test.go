package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML(), BreakoutConfig{})
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultBreakoutConfig()

	if cfg.Window != def.Window {
		t.Errorf("window = %+v, expected %+v", cfg.Window, def.Window)
	}
	if cfg.Player != def.Player || cfg.Ball != def.Ball || cfg.Particles != def.Particles {
		t.Errorf("entity sections differ from hard-coded defaults")
	}
	if len(cfg.Levels.Files) != len(def.Levels.Files) {
		t.Errorf("levels.files = %v, expected %v", cfg.Levels.Files, def.Levels.Files)
	}
	for name, tex := range def.Textures {
		if cfg.Textures[name] != tex {
			t.Errorf("texture %q = %+v, expected %+v", name, cfg.Textures[name], tex)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config should validate: %v", err)
	}
}

func TestLoadBreakoutCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  radius: 8\nlevels:\n  files: [one.lvl]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	if cfg.Ball.Radius != 8 {
		t.Errorf("ball radius = %v, expected 8", cfg.Ball.Radius)
	}
	if cfg.Ball.VelocityY != -350 {
		t.Errorf("unset keys should keep defaults, velocity_y = %v", cfg.Ball.VelocityY)
	}
	if len(cfg.Levels.Files) != 1 {
		t.Errorf("levels.files = %v, expected [one.lvl]", cfg.Levels.Files)
	}
	if _, ok := cfg.Textures["block"]; !ok {
		t.Error("textures should keep defaults")
	}
}

func TestLoadBreakoutTextureEntriesLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "textures:\n  face:\n    glyph: \"o\"\n  ghost:\n    fill: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}
	face := cfg.Textures["face"]
	if face.Glyph != "o" {
		t.Errorf("face glyph = %q, expected o", face.Glyph)
	}
	if !face.Round || !face.Alpha {
		t.Errorf("face should keep round and alpha from defaults, got %+v", face)
	}
	if ghost := cfg.Textures["ghost"]; !ghost.Fill {
		t.Errorf("new texture entry = %+v, expected fill", ghost)
	}
	if cfg.Textures["block"] != DefaultBreakoutConfig().Textures["block"] {
		t.Errorf("untouched texture changed: %+v", cfg.Textures["block"])
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  radius: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(path)
	if err == nil || !strings.Contains(err.Error(), "ball radius") {
		t.Errorf("expected validation error about ball radius, got %v", err)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("initial level = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Ball.VelocityY != -350*1.25 {
		t.Errorf("hard preset should speed up the ball, got %v", cfg.Ball.VelocityY)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	if got := d.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %v, expected 0.5", got)
	}
	if got := d.Level(500, 0); got != 1.0 {
		t.Errorf("Level should clamp at 1.0, got %v", got)
	}
	if got := d.Speed(100, 100, 0); got != 150 {
		t.Errorf("Speed at max = %v, expected 150", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.3})
	if got := fixed.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled progression should stay at initial level, got %v", got)
	}
}
