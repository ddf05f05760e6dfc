package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBlockfallConfig(t *testing.T) {
	cfg := DefaultBlockfallConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("default board should be 10x20, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if !cfg.Display.Ghost {
		t.Error("ghost preview should be enabled by default")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := LoadBlockfall("")
	if err != nil {
		t.Fatalf("LoadBlockfall(\"\") failed: %v", err)
	}

	hardcoded := DefaultBlockfallConfig()
	if loaded.Board != hardcoded.Board {
		t.Errorf("embedded board config %+v differs from hardcoded %+v", loaded.Board, hardcoded.Board)
	}
	if loaded.Gravity != hardcoded.Gravity {
		t.Errorf("embedded gravity config %+v differs from hardcoded %+v", loaded.Gravity, hardcoded.Gravity)
	}
}

func TestGravityInterval(t *testing.T) {
	g := GravityConfig{BaseInterval: 0.6, PerLevel: 0.05, MinInterval: 0.1}

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 0.6},
		{2, 0.55},
		{5, 0.4},
		{11, 0.1}, // Exactly at the floor
		{30, 0.1}, // Clamped to the floor
	}

	for _, tc := range tests {
		got := g.Interval(tc.level)
		if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Interval(%d) = %g, expected %g", tc.level, got, tc.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BlockfallConfig)
		wantErr bool
	}{
		{"default ok", func(c *BlockfallConfig) {}, false},
		{"narrow board", func(c *BlockfallConfig) { c.Board.Width = 2 }, true},
		{"short board", func(c *BlockfallConfig) { c.Board.Height = 0 }, true},
		{"zero min interval", func(c *BlockfallConfig) { c.Gravity.MinInterval = 0 }, true},
		{"base below floor", func(c *BlockfallConfig) { c.Gravity.BaseInterval = 0.05 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadBlockfallCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
board:
  width: 8
  height: 16
gravity:
  base_interval: 0.5
  per_level: 0.04
  min_interval: 0.12
display:
  ghost: false
  next_preview: true
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadBlockfall(path)
	if err != nil {
		t.Fatalf("LoadBlockfall(%s) failed: %v", path, err)
	}

	if cfg.Board.Width != 8 || cfg.Board.Height != 16 {
		t.Errorf("custom board should be 8x16, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Display.Ghost {
		t.Error("custom config disabled the ghost preview")
	}
}

func TestLoadBlockfallMissingCustomPath(t *testing.T) {
	_, err := LoadBlockfall(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing custom config path should be an error")
	}
}

func TestLoadBlockfallInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 1\n  height: 1\n"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	_, err := LoadBlockfall(path)
	if err == nil {
		t.Error("invalid custom config should be an error")
	}
}

func TestApplyBlockfallPreset(t *testing.T) {
	easy := DefaultBlockfallConfig()
	ApplyBlockfallPreset(&easy, DifficultyEasy)
	if easy.Gravity.BaseInterval <= DefaultBlockfallConfig().Gravity.BaseInterval {
		t.Error("easy preset should slow the base interval down")
	}

	hard := DefaultBlockfallConfig()
	ApplyBlockfallPreset(&hard, DifficultyHard)
	if hard.Gravity.BaseInterval >= DefaultBlockfallConfig().Gravity.BaseInterval {
		t.Error("hard preset should speed the base interval up")
	}

	fixed := DefaultBlockfallConfig()
	ApplyBlockfallPreset(&fixed, DifficultyFixed)
	if fixed.Gravity.PerLevel != 0 {
		t.Error("fixed preset should disable speed progression")
	}
	if fixed.Gravity.Interval(1) != fixed.Gravity.Interval(15) {
		t.Error("fixed preset should keep the interval constant across levels")
	}

	normal := DefaultBlockfallConfig()
	ApplyBlockfallPreset(&normal, DifficultyNormal)
	if normal != DefaultBlockfallConfig() {
		t.Error("normal preset should leave the defaults untouched")
	}
}
