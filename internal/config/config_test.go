package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsSane(t *testing.T) {
	cfg := Default()

	if cfg.Level.Width <= 0 || cfg.Level.Height <= 0 {
		t.Errorf("default level size %dx%d", cfg.Level.Width, cfg.Level.Height)
	}
	if cfg.Physics.Gravity <= 0 {
		t.Errorf("default gravity = %v, want positive", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity >= 0 {
		t.Errorf("default jump velocity = %v, want negative (up)", cfg.Physics.JumpVelocity)
	}
	if cfg.Player.Lives <= 0 || cfg.Player.MaxHealth <= 0 {
		t.Errorf("default lives=%d health=%d", cfg.Player.Lives, cfg.Player.MaxHealth)
	}
	if len(cfg.Spawn.OffsetsX) == 0 {
		t.Error("default spawn offsets empty")
	}
}

func TestNormalizeRepairsZeroConfig(t *testing.T) {
	var cfg GameConfig
	cfg.Normalize()

	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		t.Errorf("normalized player size %dx%d", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Level.Width <= 0 || cfg.Level.Height <= 0 {
		t.Errorf("normalized level size %dx%d", cfg.Level.Width, cfg.Level.Height)
	}
	if cfg.Level.PlatformMinWidth > cfg.Level.PlatformMaxWidth {
		t.Errorf("platform width range inverted: [%d, %d]", cfg.Level.PlatformMinWidth, cfg.Level.PlatformMaxWidth)
	}
	if len(cfg.Spawn.OffsetsX) == 0 {
		t.Error("normalized spawn offsets empty")
	}
}

func TestNormalizeFixesInvertedRanges(t *testing.T) {
	cfg := Default()
	cfg.Enemies.ResetCooldownMin = 200
	cfg.Enemies.ResetCooldownMax = 50

	cfg.Normalize()
	if cfg.Enemies.ResetCooldownMax < cfg.Enemies.ResetCooldownMin {
		t.Errorf("cooldown range still inverted: [%d, %d]",
			cfg.Enemies.ResetCooldownMin, cfg.Enemies.ResetCooldownMax)
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.Lives <= base.Player.Lives {
		t.Errorf("easy lives = %d, want more than %d", easy.Player.Lives, base.Player.Lives)
	}
	if easy.Spawn.DelayTicks <= base.Spawn.DelayTicks {
		t.Errorf("easy spawn delay = %d, want slower than %d", easy.Spawn.DelayTicks, base.Spawn.DelayTicks)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.Lives >= base.Player.Lives {
		t.Errorf("hard lives = %d, want fewer than %d", hard.Player.Lives, base.Player.Lives)
	}

	// Unknown presets leave the config untouched
	unknown := Default()
	ApplyPreset(&unknown, DifficultyPreset("nightmare"))
	if unknown.Player.Lives != base.Player.Lives {
		t.Errorf("unknown preset changed lives to %d", unknown.Player.Lives)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")

	yaml := `
physics:
  gravity: 1.5
player:
  lives: 9
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 1.5 {
		t.Errorf("gravity = %v, want 1.5 from the custom file", cfg.Physics.Gravity)
	}
	if cfg.Player.Lives != 9 {
		t.Errorf("lives = %d, want 9 from the custom file", cfg.Player.Lives)
	}

	// Values the file omits are normalized, not left at zero
	if cfg.Player.Width <= 0 {
		t.Errorf("player width = %d after load, want normalized", cfg.Player.Width)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	// Whatever source won, the result must be playable
	if cfg.Level.Width <= 0 || cfg.Player.MaxHealth <= 0 {
		t.Errorf("loaded config not normalized: %+v", cfg)
	}
}
