package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultLanderConfig()

	if cfg.World != def.World {
		t.Errorf("World = %+v, expected %+v", cfg.World, def.World)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("Physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Craft != def.Craft {
		t.Errorf("Craft = %+v, expected %+v", cfg.Craft, def.Craft)
	}
	if cfg.Pad != def.Pad {
		t.Errorf("Pad = %+v, expected %+v", cfg.Pad, def.Pad)
	}
	if cfg.Landing != def.Landing {
		t.Errorf("Landing = %+v, expected %+v", cfg.Landing, def.Landing)
	}
	if cfg.Input != def.Input {
		t.Errorf("Input = %+v, expected %+v", cfg.Input, def.Input)
	}
	if cfg.Terminal != def.Terminal {
		t.Errorf("Terminal = %+v, expected %+v", cfg.Terminal, def.Terminal)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("Scoring = %+v, expected %+v", cfg.Scoring, def.Scoring)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 20\ninput:\n  repeat_delay: 250ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 20 {
		t.Errorf("Gravity = %g, expected 20", cfg.Physics.Gravity)
	}
	if cfg.Input.RepeatDelay != 250*time.Millisecond {
		t.Errorf("RepeatDelay = %s, expected 250ms", cfg.Input.RepeatDelay)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.MainThrust != 160 {
		t.Errorf("MainThrust = %g, expected default 160", cfg.Physics.MainThrust)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() of bad YAML: got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "world size") {
		t.Errorf("Load() of invalid config: got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LanderConfig)
		ok     bool
	}{
		{"defaults", func(*LanderConfig) {}, true},
		{"zero height", func(c *LanderConfig) { c.World.Height = 0 }, false},
		{"pad too wide", func(c *LanderConfig) { c.Pad.Width = 700 }, false},
		{"zero repeat interval", func(c *LanderConfig) { c.Input.RepeatInterval = 0 }, false},
		{"zero name length", func(c *LanderConfig) { c.Input.MaxNameLength = 0 }, false},
		{"negative fuel", func(c *LanderConfig) { c.Craft.InitialFuel = -1 }, false},
		{"no scores", func(c *LanderConfig) { c.Scoring.MaxTopScores = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLanderConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestScale(t *testing.T) {
	cfg := DefaultLanderConfig()
	if cfg.Scale() != 1 {
		t.Errorf("Scale() = %g, expected 1", cfg.Scale())
	}
	cfg.World.Height = 900
	if cfg.Scale() != 1.5 {
		t.Errorf("Scale() = %g, expected 1.5", cfg.Scale())
	}
}

func TestPresets(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}

	normal := DefaultLanderConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultLanderConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultLanderConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Landing.MaxAngle <= normal.Landing.MaxAngle || easy.Physics.Gravity >= normal.Physics.Gravity {
		t.Errorf("easy preset should loosen limits: %+v", easy.Landing)
	}

	hard := DefaultLanderConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Landing.MaxSafeVelocity >= normal.Landing.MaxSafeVelocity || hard.Craft.InitialFuel >= normal.Craft.InitialFuel {
		t.Errorf("hard preset should tighten limits: %+v", hard.Landing)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultLanderConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "max_safe_velocity") {
		t.Errorf("Marshal() output missing keys:\n%s", data)
	}
}
