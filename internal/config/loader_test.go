package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RacerConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultRacerConfig() {
		t.Errorf("embedded defaults drifted from DefaultRacerConfig():\n%+v\nvs\n%+v", cfg, DefaultRacerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadRacerFallsBackToEmbedded(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	cfg, err := LoadRacer("")
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}
	if cfg != DefaultRacerConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadRacerSearchOrder(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)

	writeFile(t, tmp, "configs/racer.yaml", "player:\n  speed: 7\n")
	cfg, err := LoadRacer("")
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("local config should be used, speed = %v", cfg.Player.Speed)
	}

	writeFile(t, tmp, ".racer/configs/racer.yaml", "player:\n  speed: 9\n")
	cfg, err = LoadRacer("")
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("user config should win over local config, speed = %v", cfg.Player.Speed)
	}
}

func TestLoadRacerCustomPartial(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
difficulty:
  initial_speed: 4
  coins_per_increase: 3
coins:
  tiers:
    gold:
      weight: 50
`)

	cfg, err := LoadRacer(path)
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}

	if cfg.Difficulty.InitialSpeed != 4 || cfg.Difficulty.CoinsPerIncrease != 3 {
		t.Errorf("difficulty overrides not applied: %+v", cfg.Difficulty)
	}
	if cfg.Difficulty.Increment != 0.5 {
		t.Errorf("unset fields should keep defaults, increment = %v", cfg.Difficulty.Increment)
	}
	if cfg.Coins.Tiers.Gold.Weight != 50 || cfg.Coins.Tiers.Gold.Value != 5 {
		t.Errorf("gold tier = %+v", cfg.Coins.Tiers.Gold)
	}
	if cfg.Field != DefaultRacerConfig().Field {
		t.Errorf("field should keep defaults, got %+v", cfg.Field)
	}
}

func TestLoadRacerCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "field: [1, 2"), "failed to parse"},
		{"invalid values", writeFile(t, dir, "invalid.yaml", "field:\n  road_width: 900\n"), "road_width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadRacer(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyRacerPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		initialSpd float64
	}{
		{"", true, 3},
		{DifficultyEasy, true, 2},
		{DifficultyNormal, true, 3},
		{DifficultyHard, true, 4.5},
		{DifficultyFixed, false, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRacerConfig()
			ApplyRacerPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialSpeed != tc.initialSpd {
				t.Errorf("InitialSpeed = %v, expected %v", cfg.Difficulty.InitialSpeed, tc.initialSpd)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestMarshalLoadsBack(t *testing.T) {
	cfg := DefaultRacerConfig()
	cfg.Player.Speed = 6
	cfg.Difficulty.Enabled = false

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "coins_per_increase: 5") {
		t.Errorf("marshaled YAML should use snake_case keys:\n%s", data)
	}

	path := writeFile(t, t.TempDir(), "dump.yaml", string(data))
	loaded, err := LoadRacer(path)
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("dumped config did not load back:\n%+v\nvs\n%+v", loaded, cfg)
	}
}
