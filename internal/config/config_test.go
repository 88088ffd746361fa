package config

import (
	"strings"
	"testing"
)

func TestCorridorBounds(t *testing.T) {
	f := DefaultRacerConfig().Field
	if f.CorridorLeft() != 200 || f.CorridorRight() != 600 {
		t.Errorf("corridor = [%v, %v], expected [200, 600]", f.CorridorLeft(), f.CorridorRight())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RacerConfig)
		wantErr string
	}{
		{"defaults", func(*RacerConfig) {}, ""},
		{"zero field", func(c *RacerConfig) { c.Field.Height = 0 }, "field: width and height"},
		{"car wider than road", func(c *RacerConfig) { c.Player.Width = 500 }, "player: car does not fit"},
		{"inverted obstacle interval", func(c *RacerConfig) { c.Obstacles.MinInterval = 200 }, "obstacles: interval"},
		{"coin band below the top edge", func(c *RacerConfig) { c.Coins.SpawnBandTop = 10 }, "spawn_band_top"},
		{"zero gold weight", func(c *RacerConfig) { c.Coins.Tiers.Gold.Weight = 0 }, "coins.tiers.gold: weight"},
		{"inverted silver speed", func(c *RacerConfig) { c.Coins.Tiers.Silver.MaxSpeed = 1 }, "coins.tiers.silver: speed"},
		{"negative increment", func(c *RacerConfig) { c.Difficulty.Increment = -1 }, "increment"},
		{"zero threshold", func(c *RacerConfig) { c.Difficulty.CoinsPerIncrease = 0 }, "coins_per_increase"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRacerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %v should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultRacerConfig()
	cfg.Player.Speed = 0
	cfg.Difficulty.InitialSpeed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"player: speed", "difficulty: initial_speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q: %v", want, err)
		}
	}
}
