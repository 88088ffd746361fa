package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the built-in racer configuration.
// It mirrors defaults/racer.yaml and is used when the embedded file fails to parse.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Field: RacerField{
			Width:     800,
			Height:    600,
			RoadWidth: 400,
		},
		Player: RacerPlayer{
			Width:        50,
			Height:       100,
			Speed:        5,
			BottomMargin: 70,
		},
		Obstacles: RacerObstacles{
			Width:       50,
			Height:      100,
			SpeedSpread: 3,
			MinInterval: 60,
			MaxInterval: 120,
		},
		Coins: RacerCoins{
			Size:         30,
			MinInterval:  90,
			MaxInterval:  180,
			SpawnBandTop: -1000,
			Tiers: RacerTiers{
				Bronze: CoinTierConfig{Weight: 70, Value: 1, MinSpeed: 2, MaxSpeed: 4},
				Silver: CoinTierConfig{Weight: 25, Value: 3, MinSpeed: 3, MaxSpeed: 5},
				Gold:   CoinTierConfig{Weight: 5, Value: 5, MinSpeed: 4, MaxSpeed: 6},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			InitialSpeed:     3,
			Increment:        0.5,
			CoinsPerIncrease: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRacerYAML
}
