// Package config provides YAML-based game configuration loading and
// difficulty management for the racer.
package config

import (
	"errors"
	"fmt"
)

// RacerConfig contains all configuration for the lane racer.
// Distances are playfield units, speeds are units per tick, intervals are ticks.
type RacerConfig struct {
	Field      RacerField       `yaml:"field"`
	Player     RacerPlayer      `yaml:"player"`
	Obstacles  RacerObstacles   `yaml:"obstacles"`
	Coins      RacerCoins       `yaml:"coins"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacerField defines the playfield and the lane corridor inside it.
type RacerField struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	RoadWidth float64 `yaml:"road_width"` // Corridor width, centered in the field
}

// CorridorLeft returns the x-coordinate of the corridor's left edge.
func (f RacerField) CorridorLeft() float64 {
	return (f.Width - f.RoadWidth) / 2
}

// CorridorRight returns the x-coordinate of the corridor's right edge.
func (f RacerField) CorridorRight() float64 {
	return (f.Width + f.RoadWidth) / 2
}

// RacerPlayer defines the player's car.
type RacerPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Distance moved per tick per held direction
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between the car and the field bottom at start
}

// RacerObstacles defines oncoming obstacle cars.
type RacerObstacles struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpeedSpread float64 `yaml:"speed_spread"` // Speed is drawn from [base, base+spread)
	MinInterval int     `yaml:"min_interval"`
	MaxInterval int     `yaml:"max_interval"`
}

// RacerCoins defines collectible coins.
type RacerCoins struct {
	Size         float64    `yaml:"size"`
	MinInterval  int        `yaml:"min_interval"`
	MaxInterval  int        `yaml:"max_interval"`
	SpawnBandTop float64    `yaml:"spawn_band_top"` // Highest start Y; coins start in [top, -size]
	Tiers        RacerTiers `yaml:"tiers"`
}

// RacerTiers holds the per-tier coin settings.
type RacerTiers struct {
	Bronze CoinTierConfig `yaml:"bronze"`
	Silver CoinTierConfig `yaml:"silver"`
	Gold   CoinTierConfig `yaml:"gold"`
}

// CoinTierConfig fixes a coin tier's spawn weight, score value and fall speed.
type CoinTierConfig struct {
	Weight   float64 `yaml:"weight"`
	Value    int     `yaml:"value"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DifficultyConfig defines coin-driven obstacle speed progression.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	InitialSpeed     float64 `yaml:"initial_speed"`      // Base obstacle speed at run start
	Increment        float64 `yaml:"increment"`          // Added to the base speed per step
	CoinsPerIncrease int     `yaml:"coins_per_increase"` // Coins needed for one step
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// An empty string yields an empty preset (use the config as loaded).
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialSpeedForPreset returns the starting obstacle speed for a preset.
func InitialSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 2.0
	case DifficultyHard:
		return 4.5
	default:
		return 3.0
	}
}

// Validate reports every structural problem in the config.
func (c RacerConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field: width and height must be positive"))
	}
	if c.Field.RoadWidth <= 0 || c.Field.RoadWidth > c.Field.Width {
		errs = append(errs, errors.New("field: road_width must be positive and fit the field"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player: width and height must be positive"))
	}
	if c.Player.Width > c.Field.RoadWidth || c.Player.Height > c.Field.Height {
		errs = append(errs, errors.New("player: car does not fit the corridor"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, errors.New("player: speed must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 || c.Obstacles.Width > c.Field.RoadWidth {
		errs = append(errs, errors.New("obstacles: size must be positive and fit the corridor"))
	}
	if c.Obstacles.SpeedSpread < 0 {
		errs = append(errs, errors.New("obstacles: speed_spread must not be negative"))
	}
	if err := validInterval("obstacles", c.Obstacles.MinInterval, c.Obstacles.MaxInterval); err != nil {
		errs = append(errs, err)
	}
	if c.Coins.Size <= 0 || c.Coins.Size > c.Field.RoadWidth {
		errs = append(errs, errors.New("coins: size must be positive and fit the corridor"))
	}
	if c.Coins.SpawnBandTop > -c.Coins.Size {
		errs = append(errs, errors.New("coins: spawn_band_top must be at or above -size"))
	}
	if err := validInterval("coins", c.Coins.MinInterval, c.Coins.MaxInterval); err != nil {
		errs = append(errs, err)
	}

	tiers := map[string]CoinTierConfig{
		"bronze": c.Coins.Tiers.Bronze,
		"silver": c.Coins.Tiers.Silver,
		"gold":   c.Coins.Tiers.Gold,
	}
	for _, name := range []string{"bronze", "silver", "gold"} {
		t := tiers[name]
		if t.Weight <= 0 {
			errs = append(errs, fmt.Errorf("coins.tiers.%s: weight must be positive", name))
		}
		if t.Value <= 0 {
			errs = append(errs, fmt.Errorf("coins.tiers.%s: value must be positive", name))
		}
		if t.MinSpeed <= 0 || t.MaxSpeed < t.MinSpeed {
			errs = append(errs, fmt.Errorf("coins.tiers.%s: speed range must be positive and ordered", name))
		}
	}

	if c.Difficulty.InitialSpeed <= 0 {
		errs = append(errs, errors.New("difficulty: initial_speed must be positive"))
	}
	if c.Difficulty.Increment < 0 {
		errs = append(errs, errors.New("difficulty: increment must not be negative"))
	}
	if c.Difficulty.CoinsPerIncrease <= 0 {
		errs = append(errs, errors.New("difficulty: coins_per_increase must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid racer config: %w", errors.Join(errs...))
	}
	return nil
}

func validInterval(section string, lo, hi int) error {
	if lo <= 0 || hi < lo {
		return fmt.Errorf("%s: interval must satisfy 0 < min_interval <= max_interval", section)
	}
	return nil
}
