package racer

import (
	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// SpawnPolicy decides when obstacles and coins appear and what they look like.
// It runs two independent tick counters. Each tick a counter is compared
// against a freshly drawn threshold; when it exceeds it, one entity spawns
// above the field and the counter restarts from zero.
type SpawnPolicy struct {
	rng           core.RNG
	cfg           *config.RacerConfig
	tiers         *core.WeightedTable[CoinTier]
	obstacleTimer int
	coinTimer     int
}

// NewSpawnPolicy creates a spawn policy drawing from rng.
// Fails only if no coin tier has a positive weight.
func NewSpawnPolicy(rng core.RNG, cfg *config.RacerConfig) (*SpawnPolicy, error) {
	t := cfg.Coins.Tiers
	tiers, err := core.NewWeightedTable(
		core.Weighted[CoinTier]{Value: TierBronze, Weight: t.Bronze.Weight},
		core.Weighted[CoinTier]{Value: TierSilver, Weight: t.Silver.Weight},
		core.Weighted[CoinTier]{Value: TierGold, Weight: t.Gold.Weight},
	)
	if err != nil {
		return nil, err
	}

	return &SpawnPolicy{
		rng:   rng,
		cfg:   cfg,
		tiers: tiers,
	}, nil
}

// Reset zeroes both timers.
func (sp *SpawnPolicy) Reset() {
	sp.obstacleTimer = 0
	sp.coinTimer = 0
}

// Tick advances both timers and appends whatever spawned this tick.
// baseSpeed is the current base obstacle speed.
func (sp *SpawnPolicy) Tick(baseSpeed float64, obstacles []Obstacle, coins []Coin) ([]Obstacle, []Coin) {
	sp.obstacleTimer++
	threshold := core.UniformInt(sp.rng, sp.cfg.Obstacles.MinInterval, sp.cfg.Obstacles.MaxInterval)
	if sp.obstacleTimer > threshold {
		obstacles = append(obstacles, sp.newObstacle(baseSpeed))
		sp.obstacleTimer = 0
	}

	sp.coinTimer++
	threshold = core.UniformInt(sp.rng, sp.cfg.Coins.MinInterval, sp.cfg.Coins.MaxInterval)
	if sp.coinTimer > threshold {
		coins = append(coins, sp.newCoin())
		sp.coinTimer = 0
	}

	return obstacles, coins
}

// newObstacle places an obstacle just above the field at a random lane offset.
func (sp *SpawnPolicy) newObstacle(baseSpeed float64) Obstacle {
	o := sp.cfg.Obstacles
	left := sp.cfg.Field.CorridorLeft()
	right := sp.cfg.Field.CorridorRight() - o.Width

	return Obstacle{Entity: Entity{
		X:  core.UniformF(sp.rng, left, right),
		Y:  -o.Height,
		W:  o.Width,
		H:  o.Height,
		DY: core.UniformF(sp.rng, baseSpeed, baseSpeed+o.SpeedSpread),
	}}
}

// newCoin draws a tier, then places the coin somewhere in the band above the
// field so coins do not arrive in step with obstacles.
func (sp *SpawnPolicy) newCoin() Coin {
	c := sp.cfg.Coins
	tier := sp.tiers.Pick(sp.rng)
	tc := sp.tierConfig(tier)

	left := sp.cfg.Field.CorridorLeft()
	right := sp.cfg.Field.CorridorRight() - c.Size

	x := core.UniformF(sp.rng, left, right)
	y := core.UniformF(sp.rng, c.SpawnBandTop, -c.Size)
	speed := core.UniformF(sp.rng, tc.MinSpeed, tc.MaxSpeed)

	return Coin{
		Entity: Entity{X: x, Y: y, W: c.Size, H: c.Size, DY: speed},
		Tier:   tier,
		Value:  tc.Value,
	}
}

func (sp *SpawnPolicy) tierConfig(t CoinTier) config.CoinTierConfig {
	switch t {
	case TierSilver:
		return sp.cfg.Coins.Tiers.Silver
	case TierGold:
		return sp.cfg.Coins.Tiers.Gold
	default:
		return sp.cfg.Coins.Tiers.Bronze
	}
}
