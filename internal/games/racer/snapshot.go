package racer

import "github.com/vovakirdan/lane-racer/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick      int
	Player    core.RectF
	Obstacles []core.RectF
	Coins     []CoinView
	Score     int
	Collected int // Coins picked up this run
	BaseSpeed float64
	Level     int // Speed steps taken; display only
	HighScore int
	GameOver  bool
	Paused    bool
}

// CoinView is a coin as seen by a renderer.
type CoinView struct {
	Rect  core.RectF
	Tier  CoinTier
	Value int
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tickCount,
		Player:    g.player.Rect(),
		Obstacles: make([]core.RectF, 0, len(g.obstacles)),
		Coins:     make([]CoinView, 0, len(g.coins)),
		Score:     g.score,
		Collected: g.difficulty.CoinsCollected(),
		BaseSpeed: g.difficulty.BaseSpeed(),
		Level:     g.difficulty.Level(),
		HighScore: max(g.highScore, g.score),
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
	for _, o := range g.obstacles {
		s.Obstacles = append(s.Obstacles, o.Rect())
	}
	for _, c := range g.coins {
		s.Coins = append(s.Coins, CoinView{Rect: c.Rect(), Tier: c.Tier, Value: c.Value})
	}
	return s
}
