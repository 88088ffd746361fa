// Package racer implements a lane racer: steer a car along a road corridor,
// dodge oncoming cars and pick up coins that make later traffic faster.
//
// The simulation works in playfield units (800×600 by default) and knows
// nothing about terminals; Render scales the playfield onto a core.Screen.
package racer

import (
	"fmt"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Game implements the lane racer logic.
type Game struct {
	cfg        config.RacerConfig
	runtime    core.RuntimeConfig
	rng        core.RNG
	player     Player
	obstacles  []Obstacle
	coins      []Coin
	spawner    *SpawnPolicy
	difficulty *config.DifficultyController
	score      int
	highScore  int  // Best score seen by the host, shown on game over
	gameOver   bool // Terminal state; only a restart leaves it
	paused     bool
	tickCount  int // Unpaused ticks since the run started

	fixedRNG bool // RNG was injected; Reset must not reseed it
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig makes the game use cfg instead of the built-in defaults.
// An invalid cfg is replaced by the defaults on Reset.
func WithConfig(cfg config.RacerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithRNG makes the game draw from rng instead of a source seeded from
// RuntimeConfig.Seed.
func WithRNG(rng core.RNG) Option {
	return func(g *Game) {
		g.rng = rng
		g.fixedRNG = true
	}
}

// New creates a racer. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultRacerConfig()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Racer"
}

// Reset reseeds the random source from runtime and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if err := g.cfg.Validate(); err != nil {
		g.cfg = config.DefaultRacerConfig()
	}
	if !g.fixedRNG {
		g.rng = core.NewRNG(runtime.Seed)
	}

	spawner, err := NewSpawnPolicy(g.rng, &g.cfg)
	if err != nil {
		// Validate guarantees positive tier weights.
		panic(fmt.Sprintf("racer: %v", err))
	}
	g.spawner = spawner
	g.difficulty = config.NewDifficultyController(g.cfg.Difficulty)

	g.start()
}

// start reinitializes every piece of run state. The random stream is kept,
// so a restart plays a different road than the previous run.
func (g *Game) start() {
	field := g.cfg.Field
	p := g.cfg.Player

	bounds := core.NewRectF(field.CorridorLeft(), 0, field.RoadWidth, field.Height)
	x := field.Width/2 - p.Width/2
	y := field.Height - p.Height - p.BottomMargin
	g.player = NewPlayer(x, y, p.Width, p.Height, bounds)

	g.obstacles = g.obstacles[:0]
	g.coins = g.coins[:0]
	g.spawner.Reset()
	g.difficulty.Reset()

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.player.ApplyIntent(IntentFromInput(in), g.cfg.Player.Speed)

	g.obstacles, g.coins = g.spawner.Tick(g.difficulty.BaseSpeed(), g.obstacles, g.coins)

	g.advance()

	hits, remaining := ResolveCollisions(g.player.Rect(), g.obstacles, g.coins)
	g.coins = remaining
	if hits.Crashed {
		g.gameOver = true
	}
	for _, c := range hits.Collected {
		g.score += c.Value
		g.difficulty.OnCoinCollected()
	}

	return core.StepResult{State: g.State()}
}

// advance moves every obstacle and coin and drops those below the field.
func (g *Game) advance() {
	h := g.cfg.Field.Height

	obstacles := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.Advance()
		if !o.Exited(h) {
			obstacles = append(obstacles, o)
		}
	}
	g.obstacles = obstacles

	coins := g.coins[:0]
	for _, c := range g.coins {
		c.Advance()
		if !c.Exited(h) {
			coins = append(coins, c)
		}
	}
	g.coins = coins
}

// SetHighScore sets the best score shown on the game over overlay.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Config returns the configuration the current run uses.
func (g *Game) Config() config.RacerConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Pickups:  g.difficulty.CoinsCollected(),
		Ticks:    g.tickCount,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
