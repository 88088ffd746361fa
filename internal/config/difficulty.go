package config

// DifficultyController tracks coin pickups and the base obstacle speed.
// It is the only mutator of the base speed, which never decreases within a run.
type DifficultyController struct {
	cfg       DifficultyConfig
	coins     int
	baseSpeed float64
}

// NewDifficultyController creates a controller at the configured initial speed.
func NewDifficultyController(cfg DifficultyConfig) *DifficultyController {
	d := &DifficultyController{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns the controller to its initial state.
func (d *DifficultyController) Reset() {
	d.coins = 0
	d.baseSpeed = d.cfg.InitialSpeed
}

// IsEnabled returns whether coin pickups raise the base speed.
func (d *DifficultyController) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.CoinsPerIncrease > 0 && d.cfg.Increment > 0
}

// OnCoinCollected records one pickup. When the new count is a multiple of
// CoinsPerIncrease the base speed grows by Increment. Returns true if it grew.
func (d *DifficultyController) OnCoinCollected() bool {
	d.coins++
	if !d.IsEnabled() || d.coins%d.cfg.CoinsPerIncrease != 0 {
		return false
	}
	d.baseSpeed += d.cfg.Increment
	return true
}

// CoinsCollected returns the number of coins picked up this run.
func (d *DifficultyController) CoinsCollected() int {
	return d.coins
}

// BaseSpeed returns the speed newly spawned obstacles start from.
func (d *DifficultyController) BaseSpeed() float64 {
	return d.baseSpeed
}

// InitialSpeed returns the configured starting base speed.
func (d *DifficultyController) InitialSpeed() float64 {
	return d.cfg.InitialSpeed
}

// Level returns the number of speed steps taken so far.
// It is a display value only.
func (d *DifficultyController) Level() int {
	if d.cfg.Increment <= 0 {
		return 0
	}
	return int((d.baseSpeed-d.cfg.InitialSpeed)/d.cfg.Increment + 1e-9)
}
