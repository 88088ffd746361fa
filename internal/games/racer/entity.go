package racer

import (
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Entity is a moving box in playfield coordinates.
// W and H are always positive; X and Y are unconstrained.
type Entity struct {
	X, Y   float64 // Top-left corner
	W, H   float64 // Size
	DX, DY float64 // Velocity per tick
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// Advance moves the entity by its velocity.
func (e *Entity) Advance() {
	e.X += e.DX
	e.Y += e.DY
}

// Exited reports whether the entity lies entirely below a field of the
// given height.
func (e Entity) Exited(fieldH float64) bool {
	return e.Y >= fieldH
}

// Obstacle is an oncoming car. Its speed is fixed when it spawns.
type Obstacle struct {
	Entity
}

// CoinTier classifies a coin. It is chosen once when the coin spawns.
type CoinTier int

const (
	TierBronze CoinTier = iota
	TierSilver
	TierGold
)

// String returns the tier name.
func (t CoinTier) String() string {
	switch t {
	case TierBronze:
		return "bronze"
	case TierSilver:
		return "silver"
	case TierGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Color returns the display color for the tier.
func (t CoinTier) Color() core.Color {
	switch t {
	case TierSilver:
		return core.ColorSilver
	case TierGold:
		return core.ColorGold
	default:
		return core.ColorYellow
	}
}

// Coin is a collectible worth Value points.
type Coin struct {
	Entity
	Tier  CoinTier
	Value int
}

// Intent is the set of directions the player is steering in this tick.
type Intent uint8

const (
	IntentLeft Intent = 1 << iota
	IntentRight
	IntentUp
	IntentDown

	intentMask = IntentLeft | IntentRight | IntentUp | IntentDown
)

// Has reports whether all directions in other are active.
func (i Intent) Has(other Intent) bool {
	return i&other == other
}

// IntentFromInput collects the held directions of an input frame.
func IntentFromInput(in core.InputFrame) Intent {
	var i Intent
	if in.Has(core.ActionLeft) {
		i |= IntentLeft
	}
	if in.Has(core.ActionRight) {
		i |= IntentRight
	}
	if in.Has(core.ActionUp) {
		i |= IntentUp
	}
	if in.Has(core.ActionDown) {
		i |= IntentDown
	}
	return i
}

// Player is the car steered by the user, confined to bounds.
type Player struct {
	Entity
	bounds core.RectF
}

// NewPlayer places a player of size w×h at (x, y) inside bounds.
func NewPlayer(x, y, w, h float64, bounds core.RectF) Player {
	p := Player{
		Entity: Entity{X: x, Y: y, W: w, H: h},
		bounds: bounds,
	}
	p.clamp()
	return p
}

// Bounds returns the area the player is confined to.
func (p Player) Bounds() core.RectF {
	return p.bounds
}

// ApplyIntent moves the player by delta along every active direction and
// clamps each axis into bounds. Diagonals are not normalized.
// Unknown intent bits are ignored.
func (p *Player) ApplyIntent(intent Intent, delta float64) {
	intent &= intentMask
	if intent.Has(IntentLeft) {
		p.X -= delta
	}
	if intent.Has(IntentRight) {
		p.X += delta
	}
	if intent.Has(IntentUp) {
		p.Y -= delta
	}
	if intent.Has(IntentDown) {
		p.Y += delta
	}
	p.clamp()
}

func (p *Player) clamp() {
	p.X = core.ClampF(p.X, p.bounds.X, p.bounds.Right()-p.W)
	p.Y = core.ClampF(p.Y, p.bounds.Y, p.bounds.Bottom()-p.H)
}
