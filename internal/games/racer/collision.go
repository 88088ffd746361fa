package racer

import "github.com/vovakirdan/lane-racer/internal/core"

// Collisions is the outcome of one collision pass.
type Collisions struct {
	Crashed   bool   // The player overlaps at least one obstacle
	Collected []Coin // Coins the player picked up, in collection order
}

// ResolveCollisions tests the player against every obstacle and coin.
// Obstacles and coins are evaluated independently, so a crash and pickups
// can happen in the same tick. Collected coins are removed from coins; the
// remaining coins are returned, reusing the input's backing array.
func ResolveCollisions(player core.RectF, obstacles []Obstacle, coins []Coin) (Collisions, []Coin) {
	var result Collisions

	for _, o := range obstacles {
		if player.Intersects(o.Rect()) {
			result.Crashed = true
			break
		}
	}

	remaining := coins[:0]
	for _, c := range coins {
		if player.Intersects(c.Rect()) {
			result.Collected = append(result.Collected, c)
			continue
		}
		remaining = append(remaining, c)
	}

	return result, remaining
}
