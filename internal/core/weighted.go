package core

import (
	"errors"
	"sort"
)

// ErrNoWeight is returned when a weighted table has no positive weight.
var ErrNoWeight = errors.New("core: weighted table needs at least one positive weight")

// Weighted pairs an outcome with its relative weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedTable samples outcomes in proportion to their weights.
// It keeps a cumulative-weight table; a draw picks a uniform value in
// [0, total) and returns the first outcome whose cumulative weight exceeds it.
type WeightedTable[T any] struct {
	values     []T
	cumulative []float64
	total      float64
}

// NewWeightedTable builds a table from the given entries.
// Entries with a non-positive weight can never be drawn and are skipped.
func NewWeightedTable[T any](entries ...Weighted[T]) (*WeightedTable[T], error) {
	t := &WeightedTable[T]{}
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		t.total += e.Weight
		t.values = append(t.values, e.Value)
		t.cumulative = append(t.cumulative, t.total)
	}
	if len(t.values) == 0 {
		return nil, ErrNoWeight
	}
	return t, nil
}

// Pick draws one outcome using a single Float64 from rng.
func (t *WeightedTable[T]) Pick(rng RNG) T {
	return t.At(rng.Float64())
}

// At maps a unit draw u in [0, 1) onto an outcome.
func (t *WeightedTable[T]) At(u float64) T {
	draw := u * t.total
	i := sort.Search(len(t.cumulative), func(i int) bool {
		return t.cumulative[i] > draw
	})
	if i >= len(t.values) {
		i = len(t.values) - 1
	}
	return t.values[i]
}

// Len returns the number of drawable outcomes.
func (t *WeightedTable[T]) Len() int {
	return len(t.values)
}

// Probability returns the chance of drawing the i-th drawable outcome.
func (t *WeightedTable[T]) Probability(i int) float64 {
	if i < 0 || i >= len(t.values) {
		return 0
	}
	prev := 0.0
	if i > 0 {
		prev = t.cumulative[i-1]
	}
	return (t.cumulative[i] - prev) / t.total
}
