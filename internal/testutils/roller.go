package testutils

import (
	"fmt"
	"math"
)

// SequenceRoller is a dice.Roller that replays a fixed sequence of
// draws, making probabilistic engine outcomes deterministic in tests.
// When the sequence is exhausted it keeps returning the last value.
type SequenceRoller struct {
	Draws []int
	next  int
}

// Roll returns the next scripted draw clamped into [1, size].
func (r *SequenceRoller) Roll(size int) (int, error) {
	if len(r.Draws) == 0 {
		return 0, fmt.Errorf("sequence roller has no draws configured")
	}

	idx := r.next
	if idx >= len(r.Draws) {
		idx = len(r.Draws) - 1
	} else {
		r.next++
	}

	draw := r.Draws[idx]
	if draw < 1 {
		draw = 1
	}
	if draw > size {
		draw = size
	}
	return draw, nil
}

// RollN returns count scripted draws.
func (r *SequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		draw, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = draw
	}
	return out, nil
}

// FractionRoller always lands at the given fraction of the die size.
// Fraction 0.0 rolls the minimum, 1.0 the maximum.
type FractionRoller struct {
	Fraction float64
}

// Roll returns round(fraction*size) clamped into [1, size].
func (r *FractionRoller) Roll(size int) (int, error) {
	draw := int(math.Round(r.Fraction * float64(size)))
	if draw < 1 {
		draw = 1
	}
	if draw > size {
		draw = size
	}
	return draw, nil
}

// RollN returns count identical fractional draws.
func (r *FractionRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		draw, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = draw
	}
	return out, nil
}
