// Package chance adapts the rpg-toolkit dice roller to the draw shapes
// the progression engines need: probability checks, weighted index
// sampling, and uniform integer ranges. All randomness in the core
// flows through a dice.Roller so tests can drive outcomes with a fixed
// sequence.
package chance

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/railforge/railforge/internal/errors"
)

// scale fixes probability resolution at 1/10000.
const scale = 10000

// Hit draws once and reports success with the given probability.
// probability is clamped to [0,1]; 1.0 always hits, 0.0 never does.
func Hit(roller dice.Roller, probability float64) (bool, error) {
	if probability >= 1.0 {
		return true, nil
	}
	if probability <= 0.0 {
		return false, nil
	}

	draw, err := roller.Roll(scale)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll probability check")
	}
	return draw <= int(math.Round(probability*scale)), nil
}

// PickIndex samples an index from a weight vector by inverse CDF: one
// uniform draw, partitioned by cumulative probability; the first index
// whose cumulative boundary reaches the draw wins, so a draw landing
// exactly on a boundary resolves to the lower bucket.
func PickIndex(roller dice.Roller, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, errors.InvalidArgument("weights must not be empty")
	}

	draw, err := roller.Roll(scale)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll weighted pick")
	}

	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw <= int(math.Round(cumulative*scale)) {
			return i, nil
		}
	}

	// Weights summing below 1 leave a dead zone at the top of the
	// draw range; land there on the last non-zero weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return 0, errors.InvalidArgument("weights must contain a positive entry")
}

// IntBetween draws a uniform integer in [low, high] inclusive.
func IntBetween(roller dice.Roller, low, high int) (int, error) {
	if low > high {
		return 0, errors.InvalidArgumentf("invalid range [%d,%d]", low, high)
	}
	if low == high {
		return low, nil
	}

	draw, err := roller.Roll(high - low + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll integer range")
	}
	return low + draw - 1, nil
}
