package gamedata

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// RarityDistribution is a probability simplex over the six equipment
// rarities, indexed by game.Rarity ordinal. Each authored row sums to
// 1 and MYTHIC is always 0: crafting never produces mythic gear.
type RarityDistribution [6]float64

// Sum returns the total probability mass of the distribution.
func (d RarityDistribution) Sum() float64 {
	total := 0.0
	for _, p := range d {
		total += p
	}
	return total
}

// defaultQualityDistributions maps the combined material quality tier
// to the rarity simplex crafting samples from.
func defaultQualityDistributions() map[game.Quality]RarityDistribution {
	return map[game.Quality]RarityDistribution{
		game.QualityNormal:    {0.50, 0.30, 0.15, 0.04, 0.01, 0},
		game.QualityGood:      {0.30, 0.40, 0.20, 0.08, 0.02, 0},
		game.QualityFine:      {0.15, 0.30, 0.35, 0.15, 0.05, 0},
		game.QualityRare:      {0.05, 0.15, 0.30, 0.35, 0.15, 0},
		game.QualityLegendary: {0, 0.05, 0.20, 0.35, 0.40, 0},
	}
}
