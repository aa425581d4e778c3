package crafting

import (
	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/gamedata"
)

// MaterialShortfall reports how far the inventory is from covering one
// material cost.
type MaterialShortfall struct {
	MaterialKey string
	Have        int
	Need        int
}

// GetRecipeInput requests the recipe for a slot
type GetRecipeInput struct {
	Slot game.EquipmentSlot
}

// GetRecipeOutput carries the unique recipe for the slot
type GetRecipeOutput struct {
	Recipe gamedata.Recipe
}

// CanCraftInput asks whether the inventory covers a craft at the
// selected material qualities
type CanCraftInput struct {
	Slot             game.EquipmentSlot
	BaseQuality      game.Quality
	SecondaryQuality game.Quality
}

// CanCraftOutput reports craftability; when OK is false Shortfalls
// lists each missing material with have/need amounts
type CanCraftOutput struct {
	OK         bool
	Reason     string
	Shortfalls []MaterialShortfall
}

// PreviewDistributionInput selects the two material qualities
type PreviewDistributionInput struct {
	BaseQuality      game.Quality
	SecondaryQuality game.Quality
}

// PreviewDistributionOutput carries the rarity probabilities the craft
// would sample from
type PreviewDistributionOutput struct {
	CombinedQuality game.Quality
	Distribution    map[game.Rarity]float64
}

// RollQualityInput selects the two material qualities
type RollQualityInput struct {
	BaseQuality      game.Quality
	SecondaryQuality game.Quality
}

// RollQualityOutput carries the sampled rarity
type RollQualityOutput struct {
	Rarity game.Rarity
}

// CraftInput is a full craft request
type CraftInput struct {
	Slot             game.EquipmentSlot
	BaseQuality      game.Quality
	SecondaryQuality game.Quality
}

// CraftOutput carries the crafted equipment, the rarity that was
// rolled, and the distribution it was sampled from for transparency
type CraftOutput struct {
	Equipment    *game.Equipment
	Rarity       game.Rarity
	Distribution map[game.Rarity]float64
}
