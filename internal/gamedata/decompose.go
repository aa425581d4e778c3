package gamedata

import (
	"fmt"

	"github.com/railforge/railforge/internal/entities/game"
)

// EquipCategory buckets the six equipment slots into the three families
// the decompose and enhance tables are keyed by.
type EquipCategory string

// Equipment categories
const (
	CategoryWeapon    EquipCategory = "weapon"
	CategoryArmor     EquipCategory = "armor"
	CategoryAccessory EquipCategory = "accessory"
)

// CategoryForSlot maps a slot to its category.
func CategoryForSlot(slot game.EquipmentSlot) (EquipCategory, bool) {
	switch slot {
	case game.SlotWeapon:
		return CategoryWeapon, true
	case game.SlotHead, game.SlotBody, game.SlotLegs, game.SlotFeet:
		return CategoryArmor, true
	case game.SlotAccessory:
		return CategoryAccessory, true
	default:
		return "", false
	}
}

// DecomposeReward is the single deterministic material reward for
// breaking down a piece of equipment.
type DecomposeReward struct {
	MaterialType game.MaterialType `json:"material_type" mapstructure:"material_type"`
	Quality      game.Quality      `json:"quality" mapstructure:"quality"`
	Quantity     int               `json:"quantity" mapstructure:"quantity"`
	DisplayName  string            `json:"display_name" mapstructure:"display_name"`
}

// MaterialKey returns the inventory key the reward credits.
func (r DecomposeReward) MaterialKey() string {
	return game.MaterialKey(r.MaterialType, r.Quality)
}

type decomposeKey struct {
	category EquipCategory
	rarity   game.Rarity
}

// decompose material family per category
var decomposeMaterial = map[EquipCategory]game.MaterialType{
	CategoryWeapon:    game.MaterialOre,
	CategoryArmor:     game.MaterialHide,
	CategoryAccessory: game.MaterialCrystal,
}

// decompose quality per rarity; mythic gear refunds legendary-grade
// material in bulk rather than introducing a sixth material quality.
var decomposeQuality = map[game.Rarity]game.Quality{
	game.RarityCommon:    game.QualityNormal,
	game.RarityUncommon:  game.QualityGood,
	game.RarityRare:      game.QualityFine,
	game.RarityEpic:      game.QualityRare,
	game.RarityLegendary: game.QualityLegendary,
	game.RarityMythic:    game.QualityLegendary,
}

var decomposeQuantity = map[game.Rarity]int{
	game.RarityCommon:    2,
	game.RarityUncommon:  3,
	game.RarityRare:      5,
	game.RarityEpic:      8,
	game.RarityLegendary: 12,
	game.RarityMythic:    20,
}

var materialDisplayName = map[game.MaterialType]string{
	game.MaterialWood:    "Timber",
	game.MaterialOre:     "Ore",
	game.MaterialHide:    "Hide",
	game.MaterialFiber:   "Fiber",
	game.MaterialCrystal: "Crystal",
	game.MaterialBone:    "Bone",
}

func defaultDecomposeTable() map[decomposeKey]DecomposeReward {
	table := make(map[decomposeKey]DecomposeReward)
	for category, mt := range decomposeMaterial {
		for _, rarity := range game.Rarities() {
			quality := decomposeQuality[rarity]
			table[decomposeKey{category: category, rarity: rarity}] = DecomposeReward{
				MaterialType: mt,
				Quality:      quality,
				Quantity:     decomposeQuantity[rarity],
				DisplayName:  fmt.Sprintf("%s %s", rarity.Label(), materialDisplayName[mt]),
			}
		}
	}
	return table
}
