// Package gamedata holds the authored balance tables the engines run
// on: recipes, quality distributions, enhancement levels, decompose
// rewards, and skill/quest templates. Defaults are exhaustive over the
// enum domains so a missing entry is always an authoring bug, never a
// silent fallback. Load applies YAML overrides on top of the defaults.
package gamedata

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// Recipe maps an equipment slot to its two material costs. Exactly one
// recipe exists per slot.
type Recipe struct {
	Slot              game.EquipmentSlot `json:"slot" mapstructure:"slot"`
	BaseMaterial      game.MaterialType  `json:"base_material" mapstructure:"base_material"`
	BaseCost          int                `json:"base_cost" mapstructure:"base_cost"`
	SecondaryMaterial game.MaterialType  `json:"secondary_material" mapstructure:"secondary_material"`
	SecondaryCost     int                `json:"secondary_cost" mapstructure:"secondary_cost"`
}

func defaultRecipes() map[game.EquipmentSlot]Recipe {
	return map[game.EquipmentSlot]Recipe{
		game.SlotHead: {
			Slot:              game.SlotHead,
			BaseMaterial:      game.MaterialHide,
			BaseCost:          4,
			SecondaryMaterial: game.MaterialFiber,
			SecondaryCost:     2,
		},
		game.SlotBody: {
			Slot:              game.SlotBody,
			BaseMaterial:      game.MaterialHide,
			BaseCost:          6,
			SecondaryMaterial: game.MaterialOre,
			SecondaryCost:     3,
		},
		game.SlotLegs: {
			Slot:              game.SlotLegs,
			BaseMaterial:      game.MaterialFiber,
			BaseCost:          5,
			SecondaryMaterial: game.MaterialHide,
			SecondaryCost:     2,
		},
		game.SlotFeet: {
			Slot:              game.SlotFeet,
			BaseMaterial:      game.MaterialHide,
			BaseCost:          3,
			SecondaryMaterial: game.MaterialBone,
			SecondaryCost:     2,
		},
		game.SlotWeapon: {
			Slot:              game.SlotWeapon,
			BaseMaterial:      game.MaterialOre,
			BaseCost:          6,
			SecondaryMaterial: game.MaterialWood,
			SecondaryCost:     3,
		},
		game.SlotAccessory: {
			Slot:              game.SlotAccessory,
			BaseMaterial:      game.MaterialCrystal,
			BaseCost:          3,
			SecondaryMaterial: game.MaterialBone,
			SecondaryCost:     1,
		},
	}
}
