package gamedata

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// Item IDs for enhancement consumables.
const (
	ItemEnhanceStone    = "item:enhance_stone"
	ItemProtectionCharm = "item:protection_charm"
)

// EnhanceLevelConfig is one row of the enhancement table, indexed by
// the item's current level. Absence of a row means max level reached.
type EnhanceLevelConfig struct {
	SuccessRate      float64        `json:"success_rate" mapstructure:"success_rate"`
	StoneCost        int            `json:"stone_cost" mapstructure:"stone_cost"`
	GoldCost         int            `json:"gold_cost" mapstructure:"gold_cost"`
	FailureDowngrade bool           `json:"failure_downgrade" mapstructure:"failure_downgrade"`
	Bonus            game.StatBlock `json:"bonus" mapstructure:"bonus"`
}

// defaultEnhanceTable authors 15 enhancement levels. Early levels are
// safe; from +6 a failure downgrades unless a protection charm is
// spent.
func defaultEnhanceTable() []EnhanceLevelConfig {
	return []EnhanceLevelConfig{
		{SuccessRate: 1.00, StoneCost: 1, GoldCost: 100, Bonus: game.StatBlock{Attack: 2, Defense: 2, HP: 10}},
		{SuccessRate: 1.00, StoneCost: 1, GoldCost: 200, Bonus: game.StatBlock{Attack: 2, Defense: 2, HP: 10}},
		{SuccessRate: 0.95, StoneCost: 2, GoldCost: 400, Bonus: game.StatBlock{Attack: 3, Defense: 3, HP: 15}},
		{SuccessRate: 0.90, StoneCost: 2, GoldCost: 700, Bonus: game.StatBlock{Attack: 3, Defense: 3, HP: 15}},
		{SuccessRate: 0.85, StoneCost: 3, GoldCost: 1100, Bonus: game.StatBlock{Attack: 4, Defense: 4, HP: 20, Hit: 1}},
		{SuccessRate: 0.80, StoneCost: 3, GoldCost: 1600, Bonus: game.StatBlock{Attack: 4, Defense: 4, HP: 20, Hit: 1}},
		{SuccessRate: 0.70, StoneCost: 4, GoldCost: 2200, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 5, Defense: 5, HP: 25, Dodge: 1}},
		{SuccessRate: 0.60, StoneCost: 4, GoldCost: 3000, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 5, Defense: 5, HP: 25, Dodge: 1}},
		{SuccessRate: 0.50, StoneCost: 5, GoldCost: 4000, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 6, Defense: 6, HP: 30, Crit: 1}},
		{SuccessRate: 0.45, StoneCost: 5, GoldCost: 5200, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 6, Defense: 6, HP: 30, Crit: 1}},
		{SuccessRate: 0.40, StoneCost: 6, GoldCost: 6600, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 8, Defense: 8, HP: 40, Speed: 1}},
		{SuccessRate: 0.35, StoneCost: 6, GoldCost: 8200, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 8, Defense: 8, HP: 40, Speed: 1}},
		{SuccessRate: 0.30, StoneCost: 8, GoldCost: 10000, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 10, Defense: 10, HP: 50, Crit: 2}},
		{SuccessRate: 0.25, StoneCost: 8, GoldCost: 12000, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 10, Defense: 10, HP: 50, Crit: 2}},
		{SuccessRate: 0.20, StoneCost: 10, GoldCost: 15000, FailureDowngrade: true, Bonus: game.StatBlock{Attack: 12, Defense: 12, HP: 60, Crit: 2, CritDamage: 0.05}},
	}
}
