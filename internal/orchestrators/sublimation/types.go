package sublimation

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// Result classifies a sublimation attempt that spent its costs
type Result string

// Sublimation results. Both are successful attempts: PROGRESS buys
// incremental progress toward the next level, LEVEL_UP crosses it.
const (
	ResultProgress Result = "progress"
	ResultLevelUp  Result = "level_up"
)

// SublimateInput is a single sublimation attempt on an owned item
type SublimateInput struct {
	Equipment *game.Equipment
}

// SublimateOutput reports the attempt. Progress and Threshold describe
// the state after the attempt; RarityPromoted is set only on milestone
// level-ups.
type SublimateOutput struct {
	Result         Result
	Level          int
	Progress       int
	Threshold      int
	SpiritSpent    int
	StaminaSpent   int
	AppliedBonus   game.StatBlock
	RarityPromoted bool
	NewRarity      game.Rarity
}

// attemptCost is the resolved price of one attempt
type attemptCost struct {
	spirit            int
	stamina           int
	milestone         bool
	requiredMaxSpirit int
}
