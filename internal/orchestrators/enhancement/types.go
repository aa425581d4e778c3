package enhancement

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// Outcome is the result of a single enhancement attempt
type Outcome string

// Enhancement outcomes
const (
	OutcomeSuccess          Outcome = "success"
	OutcomeFailure          Outcome = "failure"
	OutcomeFailureDowngrade Outcome = "failure_downgrade"
)

// PreviewInput requests the enhancement preview for an item
type PreviewInput struct {
	Equipment *game.Equipment
}

// PreviewOutput describes the pending attempt: odds, costs,
// affordability, and the stat totals before and after a success
type PreviewOutput struct {
	CurrentLevel     int
	TargetLevel      int
	SuccessRate      float64
	StoneCost        int
	GoldCost         int
	FailureDowngrade bool
	CanAffordGold    bool
	CanAffordStones  bool
	// BonusBefore is the cumulative enhancement bonus at the current
	// level; BonusAfter adds the target level's delta on top.
	BonusBefore game.StatBlock
	BonusAfter  game.StatBlock
}

// EnhanceInput is a single enhancement attempt
type EnhanceInput struct {
	Equipment     *game.Equipment
	UseProtection bool
}

// EnhanceOutput reports the attempt result. AppliedBonus is the stat
// delta applied on success (zero otherwise).
type EnhanceOutput struct {
	Outcome      Outcome
	NewLevel     int
	AppliedBonus game.StatBlock
}
