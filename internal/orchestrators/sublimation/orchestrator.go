// Package sublimation implements the second progression axis on
// equipment: spirit/stamina is converted into accumulated progress,
// and crossing each level threshold grants flat stat bonuses. Levels
// 3, 5 and 8 additionally promote the item's rarity.
package sublimation

//go:generate mockgen -destination=mock/mock_service.go -package=sublimationmock github.com/railforge/railforge/internal/orchestrators/sublimation Service,SpiritPool

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/pkg/chance"
)

// Progress gained per attempt is uniform in [minProgressGain, maxProgressGain].
const (
	minProgressGain = 10
	maxProgressGain = 25
)

// SpiritPool is the slice of the player resource pool the sublimation
// engine draws from.
type SpiritPool interface {
	Spirit() int
	MaxSpirit() int
	Stamina() int
	SpendSpirit(amount int) error
	SpendStamina(amount int) error
}

// Service defines the interface for sublimation operations
type Service interface {
	Sublimate(ctx context.Context, input *SublimateInput) (*SublimateOutput, error)
}

// Config holds the dependencies for the sublimation orchestrator
type Config struct {
	Tables *gamedata.Tables
	Roller dice.Roller
	Pool   SpiritPool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Pool == nil {
		vb.RequiredField("Pool")
	}

	return vb.Build()
}

type orchestrator struct {
	tables *gamedata.Tables
	roller dice.Roller
	pool   SpiritPool
}

// NewOrchestrator creates a new sublimation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tables: cfg.Tables,
		roller: cfg.Roller,
		pool:   cfg.Pool,
	}, nil
}

// Sublimate performs one attempt. All resource checks precede any
// deduction; once spirit and stamina are spent the progress gain is
// rolled and applied, and crossing the level threshold grants the
// level's bonuses.
func (o *orchestrator) Sublimate(_ context.Context, input *SublimateInput) (*SublimateOutput, error) {
	item := input.Equipment
	category, bonus, err := o.validateItem(item)
	if err != nil {
		return nil, err
	}

	cost := costForLevel(item.SublimationLevel)
	if cost.milestone && o.pool.MaxSpirit() < cost.requiredMaxSpirit {
		return nil, errors.FailedPrecondition("max spirit too low for milestone sublimation").
			WithMeta("have", o.pool.MaxSpirit()).
			WithMeta("need", cost.requiredMaxSpirit)
	}
	if have := o.pool.Spirit(); have < cost.spirit {
		return nil, errors.ResourceExhausted("not enough spirit").
			WithMeta("have", have).
			WithMeta("need", cost.spirit)
	}
	if have := o.pool.Stamina(); have < cost.stamina {
		return nil, errors.ResourceExhausted("not enough stamina").
			WithMeta("have", have).
			WithMeta("need", cost.stamina)
	}

	if err := o.pool.SpendSpirit(cost.spirit); err != nil {
		return nil, errors.Wrap(err, "failed to spend spirit")
	}
	if err := o.pool.SpendStamina(cost.stamina); err != nil {
		return nil, errors.Wrap(err, "failed to spend stamina")
	}

	gain, err := chance.IntBetween(o.roller, minProgressGain, maxProgressGain)
	if err != nil {
		return nil, err
	}

	threshold := levelThreshold(item.SublimationLevel)
	item.SublimationProgress += gain
	if item.SublimationProgress < threshold {
		slog.Info("Sublimation progressed",
			"instance_id", item.InstanceID,
			"level", item.SublimationLevel,
			"progress", item.SublimationProgress,
			"threshold", threshold,
		)
		return &SublimateOutput{
			Result:       ResultProgress,
			Level:        item.SublimationLevel,
			Progress:     item.SublimationProgress,
			Threshold:    threshold,
			SpiritSpent:  cost.spirit,
			StaminaSpent: cost.stamina,
			NewRarity:    item.Rarity,
		}, nil
	}

	item.SublimationLevel++
	item.SublimationProgress = 0
	item.Stats.Add(bonus.Flat)

	out := &SublimateOutput{
		Result:       ResultLevelUp,
		Level:        item.SublimationLevel,
		Threshold:    levelThreshold(item.SublimationLevel),
		SpiritSpent:  cost.spirit,
		StaminaSpent: cost.stamina,
		AppliedBonus: bonus.Flat,
		NewRarity:    item.Rarity,
	}

	if _, ok := gamedata.SublimationMilestoneIndex(item.SublimationLevel); ok {
		item.Rarity = item.Rarity.Promote()
		item.Stats.Scale(bonus.MilestoneMultiplier)
		out.RarityPromoted = true
		out.NewRarity = item.Rarity
	}

	slog.Info("Sublimation level up",
		"instance_id", item.InstanceID,
		"level", item.SublimationLevel,
		"rarity", item.Rarity,
		"category", category,
		"promoted", out.RarityPromoted,
	)
	return out, nil
}

// validateItem checks the item can still be sublimated and resolves
// its category bonus row
func (o *orchestrator) validateItem(item *game.Equipment) (gamedata.EquipCategory, gamedata.SublimationBonus, error) {
	if item == nil {
		return "", gamedata.SublimationBonus{}, errors.InvalidArgument("equipment is required")
	}

	category, ok := gamedata.CategoryForSlot(item.Slot)
	if !ok {
		return "", gamedata.SublimationBonus{}, errors.FailedPreconditionf(
			"item %q cannot be sublimated", item.Name)
	}
	if item.SublimationLevel >= gamedata.MaxSublimationLevel {
		return "", gamedata.SublimationBonus{}, errors.FailedPreconditionf(
			"item %q is already at max sublimation level %d", item.Name, item.SublimationLevel)
	}

	bonus, err := o.tables.SublimationBonus(category)
	if err != nil {
		return "", gamedata.SublimationBonus{}, err
	}
	return category, bonus, nil
}

// costForLevel resolves the price of one attempt at the given current
// level. Working toward a milestone level doubles both costs and adds
// a max-spirit requirement.
func costForLevel(level int) attemptCost {
	cost := attemptCost{
		spirit:  (level + 1) * 10,
		stamina: (level + 1) * 5,
	}
	if idx, ok := gamedata.SublimationMilestoneIndex(level + 1); ok {
		cost.spirit *= 2
		cost.stamina *= 2
		cost.milestone = true
		cost.requiredMaxSpirit = 30 + idx*20
	}
	return cost
}

func levelThreshold(level int) int {
	return (level + 1) * 20
}
