// Package enhancement implements the equipment enhancement engine: a
// per-item level progression with authored success rates, stone/gold
// costs, and downgrade-on-failure from the risky levels up.
package enhancement

//go:generate mockgen -destination=mock/mock_service.go -package=enhancementmock github.com/railforge/railforge/internal/orchestrators/enhancement Service,Inventory,Purse

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/pkg/chance"
)

// Inventory is the slice of the player inventory the enhancement
// engine needs: enhance stones and protection charms.
type Inventory interface {
	ItemQuantity(id string) int
	RemoveItem(id string, quantity int) error
}

// Purse exposes the player's gold.
type Purse interface {
	Gold() int
	SpendGold(amount int) error
}

// Service defines the interface for enhancement operations
type Service interface {
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)
	Enhance(ctx context.Context, input *EnhanceInput) (*EnhanceOutput, error)
}

// Config holds the dependencies for the enhancement orchestrator
type Config struct {
	Tables    *gamedata.Tables
	Roller    dice.Roller
	Inventory Inventory
	Purse     Purse
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
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Purse == nil {
		vb.RequiredField("Purse")
	}

	return vb.Build()
}

type orchestrator struct {
	tables    *gamedata.Tables
	roller    dice.Roller
	inventory Inventory
	purse     Purse
}

// NewOrchestrator creates a new enhancement orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tables:    cfg.Tables,
		roller:    cfg.Roller,
		inventory: cfg.Inventory,
		purse:     cfg.Purse,
	}, nil
}

// Preview returns the odds, costs, and stat deltas of the next
// enhancement attempt without mutating anything
func (o *orchestrator) Preview(_ context.Context, input *PreviewInput) (*PreviewOutput, error) {
	cfg, err := o.validateAttempt(input.Equipment)
	if err != nil {
		return nil, err
	}

	level := input.Equipment.EnhanceLevel
	before := o.cumulativeBonus(level)
	after := before
	after.Add(cfg.Bonus)

	return &PreviewOutput{
		CurrentLevel:     level,
		TargetLevel:      level + 1,
		SuccessRate:      cfg.SuccessRate,
		StoneCost:        cfg.StoneCost,
		GoldCost:         cfg.GoldCost,
		FailureDowngrade: cfg.FailureDowngrade,
		CanAffordGold:    o.purse.Gold() >= cfg.GoldCost,
		CanAffordStones:  o.inventory.ItemQuantity(gamedata.ItemEnhanceStone) >= cfg.StoneCost,
		BonusBefore:      before,
		BonusAfter:       after,
	}, nil
}

// Enhance performs one enhancement attempt. All cost checks precede
// every deduction; once costs are paid the single roll decides the
// outcome and costs are never refunded.
func (o *orchestrator) Enhance(_ context.Context, input *EnhanceInput) (*EnhanceOutput, error) {
	item := input.Equipment
	cfg, err := o.validateAttempt(item)
	if err != nil {
		return nil, err
	}

	if have := o.purse.Gold(); have < cfg.GoldCost {
		return nil, errors.ResourceExhausted("not enough gold").
			WithMeta("have", have).
			WithMeta("need", cfg.GoldCost)
	}
	if have := o.inventory.ItemQuantity(gamedata.ItemEnhanceStone); have < cfg.StoneCost {
		return nil, errors.ResourceExhausted("not enough enhance stones").
			WithMeta("have", have).
			WithMeta("need", cfg.StoneCost)
	}
	if input.UseProtection {
		if have := o.inventory.ItemQuantity(gamedata.ItemProtectionCharm); have < 1 {
			return nil, errors.ResourceExhausted("no protection charm").
				WithMeta("have", have).
				WithMeta("need", 1)
		}
	}

	if err := o.purse.SpendGold(cfg.GoldCost); err != nil {
		return nil, errors.Wrap(err, "failed to spend gold")
	}
	if err := o.inventory.RemoveItem(gamedata.ItemEnhanceStone, cfg.StoneCost); err != nil {
		return nil, errors.Wrap(err, "failed to consume enhance stones")
	}
	if input.UseProtection {
		if err := o.inventory.RemoveItem(gamedata.ItemProtectionCharm, 1); err != nil {
			return nil, errors.Wrap(err, "failed to consume protection charm")
		}
	}

	success, err := chance.Hit(o.roller, cfg.SuccessRate)
	if err != nil {
		return nil, err
	}

	if success {
		item.EnhanceLevel++
		item.Stats.Add(cfg.Bonus)

		slog.Info("Enhancement succeeded",
			"instance_id", item.InstanceID,
			"level", item.EnhanceLevel,
		)
		return &EnhanceOutput{
			Outcome:      OutcomeSuccess,
			NewLevel:     item.EnhanceLevel,
			AppliedBonus: cfg.Bonus,
		}, nil
	}

	if cfg.FailureDowngrade && !input.UseProtection && item.EnhanceLevel > 0 {
		// Losing a level removes the bonus that reaching it granted.
		lost, ok := o.tables.EnhanceLevel(item.EnhanceLevel - 1)
		item.EnhanceLevel--
		if ok {
			item.Stats.Sub(lost.Bonus)
		}

		slog.Info("Enhancement failed with downgrade",
			"instance_id", item.InstanceID,
			"level", item.EnhanceLevel,
		)
		return &EnhanceOutput{
			Outcome:  OutcomeFailureDowngrade,
			NewLevel: item.EnhanceLevel,
		}, nil
	}

	slog.Info("Enhancement failed",
		"instance_id", item.InstanceID,
		"level", item.EnhanceLevel,
		"protected", input.UseProtection,
	)
	return &EnhanceOutput{
		Outcome:  OutcomeFailure,
		NewLevel: item.EnhanceLevel,
	}, nil
}

// validateAttempt checks the item is enhanceable and below the table
// cap, returning the level row for the pending attempt
func (o *orchestrator) validateAttempt(item *game.Equipment) (gamedata.EnhanceLevelConfig, error) {
	if item == nil {
		return gamedata.EnhanceLevelConfig{}, errors.InvalidArgument("equipment is required")
	}
	if _, ok := gamedata.CategoryForSlot(item.Slot); !ok {
		return gamedata.EnhanceLevelConfig{}, errors.FailedPreconditionf(
			"item %q is not enhanceable", item.Name)
	}

	cfg, ok := o.tables.EnhanceLevel(item.EnhanceLevel)
	if !ok {
		return gamedata.EnhanceLevelConfig{}, errors.FailedPreconditionf(
			"item %q is already at max enhancement level %d", item.Name, item.EnhanceLevel)
	}
	return cfg, nil
}

// cumulativeBonus sums every per-level bonus applied to reach the
// given level
func (o *orchestrator) cumulativeBonus(level int) game.StatBlock {
	var total game.StatBlock
	for l := 0; l < level; l++ {
		if cfg, ok := o.tables.EnhanceLevel(l); ok {
			total.Add(cfg.Bonus)
		}
	}
	return total
}
