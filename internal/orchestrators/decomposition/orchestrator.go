// Package decomposition implements equipment recycling: a pure lookup
// from (slot category, rarity) to a single material reward. The engine
// never touches the inventory; it returns a value object for the
// caller to credit.
package decomposition

//go:generate mockgen -destination=mock/mock_service.go -package=decompositionmock github.com/railforge/railforge/internal/orchestrators/decomposition Service

import (
	"context"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
)

// Service defines the interface for decomposition operations
type Service interface {
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)
	Decompose(ctx context.Context, input *DecomposeInput) (*DecomposeOutput, error)
}

// Config holds the dependencies for the decomposition orchestrator
type Config struct {
	Tables *gamedata.Tables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}

	return vb.Build()
}

type orchestrator struct {
	tables *gamedata.Tables
}

// NewOrchestrator creates a new decomposition orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{tables: cfg.Tables}, nil
}

// Preview returns the reward breaking down the item would yield,
// without mutating anything
func (o *orchestrator) Preview(_ context.Context, input *PreviewInput) (*PreviewOutput, error) {
	reward, err := o.lookup(input.Kind, input.Slot, input.Rarity)
	if err != nil {
		return nil, err
	}

	return &PreviewOutput{
		Reward:      reward,
		RarityLabel: input.Rarity.Label(),
		Mythic:      input.Rarity == game.RarityMythic,
	}, nil
}

// Decompose resolves the reward for a broken-down item. Deterministic:
// the same (slot, rarity) always yields the same reward.
func (o *orchestrator) Decompose(_ context.Context, input *DecomposeInput) (*DecomposeOutput, error) {
	reward, err := o.lookup(input.Kind, input.Slot, input.Rarity)
	if err != nil {
		return nil, err
	}

	return &DecomposeOutput{Reward: reward}, nil
}

func (o *orchestrator) lookup(kind game.ItemKind, slot game.EquipmentSlot, rarity game.Rarity) (gamedata.DecomposeReward, error) {
	if kind != game.ItemKindEquipment {
		return gamedata.DecomposeReward{}, errors.FailedPreconditionf(
			"items of kind %q cannot be decomposed", kind)
	}

	category, ok := gamedata.CategoryForSlot(slot)
	if !ok {
		return gamedata.DecomposeReward{}, errors.FailedPreconditionf(
			"equipment in slot %q cannot be decomposed", slot)
	}
	if !rarity.Valid() {
		return gamedata.DecomposeReward{}, errors.InvalidArgumentf("unknown rarity %q", rarity)
	}

	return o.tables.DecomposeReward(category, rarity)
}
