// Package crafting implements the crafting engine: recipe lookup,
// material sufficiency checks, weighted-quality rarity rolls, and
// equipment instantiation.
package crafting

//go:generate mockgen -destination=mock/mock_service.go -package=craftingmock github.com/railforge/railforge/internal/orchestrators/crafting Service,Inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/pkg/chance"
	"github.com/railforge/railforge/internal/pkg/idgen"
)

// Inventory is the slice of the player inventory the crafting engine
// needs: material counts, material deduction, and equipment intake.
type Inventory interface {
	ItemQuantity(id string) int
	RemoveItem(id string, quantity int) error
	AddEquipment(eq *game.Equipment)
}

// Service defines the interface for crafting operations
type Service interface {
	GetRecipe(ctx context.Context, input *GetRecipeInput) (*GetRecipeOutput, error)
	CanCraft(ctx context.Context, input *CanCraftInput) (*CanCraftOutput, error)
	PreviewQualityDistribution(
		ctx context.Context,
		input *PreviewDistributionInput,
	) (*PreviewDistributionOutput, error)
	RollQuality(ctx context.Context, input *RollQualityInput) (*RollQualityOutput, error)
	Craft(ctx context.Context, input *CraftInput) (*CraftOutput, error)
}

// Config holds the dependencies for the crafting orchestrator
type Config struct {
	Tables      *gamedata.Tables
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Inventory   Inventory
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}

	return vb.Build()
}

type orchestrator struct {
	tables    *gamedata.Tables
	roller    dice.Roller
	idGen     idgen.Generator
	inventory Inventory
}

// NewOrchestrator creates a new crafting orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tables:    cfg.Tables,
		roller:    cfg.Roller,
		idGen:     cfg.IDGenerator,
		inventory: cfg.Inventory,
	}, nil
}

// GetRecipe returns the unique recipe for the slot
func (o *orchestrator) GetRecipe(_ context.Context, input *GetRecipeInput) (*GetRecipeOutput, error) {
	if !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("unknown equipment slot %q", input.Slot)
	}

	recipe, err := o.tables.Recipe(input.Slot)
	if err != nil {
		return nil, err
	}

	return &GetRecipeOutput{Recipe: recipe}, nil
}

// CanCraft checks material sufficiency at the selected qualities
// without mutating anything
func (o *orchestrator) CanCraft(ctx context.Context, input *CanCraftInput) (*CanCraftOutput, error) {
	_, shortfalls, err := o.checkMaterials(ctx, input.Slot, input.BaseQuality, input.SecondaryQuality)
	if err != nil {
		return nil, err
	}

	if len(shortfalls) > 0 {
		first := shortfalls[0]
		return &CanCraftOutput{
			OK: false,
			Reason: fmt.Sprintf("insufficient material %s: have %d, need %d",
				first.MaterialKey, first.Have, first.Need),
			Shortfalls: shortfalls,
		}, nil
	}

	return &CanCraftOutput{OK: true}, nil
}

// PreviewQualityDistribution returns the rarity probabilities the
// selected material pair would sample from
func (o *orchestrator) PreviewQualityDistribution(
	_ context.Context,
	input *PreviewDistributionInput,
) (*PreviewDistributionOutput, error) {
	combined, err := combinedQuality(input.BaseQuality, input.SecondaryQuality)
	if err != nil {
		return nil, err
	}

	dist, err := o.tables.QualityDistribution(combined)
	if err != nil {
		return nil, err
	}

	return &PreviewDistributionOutput{
		CombinedQuality: combined,
		Distribution:    distributionMap(dist),
	}, nil
}

// RollQuality samples an equipment rarity for the selected material
// pair using one uniform draw over the combined tier's distribution
func (o *orchestrator) RollQuality(ctx context.Context, input *RollQualityInput) (*RollQualityOutput, error) {
	rarity, _, err := o.rollRarity(ctx, input.BaseQuality, input.SecondaryQuality)
	if err != nil {
		return nil, err
	}
	return &RollQualityOutput{Rarity: rarity}, nil
}

// Craft validates materials, deducts them, rolls a rarity, and adds a
// fresh level-1 equipment instance to the inventory. Material checks
// all precede the deductions; once materials are spent the remaining
// steps cannot fail except on authoring bugs, which surface as
// internal errors.
func (o *orchestrator) Craft(ctx context.Context, input *CraftInput) (*CraftOutput, error) {
	recipe, shortfalls, err := o.checkMaterials(ctx, input.Slot, input.BaseQuality, input.SecondaryQuality)
	if err != nil {
		return nil, err
	}
	if len(shortfalls) > 0 {
		first := shortfalls[0]
		return nil, errors.ResourceExhaustedf("insufficient material %s", first.MaterialKey).
			WithMeta("have", first.Have).
			WithMeta("need", first.Need)
	}

	baseKey := game.MaterialKey(recipe.BaseMaterial, input.BaseQuality)
	secondaryKey := game.MaterialKey(recipe.SecondaryMaterial, input.SecondaryQuality)

	if err := o.inventory.RemoveItem(baseKey, recipe.BaseCost); err != nil {
		return nil, errors.Wrap(err, "failed to deduct base material")
	}
	if err := o.inventory.RemoveItem(secondaryKey, recipe.SecondaryCost); err != nil {
		return nil, errors.Wrap(err, "failed to deduct secondary material")
	}

	rarity, dist, err := o.rollRarity(ctx, input.BaseQuality, input.SecondaryQuality)
	if err != nil {
		return nil, err
	}

	name, stats, err := o.tables.EquipmentTemplate(input.Slot, rarity)
	if err != nil {
		// Materials are already spent; a missing template for a valid
		// slot is an authored-data bug, not a player-facing failure.
		return nil, errors.Wrap(err, "equipment template missing after deduction")
	}

	equipment := &game.Equipment{
		ID:         fmt.Sprintf("equip:%s:%s", input.Slot, rarity),
		InstanceID: o.idGen.Generate(),
		Name:       name,
		Slot:       input.Slot,
		Rarity:     rarity,
		Stats:      stats,
	}
	o.inventory.AddEquipment(equipment)

	slog.Info("Crafted equipment",
		"slot", input.Slot,
		"rarity", rarity,
		"instance_id", equipment.InstanceID,
		"base_quality", input.BaseQuality,
		"secondary_quality", input.SecondaryQuality,
	)

	return &CraftOutput{
		Equipment:    equipment,
		Rarity:       rarity,
		Distribution: distributionMap(dist),
	}, nil
}

// checkMaterials resolves the recipe and reports every material
// shortfall at the selected qualities
func (o *orchestrator) checkMaterials(
	_ context.Context,
	slot game.EquipmentSlot,
	baseQuality, secondaryQuality game.Quality,
) (gamedata.Recipe, []MaterialShortfall, error) {
	if !slot.Valid() {
		return gamedata.Recipe{}, nil, errors.InvalidArgumentf("unknown equipment slot %q", slot)
	}
	if !baseQuality.Valid() {
		return gamedata.Recipe{}, nil, errors.InvalidArgumentf("invalid base quality %q", baseQuality)
	}
	if !secondaryQuality.Valid() {
		return gamedata.Recipe{}, nil, errors.InvalidArgumentf("invalid secondary quality %q", secondaryQuality)
	}

	recipe, err := o.tables.Recipe(slot)
	if err != nil {
		return gamedata.Recipe{}, nil, err
	}

	var shortfalls []MaterialShortfall
	baseKey := game.MaterialKey(recipe.BaseMaterial, baseQuality)
	if have := o.inventory.ItemQuantity(baseKey); have < recipe.BaseCost {
		shortfalls = append(shortfalls, MaterialShortfall{
			MaterialKey: baseKey,
			Have:        have,
			Need:        recipe.BaseCost,
		})
	}
	secondaryKey := game.MaterialKey(recipe.SecondaryMaterial, secondaryQuality)
	if have := o.inventory.ItemQuantity(secondaryKey); have < recipe.SecondaryCost {
		shortfalls = append(shortfalls, MaterialShortfall{
			MaterialKey: secondaryKey,
			Have:        have,
			Need:        recipe.SecondaryCost,
		})
	}

	return recipe, shortfalls, nil
}

func (o *orchestrator) rollRarity(
	_ context.Context,
	baseQuality, secondaryQuality game.Quality,
) (game.Rarity, gamedata.RarityDistribution, error) {
	combined, err := combinedQuality(baseQuality, secondaryQuality)
	if err != nil {
		return "", gamedata.RarityDistribution{}, err
	}

	dist, err := o.tables.QualityDistribution(combined)
	if err != nil {
		return "", gamedata.RarityDistribution{}, err
	}

	idx, err := chance.PickIndex(o.roller, dist[:])
	if err != nil {
		return "", gamedata.RarityDistribution{}, err
	}

	return game.Rarities()[idx], dist, nil
}

// combinedQuality folds the two material qualities into one tier with
// base weighted twice the secondary, rounding to the nearest tier.
// Thirds never land exactly on .5, but the integer form rounds half up
// by construction, which is the documented choice.
func combinedQuality(base, secondary game.Quality) (game.Quality, error) {
	baseIdx := base.Index()
	if baseIdx < 0 {
		return "", errors.InvalidArgumentf("invalid base quality %q", base)
	}
	secondaryIdx := secondary.Index()
	if secondaryIdx < 0 {
		return "", errors.InvalidArgumentf("invalid secondary quality %q", secondary)
	}

	combined := (2*baseIdx + secondaryIdx + 1) / 3
	return game.QualityFromIndex(combined)
}

func distributionMap(dist gamedata.RarityDistribution) map[game.Rarity]float64 {
	out := make(map[game.Rarity]float64, len(dist))
	for i, rarity := range game.Rarities() {
		out[rarity] = dist[i]
	}
	return out
}
