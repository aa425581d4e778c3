package crafting_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/orchestrators/crafting"
	"github.com/railforge/railforge/internal/pkg/idgen"
	"github.com/railforge/railforge/internal/testutils"
)

// fakeInventory is an in-memory crafting.Inventory.
type fakeInventory struct {
	items     map[string]int
	equipment []*game.Equipment
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{items: make(map[string]int)}
}

func (f *fakeInventory) ItemQuantity(id string) int {
	return f.items[id]
}

func (f *fakeInventory) RemoveItem(id string, quantity int) error {
	if f.items[id] < quantity {
		return errors.ResourceExhaustedf("not enough %s", id)
	}
	f.items[id] -= quantity
	return nil
}

func (f *fakeInventory) AddEquipment(eq *game.Equipment) {
	f.equipment = append(f.equipment, eq)
}

func (f *fakeInventory) snapshot() map[string]int {
	out := make(map[string]int, len(f.items))
	for k, v := range f.items {
		out[k] = v
	}
	return out
}

type CraftingTestSuite struct {
	suite.Suite
	ctx       context.Context
	tables    *gamedata.Tables
	inventory *fakeInventory
}

func TestCraftingSuite(t *testing.T) {
	suite.Run(t, new(CraftingTestSuite))
}

func (s *CraftingTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.tables = gamedata.Default()
	s.inventory = newFakeInventory()
}

func (s *CraftingTestSuite) newService(roller dice.Roller) crafting.Service {
	svc, err := crafting.NewOrchestrator(&crafting.Config{
		Tables:      s.tables,
		Roller:      roller,
		IDGenerator: idgen.NewSequential("equip"),
		Inventory:   s.inventory,
	})
	s.Require().NoError(err)
	return svc
}

func (s *CraftingTestSuite) stockForWeapon(baseQty, secondaryQty int) {
	s.inventory.items[game.MaterialKey(game.MaterialOre, game.QualityNormal)] = baseQty
	s.inventory.items[game.MaterialKey(game.MaterialWood, game.QualityNormal)] = secondaryQty
}

func (s *CraftingTestSuite) TestConfigValidation() {
	_, err := crafting.NewOrchestrator(&crafting.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CraftingTestSuite) TestGetRecipe() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})

	out, err := svc.GetRecipe(s.ctx, &crafting.GetRecipeInput{Slot: game.SlotWeapon})
	s.Require().NoError(err)
	s.Assert().Equal(game.SlotWeapon, out.Recipe.Slot)
	s.Assert().Equal(game.MaterialOre, out.Recipe.BaseMaterial)

	_, err = svc.GetRecipe(s.ctx, &crafting.GetRecipeInput{Slot: game.EquipmentSlot("tail")})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CraftingTestSuite) TestCanCraftReportsShortfall() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	s.stockForWeapon(2, 3) // weapon needs 6 ore + 3 wood

	out, err := svc.CanCraft(s.ctx, &crafting.CanCraftInput{
		Slot:             game.SlotWeapon,
		BaseQuality:      game.QualityNormal,
		SecondaryQuality: game.QualityNormal,
	})
	s.Require().NoError(err)
	s.Assert().False(out.OK)
	s.Require().Len(out.Shortfalls, 1)
	s.Assert().Equal(2, out.Shortfalls[0].Have)
	s.Assert().Equal(6, out.Shortfalls[0].Need)
	s.Assert().Contains(out.Reason, "have 2, need 6")
}

func (s *CraftingTestSuite) TestCanCraftOK() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	s.stockForWeapon(6, 3)

	out, err := svc.CanCraft(s.ctx, &crafting.CanCraftInput{
		Slot:             game.SlotWeapon,
		BaseQuality:      game.QualityNormal,
		SecondaryQuality: game.QualityNormal,
	})
	s.Require().NoError(err)
	s.Assert().True(out.OK)
	s.Assert().Empty(out.Shortfalls)
}

func (s *CraftingTestSuite) TestPreviewQualityDistribution() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})

	out, err := svc.PreviewQualityDistribution(s.ctx, &crafting.PreviewDistributionInput{
		BaseQuality:      game.QualityFine,
		SecondaryQuality: game.QualityFine,
	})
	s.Require().NoError(err)
	s.Assert().Equal(game.QualityFine, out.CombinedQuality)

	total := 0.0
	for _, p := range out.Distribution {
		total += p
	}
	s.Assert().InDelta(1.0, total, 1e-9)
	s.Assert().Zero(out.Distribution[game.RarityMythic])
}

func (s *CraftingTestSuite) TestCombinedQualityWeighting() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})

	// (2*LEGENDARY + NORMAL)/3 = 8/3 = 2.67 -> FINE
	out, err := svc.PreviewQualityDistribution(s.ctx, &crafting.PreviewDistributionInput{
		BaseQuality:      game.QualityLegendary,
		SecondaryQuality: game.QualityNormal,
	})
	s.Require().NoError(err)
	s.Assert().Equal(game.QualityFine, out.CombinedQuality)

	// (2*NORMAL + LEGENDARY)/3 = 4/3 = 1.33 -> GOOD
	out, err = svc.PreviewQualityDistribution(s.ctx, &crafting.PreviewDistributionInput{
		BaseQuality:      game.QualityNormal,
		SecondaryQuality: game.QualityLegendary,
	})
	s.Require().NoError(err)
	s.Assert().Equal(game.QualityGood, out.CombinedQuality)
}

func (s *CraftingTestSuite) TestRollQualityLegendaryPairNeverRollsCommon() {
	svc := s.newService(dice.DefaultRoller)

	counts := make(map[game.Rarity]int)
	const rolls = 10000
	for i := 0; i < rolls; i++ {
		out, err := svc.RollQuality(s.ctx, &crafting.RollQualityInput{
			BaseQuality:      game.QualityLegendary,
			SecondaryQuality: game.QualityLegendary,
		})
		s.Require().NoError(err)
		counts[out.Rarity]++
	}

	s.Assert().Zero(counts[game.RarityCommon], "legendary materials never craft common gear")
	s.Assert().Zero(counts[game.RarityMythic])

	legendaryShare := float64(counts[game.RarityLegendary]) / float64(rolls)
	s.Assert().InDelta(0.40, legendaryShare, 0.03, "legendary share should track the authored 40%%")
}

func (s *CraftingTestSuite) TestCraftDeductsAndInstantiates() {
	// draw 10000 lands in the top bucket of the NORMAL simplex: LEGENDARY
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{10000}})
	s.stockForWeapon(8, 5)

	out, err := svc.Craft(s.ctx, &crafting.CraftInput{
		Slot:             game.SlotWeapon,
		BaseQuality:      game.QualityNormal,
		SecondaryQuality: game.QualityNormal,
	})
	s.Require().NoError(err)

	s.Assert().Equal(game.RarityLegendary, out.Rarity)
	s.Require().NotNil(out.Equipment)
	s.Assert().Equal(game.SlotWeapon, out.Equipment.Slot)
	s.Assert().Zero(out.Equipment.EnhanceLevel)
	s.Assert().Zero(out.Equipment.SublimationLevel)
	s.Assert().NotEmpty(out.Equipment.InstanceID)
	s.Assert().Positive(out.Equipment.Stats.Attack)

	// 6 ore + 3 wood deducted exactly once
	s.Assert().Equal(2, s.inventory.items[game.MaterialKey(game.MaterialOre, game.QualityNormal)])
	s.Assert().Equal(2, s.inventory.items[game.MaterialKey(game.MaterialWood, game.QualityNormal)])
	s.Require().Len(s.inventory.equipment, 1)
	s.Assert().Same(out.Equipment, s.inventory.equipment[0])
}

func (s *CraftingTestSuite) TestCraftInsufficientMaterialLeavesInventoryUntouched() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	s.stockForWeapon(1, 1)
	before := s.inventory.snapshot()

	_, err := svc.Craft(s.ctx, &crafting.CraftInput{
		Slot:             game.SlotWeapon,
		BaseQuality:      game.QualityNormal,
		SecondaryQuality: game.QualityNormal,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().Equal(before, s.inventory.snapshot())
	s.Assert().Empty(s.inventory.equipment)

	meta := errors.GetMeta(err)
	s.Assert().Equal(1, meta["have"])
	s.Assert().Equal(6, meta["need"])
}
