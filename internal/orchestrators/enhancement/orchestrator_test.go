package enhancement_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/orchestrators/enhancement"
	"github.com/railforge/railforge/internal/testutils"
)

type fakeInventory struct {
	items map[string]int
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

type fakePurse struct {
	gold int
}

func (f *fakePurse) Gold() int {
	return f.gold
}

func (f *fakePurse) SpendGold(amount int) error {
	if f.gold < amount {
		return errors.ResourceExhausted("not enough gold")
	}
	f.gold -= amount
	return nil
}

type EnhancementTestSuite struct {
	suite.Suite
	ctx       context.Context
	tables    *gamedata.Tables
	inventory *fakeInventory
	purse     *fakePurse
}

func TestEnhancementSuite(t *testing.T) {
	suite.Run(t, new(EnhancementTestSuite))
}

func (s *EnhancementTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.tables = gamedata.Default()
	s.inventory = &fakeInventory{items: map[string]int{
		gamedata.ItemEnhanceStone:    50,
		gamedata.ItemProtectionCharm: 2,
	}}
	s.purse = &fakePurse{gold: 100000}
}

func (s *EnhancementTestSuite) newService(roller dice.Roller) enhancement.Service {
	svc, err := enhancement.NewOrchestrator(&enhancement.Config{
		Tables:    s.tables,
		Roller:    roller,
		Inventory: s.inventory,
		Purse:     s.purse,
	})
	s.Require().NoError(err)
	return svc
}

func (s *EnhancementTestSuite) weapon(level int) *game.Equipment {
	return &game.Equipment{
		ID:           "equip:weapon:common",
		InstanceID:   "inst_1",
		Name:         "Common Blade",
		Slot:         game.SlotWeapon,
		Rarity:       game.RarityCommon,
		Stats:        game.StatBlock{Attack: 10},
		EnhanceLevel: level,
	}
}

func (s *EnhancementTestSuite) TestPreview() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	item := s.weapon(2)

	out, err := svc.Preview(s.ctx, &enhancement.PreviewInput{Equipment: item})
	s.Require().NoError(err)

	s.Assert().Equal(2, out.CurrentLevel)
	s.Assert().Equal(3, out.TargetLevel)
	s.Assert().InDelta(0.95, out.SuccessRate, 1e-9)
	s.Assert().True(out.CanAffordGold)
	s.Assert().True(out.CanAffordStones)

	// levels 0 and 1 each grant +2 attack; level 2 grants +3
	s.Assert().Equal(4, out.BonusBefore.Attack)
	s.Assert().Equal(7, out.BonusAfter.Attack)
}

func (s *EnhancementTestSuite) TestPreviewMaxLevel() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	item := s.weapon(s.tables.EnhanceMaxLevel())

	_, err := svc.Preview(s.ctx, &enhancement.PreviewInput{Equipment: item})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *EnhancementTestSuite) TestEnhanceGuaranteedSuccess() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	item := s.weapon(0) // level 0 has success rate 1.0
	startingAttack := item.Stats.Attack
	startingGold := s.purse.gold
	startingStones := s.inventory.items[gamedata.ItemEnhanceStone]

	out, err := svc.Enhance(s.ctx, &enhancement.EnhanceInput{Equipment: item})
	s.Require().NoError(err)

	s.Assert().Equal(enhancement.OutcomeSuccess, out.Outcome)
	s.Assert().Equal(1, out.NewLevel)
	s.Assert().Equal(1, item.EnhanceLevel)
	s.Assert().Equal(startingAttack+2, item.Stats.Attack)

	// costs deducted exactly once
	s.Assert().Equal(startingGold-100, s.purse.gold)
	s.Assert().Equal(startingStones-1, s.inventory.items[gamedata.ItemEnhanceStone])
}

func (s *EnhancementTestSuite) TestEnhanceFailureWithDowngrade() {
	// level 8 has success rate 0.50 and failureDowngrade; a top-range
	// draw misses
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{10000}})
	item := s.weapon(8)

	out, err := svc.Enhance(s.ctx, &enhancement.EnhanceInput{Equipment: item})
	s.Require().NoError(err)

	s.Assert().Equal(enhancement.OutcomeFailureDowngrade, out.Outcome)
	s.Assert().Equal(7, out.NewLevel)
	s.Assert().Equal(7, item.EnhanceLevel)
}

func (s *EnhancementTestSuite) TestEnhanceFailureAtLevelZeroNeverGoesNegative() {
	// author a table whose level 0 can fail with downgrade enabled
	dir := s.T().TempDir()
	path := filepath.Join(dir, "balance.yaml")
	override := `
enhance_levels:
  - success_rate: 0.0
    stone_cost: 1
    gold_cost: 10
    failure_downgrade: true
`
	s.Require().NoError(os.WriteFile(path, []byte(override), 0o600))
	tables, err := gamedata.Load(path)
	s.Require().NoError(err)
	s.tables = tables

	svc := s.newService(&testutils.SequenceRoller{Draws: []int{10000}})
	item := s.weapon(0)

	out, err := svc.Enhance(s.ctx, &enhancement.EnhanceInput{Equipment: item})
	s.Require().NoError(err)

	s.Assert().Equal(enhancement.OutcomeFailure, out.Outcome,
		"level 0 cannot downgrade further")
	s.Assert().Zero(item.EnhanceLevel)
}

func (s *EnhancementTestSuite) TestEnhanceFailureWithProtection() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{10000}})
	item := s.weapon(8)
	startingCharms := s.inventory.items[gamedata.ItemProtectionCharm]

	out, err := svc.Enhance(s.ctx, &enhancement.EnhanceInput{
		Equipment:     item,
		UseProtection: true,
	})
	s.Require().NoError(err)

	s.Assert().Equal(enhancement.OutcomeFailure, out.Outcome)
	s.Assert().Equal(8, item.EnhanceLevel, "protection prevents the downgrade")
	s.Assert().Equal(startingCharms-1, s.inventory.items[gamedata.ItemProtectionCharm],
		"charm is consumed even though the attempt failed")
}

func (s *EnhancementTestSuite) TestEnhanceInsufficientGoldIsAtomic() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	s.purse.gold = 10
	item := s.weapon(0)
	startingStones := s.inventory.items[gamedata.ItemEnhanceStone]

	_, err := svc.Enhance(s.ctx, &enhancement.EnhanceInput{Equipment: item})
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))

	s.Assert().Equal(10, s.purse.gold, "no partial deduction")
	s.Assert().Equal(startingStones, s.inventory.items[gamedata.ItemEnhanceStone])
	s.Assert().Zero(item.EnhanceLevel)
}

func (s *EnhancementTestSuite) TestEnhanceWithoutProtectionCharmInStock() {
	svc := s.newService(&testutils.SequenceRoller{Draws: []int{1}})
	s.inventory.items[gamedata.ItemProtectionCharm] = 0
	item := s.weapon(0)

	_, err := svc.Enhance(s.ctx, &enhancement.EnhanceInput{
		Equipment:     item,
		UseProtection: true,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().Zero(item.EnhanceLevel)
}
