package session_test

import (
	"context"
	"testing"
	"time"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/orchestrators/crafting"
	"github.com/railforge/railforge/internal/orchestrators/gameclock"
	"github.com/railforge/railforge/internal/orchestrators/quests"
	"github.com/railforge/railforge/internal/pkg/clock"
	"github.com/railforge/railforge/internal/pkg/idgen"
	"github.com/railforge/railforge/internal/services/session"
	"github.com/railforge/railforge/internal/testutils"
)

type SessionTestSuite struct {
	suite.Suite
	ctx    context.Context
	clock  *clock.Fixed
	roller *testutils.SequenceRoller
	sess   *session.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{Time: time.Unix(1_700_000_000, 0)}
	s.roller = &testutils.SequenceRoller{Draws: []int{1}}

	sess, err := session.NewSession(&session.Config{
		Tables:      gamedata.Default(),
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("inst"),
		Clock:       s.clock,
		EventBus:    rpgevents.NewBus(),
	})
	s.Require().NoError(err)
	s.sess = sess
}

func (s *SessionTestSuite) TestFreshSessionState() {
	player := s.sess.Player()
	s.Assert().Equal(200, player.Gold)
	s.Assert().Equal(30, player.Spirit)
	s.Assert().Equal(50, player.Stamina)
	s.Assert().Empty(s.sess.Equipment())
}

func (s *SessionTestSuite) TestCraftThroughSession() {
	s.sess.AddItem(game.MaterialKey(game.MaterialOre, game.QualityNormal), 6)
	s.sess.AddItem(game.MaterialKey(game.MaterialWood, game.QualityNormal), 3)

	out, err := s.sess.Crafting().Craft(s.ctx, &crafting.CraftInput{
		Slot:             game.SlotWeapon,
		BaseQuality:      game.QualityNormal,
		SecondaryQuality: game.QualityNormal,
	})
	s.Require().NoError(err)

	s.Assert().Equal(game.RarityCommon, out.Rarity, "lowest draw lands in the first bucket")
	s.Require().Len(s.sess.Equipment(), 1)
	s.Assert().Zero(s.sess.ItemQuantity(game.MaterialKey(game.MaterialOre, game.QualityNormal)))
}

func (s *SessionTestSuite) TestRecoverResources() {
	s.Require().NoError(s.sess.SpendSpirit(10))
	s.Require().NoError(s.sess.SpendStamina(10))

	// six minutes: two spirit intervals, three stamina intervals
	s.clock.Advance(6 * time.Minute)
	out := s.sess.RecoverResources()
	s.Assert().Equal(2, out.SpiritGained)
	s.Assert().Equal(3, out.StaminaGained)

	// a second call inside the same interval credits nothing
	out = s.sess.RecoverResources()
	s.Assert().Zero(out.SpiritGained)
	s.Assert().Zero(out.StaminaGained)
}

func (s *SessionTestSuite) TestFrequentPollingDoesNotStarveSpirit() {
	s.Require().NoError(s.sess.SpendSpirit(10))
	s.Require().NoError(s.sess.SpendStamina(10))

	// Poll on the stamina cadence. Each poll credits stamina, but the
	// spirit remainder keeps accumulating across polls and pays out a
	// full interval every 6 minutes.
	spiritTotal, staminaTotal := 0, 0
	for i := 0; i < 3; i++ {
		s.clock.Advance(2 * time.Minute)
		out := s.sess.RecoverResources()
		spiritTotal += out.SpiritGained
		staminaTotal += out.StaminaGained
	}

	s.Assert().Equal(2, spiritTotal)
	s.Assert().Equal(3, staminaTotal)
}

func (s *SessionTestSuite) TestRecoverIsCappedAtMax() {
	s.Require().NoError(s.sess.SpendSpirit(1))
	s.clock.Advance(24 * time.Hour)

	out := s.sess.RecoverResources()
	s.Assert().Equal(1, out.SpiritGained)

	player := s.sess.Player()
	s.Assert().Equal(player.MaxSpirit, player.Spirit)
	s.Assert().Equal(player.MaxStamina, player.Stamina)
}

func (s *SessionTestSuite) TestBuyShopItem() {
	s.sess.CreditGold(1000)

	s.Require().NoError(s.sess.BuyShopItem(gamedata.ItemEnhanceStone, 2))
	s.Assert().Equal(2, s.sess.ItemQuantity(gamedata.ItemEnhanceStone))
	s.Assert().Equal(600, s.sess.Gold())

	err := s.sess.BuyShopItem(gamedata.ItemEnhanceStone, 100)
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
}

func (s *SessionTestSuite) TestDayRolloverRestocksShopAndResetsDailies() {
	s.sess.CreditGold(1000)
	s.Require().NoError(s.sess.BuyShopItem(gamedata.ItemEnhanceStone, 3))

	// progress a daily partway
	_, err := s.sess.Quests().UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionHunt,
		TargetID:      "wolf",
		Amount:        2,
	})
	s.Require().NoError(err)

	_, err = s.sess.GameClock().Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 1440})
	s.Require().NoError(err)

	for _, item := range s.sess.ShopItems() {
		s.Assert().Equal(item.DailyLimit, item.Stock, "stock restored for %s", item.ID)
	}

	daily, err := s.sess.Quests().Quest(s.ctx, "quest:wolf_cull")
	s.Require().NoError(err)
	s.Assert().Zero(daily.Conditions[0].Current)
}

func (s *SessionTestSuite) TestBossChallengeOncePerCalendarDay() {
	s.Assert().True(s.sess.CanChallengeBoss("loc:foothills"))
	s.Require().NoError(s.sess.RecordBossChallenge("loc:foothills"))

	s.Assert().False(s.sess.CanChallengeBoss("loc:foothills"))
	err := s.sess.RecordBossChallenge("loc:foothills")
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.clock.Advance(24 * time.Hour)
	s.Assert().True(s.sess.CanChallengeBoss("loc:foothills"))
}

func (s *SessionTestSuite) TestLocationProgressCaps() {
	s.Assert().Equal(game.MaxMaterialProgress, s.sess.AddMaterialProgress("loc:mine", 500))
	s.Assert().Equal(game.MaxHuntProgress, s.sess.AddHuntProgress("loc:mine", 500))

	// lazy creation: the same record comes back
	lp := s.sess.Location("loc:mine")
	s.Assert().Equal(game.MaxMaterialProgress, lp.MaterialProgress)
}

func (s *SessionTestSuite) TestEquipAndCombatTotals() {
	s.sess.AddEquipment(&game.Equipment{
		InstanceID: "inst-w",
		Slot:       game.SlotWeapon,
		Stats:      game.StatBlock{Attack: 12, Speed: 2},
	})
	s.Require().NoError(s.sess.Equip("inst-w"))

	attack, _, agility := s.sess.CombatTotals()
	s.Assert().Equal(12, attack)
	s.Assert().Equal(2, agility)

	s.Require().NoError(s.sess.RemoveEquipment("inst-w"))
	attack, _, _ = s.sess.CombatTotals()
	s.Assert().Zero(attack)
	s.Assert().Nil(s.sess.EquippedIn(game.SlotWeapon))
}

func (s *SessionTestSuite) TestProfileRoundTrip() {
	s.sess.AddItem(gamedata.ItemEnhanceStone, 5)
	s.sess.AddEquipment(&game.Equipment{
		InstanceID: "inst-w",
		Slot:       game.SlotWeapon,
		Rarity:     game.RarityRare,
		Stats:      game.StatBlock{Attack: 12},
	})
	s.Require().NoError(s.sess.Equip("inst-w"))
	s.sess.AddHuntProgress("loc:foothills", 25)
	_, err := s.sess.GameClock().Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 500})
	s.Require().NoError(err)

	p := s.sess.BuildProfile(s.ctx, "profile_1", "player_1", "Test Save")

	restored, err := session.NewSession(&session.Config{
		Tables:      gamedata.Default(),
		Roller:      &testutils.SequenceRoller{Draws: []int{1}},
		IDGenerator: idgen.NewSequential("inst"),
		Clock:       s.clock,
		EventBus:    rpgevents.NewBus(),
	})
	s.Require().NoError(err)
	s.Require().NoError(restored.ApplyProfile(s.ctx, p))

	s.Assert().Equal(5, restored.ItemQuantity(gamedata.ItemEnhanceStone))
	s.Assert().Equal(25, restored.Location("loc:foothills").HuntProgress)
	s.Assert().Equal(500, restored.GameClock().Snapshot(s.ctx))
	s.Require().NotNil(restored.EquippedIn(game.SlotWeapon))
	s.Assert().Equal(12, restored.EquippedIn(game.SlotWeapon).Stats.Attack)

	// the profile is detached from the source session
	p.Items[gamedata.ItemEnhanceStone] = 999
	s.Assert().Equal(5, restored.ItemQuantity(gamedata.ItemEnhanceStone))
}
