package quests_test

import (
	"context"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/orchestrators/quests"
)

type fakeRewardSink struct {
	exp       int
	gold      int
	items     map[string]int
	materials map[string]int
}

func newFakeRewardSink() *fakeRewardSink {
	return &fakeRewardSink{
		items:     make(map[string]int),
		materials: make(map[string]int),
	}
}

func (f *fakeRewardSink) CreditExp(amount int)  { f.exp += amount }
func (f *fakeRewardSink) CreditGold(amount int) { f.gold += amount }

func (f *fakeRewardSink) CreditItem(id string, quantity int) {
	f.items[id] += quantity
}

func (f *fakeRewardSink) CreditMaterial(key string, quantity int) {
	f.materials[key] += quantity
}

type QuestGraphTestSuite struct {
	suite.Suite
	ctx     context.Context
	bus     rpgevents.EventBus
	rewards *fakeRewardSink
	svc     quests.Service

	published []string
}

func TestQuestGraphSuite(t *testing.T) {
	suite.Run(t, new(QuestGraphTestSuite))
}

func (s *QuestGraphTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = rpgevents.NewBus()
	s.rewards = newFakeRewardSink()
	s.published = nil

	for _, eventType := range []string{quests.EventQuestUnlocked, quests.EventQuestCompleted} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e rpgevents.Event) error {
			s.published = append(s.published, e.Type())
			return nil
		})
	}

	svc, err := quests.NewOrchestrator(&quests.Config{
		Tables:   gamedata.Default(),
		EventBus: s.bus,
		Rewards:  s.rewards,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *QuestGraphTestSuite) completeFirstSteps() {
	out, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionExplore,
		TargetID:      "ruined_station",
		Amount:        1,
	})
	s.Require().NoError(err)
	s.Require().Contains(out.CompletedQuestIDs, "quest:first_steps")
}

func (s *QuestGraphTestSuite) TestInitialGraphState() {
	first, err := s.svc.Quest(s.ctx, "quest:first_steps")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestActive, first.Status)

	gated, err := s.svc.Quest(s.ctx, "quest:gear_up")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestLocked, gated.Status)
}

func (s *QuestGraphTestSuite) TestCompletionCascadesUnlock() {
	out, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionExplore,
		TargetID:      "ruined_station",
		Amount:        1,
	})
	s.Require().NoError(err)

	s.Assert().Equal([]string{"quest:first_steps"}, out.CompletedQuestIDs)
	s.Assert().Equal([]string{"quest:gear_up"}, out.UnlockedQuestIDs)

	gated, err := s.svc.Quest(s.ctx, "quest:gear_up")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestActive, gated.Status)

	s.Assert().Contains(s.published, quests.EventQuestCompleted)
	s.Assert().Contains(s.published, quests.EventQuestUnlocked)
}

func (s *QuestGraphTestSuite) TestLockedQuestsIgnoreProgress() {
	// gear_up is still locked; its gather condition must not move
	_, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionGather,
		TargetID:      string(game.MaterialOre),
		Amount:        6,
	})
	s.Require().NoError(err)

	gated, err := s.svc.Quest(s.ctx, "quest:gear_up")
	s.Require().NoError(err)
	s.Assert().Zero(gated.Conditions[0].Current)
}

func (s *QuestGraphTestSuite) TestAllConditionsRequiredForCompletion() {
	s.completeFirstSteps()

	out, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionGather,
		TargetID:      string(game.MaterialOre),
		Amount:        6,
	})
	s.Require().NoError(err)
	s.Assert().NotContains(out.CompletedQuestIDs, "quest:gear_up")

	out, err = s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionCraft,
		TargetID:      string(game.SlotWeapon),
		Amount:        1,
	})
	s.Require().NoError(err)
	s.Assert().Contains(out.CompletedQuestIDs, "quest:gear_up")
	s.Assert().Contains(out.UnlockedQuestIDs, "quest:sharpened_edge")
}

func (s *QuestGraphTestSuite) TestWildcardTargetMatches() {
	out, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionGather,
		TargetID:      string(game.MaterialWood),
		Amount:        10,
	})
	s.Require().NoError(err)

	// daily_forage tracks gathering of any material
	s.Assert().Contains(out.CompletedQuestIDs, "quest:daily_forage")
}

func (s *QuestGraphTestSuite) TestClaimRewardCreditsSink() {
	s.completeFirstSteps()

	out, err := s.svc.ClaimReward(s.ctx, &quests.ClaimRewardInput{QuestID: "quest:first_steps"})
	s.Require().NoError(err)

	s.Assert().Equal(50, s.rewards.exp)
	s.Assert().Equal(100, s.rewards.gold)
	s.Assert().Equal(50, out.Reward.Exp)

	first, err := s.svc.Quest(s.ctx, "quest:first_steps")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestRewarded, first.Status)
}

func (s *QuestGraphTestSuite) TestClaimRewardRequiresCompletion() {
	_, err := s.svc.ClaimReward(s.ctx, &quests.ClaimRewardInput{QuestID: "quest:first_steps"})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = s.svc.ClaimReward(s.ctx, &quests.ClaimRewardInput{QuestID: "quest:missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *QuestGraphTestSuite) TestClaimRewardCreditsMaterials() {
	_, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionGather,
		TargetID:      string(game.MaterialWood),
		Amount:        10,
	})
	s.Require().NoError(err)

	_, err = s.svc.ClaimReward(s.ctx, &quests.ClaimRewardInput{QuestID: "quest:daily_forage"})
	s.Require().NoError(err)

	key := game.MaterialKey(game.MaterialWood, game.QualityNormal)
	s.Assert().Equal(5, s.rewards.materials[key])
}

func (s *QuestGraphTestSuite) TestResetDailiesZeroesActiveProgress() {
	_, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionHunt,
		TargetID:      "wolf",
		Amount:        3,
	})
	s.Require().NoError(err)

	out, err := s.svc.ResetDailies(s.ctx)
	s.Require().NoError(err)
	s.Assert().Contains(out.ResetQuestIDs, "quest:wolf_cull")

	daily, err := s.svc.Quest(s.ctx, "quest:wolf_cull")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestActive, daily.Status)
	s.Assert().Zero(daily.Conditions[0].Current)

	// normal quests are untouched by the daily reset
	s.Assert().NotContains(out.ResetQuestIDs, "quest:first_steps")
}

func (s *QuestGraphTestSuite) TestReactivateDailies() {
	_, err := s.svc.UpdateProgress(s.ctx, &quests.UpdateProgressInput{
		ConditionType: gamedata.ConditionHunt,
		TargetID:      "wolf",
		Amount:        5,
	})
	s.Require().NoError(err)
	_, err = s.svc.ClaimReward(s.ctx, &quests.ClaimRewardInput{QuestID: "quest:wolf_cull"})
	s.Require().NoError(err)

	out, err := s.svc.ReactivateDailies(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"quest:wolf_cull"}, out.ReactivatedQuestIDs)

	daily, err := s.svc.Quest(s.ctx, "quest:wolf_cull")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestActive, daily.Status)
	s.Assert().Zero(daily.Conditions[0].Current)
}

func (s *QuestGraphTestSuite) TestSnapshotRestoreRoundTrip() {
	s.completeFirstSteps()
	snapshot := s.svc.Snapshot(s.ctx)

	restored, err := quests.NewOrchestrator(&quests.Config{
		Tables:   gamedata.Default(),
		EventBus: rpgevents.NewBus(),
		Rewards:  newFakeRewardSink(),
	})
	s.Require().NoError(err)
	s.Require().NoError(restored.Restore(s.ctx, snapshot))

	first, err := restored.Quest(s.ctx, "quest:first_steps")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestCompleted, first.Status)

	gated, err := restored.Quest(s.ctx, "quest:gear_up")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestActive, gated.Status)

	// the snapshot is a deep copy: mutating it must not reach the
	// graph it was taken from
	snapshot[0].Status = game.QuestLocked
	first, err = s.svc.Quest(s.ctx, "quest:first_steps")
	s.Require().NoError(err)
	s.Assert().Equal(game.QuestCompleted, first.Status)
}

func (s *QuestGraphTestSuite) TestRestoreRejectsEmptySnapshot() {
	err := s.svc.Restore(s.ctx, nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
