// Package quests implements the prerequisite-gated quest state
// machine. Quests advance LOCKED -> ACTIVE -> COMPLETED -> REWARDED;
// progress events fan out to every matching condition of every active
// quest, and completions cascade unlocks through the graph.
package quests

//go:generate mockgen -destination=mock/mock_service.go -package=questsmock github.com/railforge/railforge/internal/orchestrators/quests Service,RewardSink

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
)

// RewardSink receives the reward bundle of a claimed quest. Credits
// are additive and infallible.
type RewardSink interface {
	CreditExp(amount int)
	CreditGold(amount int)
	CreditItem(id string, quantity int)
	CreditMaterial(key string, quantity int)
}

// Service defines the interface for quest graph operations
type Service interface {
	Quest(ctx context.Context, id string) (*game.Quest, error)
	ListQuests(ctx context.Context) []*game.Quest
	UpdateProgress(ctx context.Context, input *UpdateProgressInput) (*UpdateProgressOutput, error)
	ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error)
	ResetDailies(ctx context.Context) (*ResetDailiesOutput, error)
	ReactivateDailies(ctx context.Context) (*ReactivateDailiesOutput, error)
	Snapshot(ctx context.Context) []*game.Quest
	Restore(ctx context.Context, quests []*game.Quest) error
}

// Config holds the dependencies for the quest orchestrator
type Config struct {
	Tables   *gamedata.Tables
	EventBus events.EventBus
	Rewards  RewardSink
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Rewards == nil {
		vb.RequiredField("Rewards")
	}

	return vb.Build()
}

type orchestrator struct {
	bus     events.EventBus
	rewards RewardSink

	quests []*game.Quest
	byID   map[string]*game.Quest
}

// NewOrchestrator creates a new quest orchestrator seeded with the
// authored quest graph
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		bus:     cfg.EventBus,
		rewards: cfg.Rewards,
	}
	o.install(cfg.Tables.Quests())
	return o, nil
}

func (o *orchestrator) install(quests []*game.Quest) {
	o.quests = quests
	o.byID = make(map[string]*game.Quest, len(quests))
	for _, q := range quests {
		o.byID[q.ID] = q
	}
}

// Quest returns the live quest by ID.
func (o *orchestrator) Quest(_ context.Context, id string) (*game.Quest, error) {
	q, ok := o.byID[id]
	if !ok {
		return nil, errors.NotFoundf("quest %q not found", id)
	}
	return q, nil
}

// ListQuests returns every quest in graph order.
func (o *orchestrator) ListQuests(_ context.Context) []*game.Quest {
	out := make([]*game.Quest, len(o.quests))
	copy(out, o.quests)
	return out
}

// UpdateProgress applies one progress event to every matching
// condition of every active quest, completing quests whose conditions
// are all met and cascading unlocks.
func (o *orchestrator) UpdateProgress(ctx context.Context, input *UpdateProgressInput) (*UpdateProgressOutput, error) {
	if input.ConditionType == "" {
		return nil, errors.InvalidArgument("condition type is required")
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument("amount must be positive")
	}

	out := &UpdateProgressOutput{}
	for _, q := range o.quests {
		if q.Status != game.QuestActive {
			continue
		}

		touched := false
		for i := range q.Conditions {
			if q.Conditions[i].Matches(input.ConditionType, input.TargetID) {
				q.Conditions[i].Current += input.Amount
				touched = true
			}
		}
		if !touched {
			continue
		}
		out.UpdatedQuestIDs = append(out.UpdatedQuestIDs, q.ID)

		if q.ConditionsMet() {
			o.complete(ctx, q)
			out.CompletedQuestIDs = append(out.CompletedQuestIDs, q.ID)
		}
	}

	if len(out.CompletedQuestIDs) > 0 {
		out.UnlockedQuestIDs = o.cascadeUnlocks(ctx)
	}
	return out, nil
}

// ClaimReward credits the reward of a completed quest through the
// sink, marks it rewarded, and re-runs the unlock cascade.
func (o *orchestrator) ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error) {
	q, ok := o.byID[input.QuestID]
	if !ok {
		return nil, errors.NotFoundf("quest %q not found", input.QuestID)
	}
	if q.Status != game.QuestCompleted {
		return nil, errors.FailedPreconditionf(
			"quest %q is not completable: status is %q", q.ID, q.Status)
	}

	if q.Reward.Exp > 0 {
		o.rewards.CreditExp(q.Reward.Exp)
	}
	if q.Reward.Gold > 0 {
		o.rewards.CreditGold(q.Reward.Gold)
	}
	for id, qty := range q.Reward.Items {
		o.rewards.CreditItem(id, qty)
	}
	for key, qty := range q.Reward.Materials {
		o.rewards.CreditMaterial(key, qty)
	}

	q.Status = game.QuestRewarded
	slog.Info("Quest reward claimed", "quest_id", q.ID)

	return &ClaimRewardOutput{
		Reward:           q.Reward,
		UnlockedQuestIDs: o.cascadeUnlocks(ctx),
	}, nil
}

// ResetDailies zeroes the condition progress of active daily quests.
// Completed and rewarded dailies are left alone; bringing rewarded
// ones back for the new day is ReactivateDailies.
func (o *orchestrator) ResetDailies(_ context.Context) (*ResetDailiesOutput, error) {
	out := &ResetDailiesOutput{}
	for _, q := range o.quests {
		if q.Type != game.QuestTypeDaily || q.Status != game.QuestActive {
			continue
		}
		for i := range q.Conditions {
			q.Conditions[i].Current = 0
		}
		out.ResetQuestIDs = append(out.ResetQuestIDs, q.ID)
	}
	return out, nil
}

// ReactivateDailies returns rewarded daily quests to active with
// zeroed progress.
func (o *orchestrator) ReactivateDailies(_ context.Context) (*ReactivateDailiesOutput, error) {
	out := &ReactivateDailiesOutput{}
	for _, q := range o.quests {
		if q.Type != game.QuestTypeDaily || q.Status != game.QuestRewarded {
			continue
		}
		q.Status = game.QuestActive
		for i := range q.Conditions {
			q.Conditions[i].Current = 0
		}
		out.ReactivatedQuestIDs = append(out.ReactivatedQuestIDs, q.ID)
	}
	return out, nil
}

// Snapshot returns deep copies of every quest for persistence.
func (o *orchestrator) Snapshot(_ context.Context) []*game.Quest {
	out := make([]*game.Quest, len(o.quests))
	for i, q := range o.quests {
		qCopy := *q
		qCopy.Conditions = make([]game.QuestCondition, len(q.Conditions))
		copy(qCopy.Conditions, q.Conditions)
		qCopy.Prerequisites = append([]string(nil), q.Prerequisites...)
		out[i] = &qCopy
	}
	return out
}

// Restore replaces the graph state with a persisted snapshot.
func (o *orchestrator) Restore(_ context.Context, quests []*game.Quest) error {
	if len(quests) == 0 {
		return errors.InvalidArgument("quest snapshot is empty")
	}
	for _, q := range quests {
		if q.ID == "" {
			return errors.InvalidArgument("quest snapshot contains a quest without ID")
		}
	}
	o.install(quests)
	return nil
}

func (o *orchestrator) complete(ctx context.Context, q *game.Quest) {
	q.Status = game.QuestCompleted
	slog.Info("Quest completed", "quest_id", q.ID, "title", q.Title)
	o.publish(ctx, EventQuestCompleted, q)
}

// cascadeUnlocks activates every locked quest whose prerequisites are
// all completed or rewarded, repeating until no more unlock.
func (o *orchestrator) cascadeUnlocks(ctx context.Context) []string {
	var unlocked []string
	for {
		progressed := false
		for _, q := range o.quests {
			if q.Status != game.QuestLocked || !o.prerequisitesMet(q) {
				continue
			}
			q.Status = game.QuestActive
			unlocked = append(unlocked, q.ID)
			progressed = true

			slog.Info("Quest unlocked", "quest_id", q.ID, "title", q.Title)
			o.publish(ctx, EventQuestUnlocked, q)
		}
		if !progressed {
			return unlocked
		}
	}
}

func (o *orchestrator) prerequisitesMet(q *game.Quest) bool {
	for _, id := range q.Prerequisites {
		prereq, ok := o.byID[id]
		if !ok {
			return false
		}
		if prereq.Status != game.QuestCompleted && prereq.Status != game.QuestRewarded {
			return false
		}
	}
	return true
}

// publish sends a notification event. Delivery failures are logged,
// not propagated: the state transition already happened.
func (o *orchestrator) publish(ctx context.Context, eventType string, q *game.Quest) {
	event := events.NewGameEvent(eventType, game.WrapQuest(q), nil)
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish quest event",
			"event_type", eventType,
			"quest_id", q.ID,
			"error", err,
		)
	}
}
