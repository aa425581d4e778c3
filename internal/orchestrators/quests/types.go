package quests

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// Event types published on the bus
const (
	EventQuestUnlocked  = "quest.unlocked"
	EventQuestCompleted = "quest.completed"
)

// UpdateProgressInput reports one gameplay action to the graph
type UpdateProgressInput struct {
	ConditionType string
	TargetID      string
	Amount        int
}

// UpdateProgressOutput lists the quests the event touched
type UpdateProgressOutput struct {
	UpdatedQuestIDs   []string
	CompletedQuestIDs []string
	UnlockedQuestIDs  []string
}

// ClaimRewardInput requests the reward of a completed quest
type ClaimRewardInput struct {
	QuestID string
}

// ClaimRewardOutput carries the credited reward and any quests the
// claim unlocked
type ClaimRewardOutput struct {
	Reward           game.QuestReward
	UnlockedQuestIDs []string
}

// ResetDailiesOutput lists the daily quests whose progress was zeroed
type ResetDailiesOutput struct {
	ResetQuestIDs []string
}

// ReactivateDailiesOutput lists rewarded dailies brought back for the
// new day
type ReactivateDailiesOutput struct {
	ReactivatedQuestIDs []string
}
