package game

// QuestStatus tracks where a quest sits in its lifecycle. Status only
// advances LOCKED -> ACTIVE -> COMPLETED -> REWARDED; the single
// exception is the daily reset zeroing condition progress of ACTIVE
// dailies.
type QuestStatus string

// Quest statuses
const (
	QuestLocked    QuestStatus = "locked"
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestRewarded  QuestStatus = "rewarded"
)

// QuestType categorizes quests
type QuestType string

// Quest types
const (
	QuestTypeNormal QuestType = "normal"
	QuestTypeDaily  QuestType = "daily"
)

// ConditionTargetAny matches any target ID for a condition type.
const ConditionTargetAny = "any"

// QuestCondition is a single tracked objective. A quest completes when
// every condition has Current >= Required.
type QuestCondition struct {
	Type     string `json:"type"`
	TargetID string `json:"target_id"`
	Required int    `json:"required"`
	Current  int    `json:"current"`
}

// Met reports whether the condition is satisfied.
func (c *QuestCondition) Met() bool {
	return c.Current >= c.Required
}

// Matches reports whether a progress event of the given type and
// target applies to this condition.
func (c *QuestCondition) Matches(conditionType, targetID string) bool {
	if c.Type != conditionType {
		return false
	}
	return c.TargetID == targetID || c.TargetID == ConditionTargetAny
}

// QuestReward is the bundle credited when a completed quest is claimed.
type QuestReward struct {
	Exp       int            `json:"exp"`
	Gold      int            `json:"gold"`
	Items     map[string]int `json:"items,omitempty"`
	Materials map[string]int `json:"materials,omitempty"`
}

// Quest is a condition-tracked quest instance owned by the quest graph.
type Quest struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Type          QuestType        `json:"type"`
	Status        QuestStatus      `json:"status"`
	Conditions    []QuestCondition `json:"conditions"`
	Reward        QuestReward      `json:"reward"`
	Prerequisites []string         `json:"prerequisites,omitempty"`
}

// ConditionsMet reports whether every condition is satisfied.
func (q *Quest) ConditionsMet() bool {
	for i := range q.Conditions {
		if !q.Conditions[i].Met() {
			return false
		}
	}
	return true
}
