package game

import "github.com/KirkDiggler/rpg-toolkit/core"

// EquipmentEntity wraps Equipment to implement the core.Entity
// interface for event bus payloads.
type EquipmentEntity struct {
	*Equipment
}

// GetID returns the equipment instance ID
func (e *EquipmentEntity) GetID() string {
	return e.InstanceID
}

// GetType returns the entity type for rpg-toolkit
func (e *EquipmentEntity) GetType() string {
	return "equipment"
}

// QuestEntity wraps Quest to implement the core.Entity interface
type QuestEntity struct {
	*Quest
}

// GetID returns the quest ID
func (q *QuestEntity) GetID() string {
	return q.ID
}

// GetType returns the entity type for rpg-toolkit
func (q *QuestEntity) GetType() string {
	return "quest"
}

// WrapEquipment converts Equipment to an EquipmentEntity
func WrapEquipment(eq *Equipment) *EquipmentEntity {
	return &EquipmentEntity{Equipment: eq}
}

// WrapQuest converts a Quest to a QuestEntity
func WrapQuest(q *Quest) *QuestEntity {
	return &QuestEntity{Quest: q}
}

// Compile-time check that the wrappers implement core.Entity
var (
	_ core.Entity = (*EquipmentEntity)(nil)
	_ core.Entity = (*QuestEntity)(nil)
)
