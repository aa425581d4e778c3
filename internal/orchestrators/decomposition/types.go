package decomposition

import (
	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/gamedata"
)

// PreviewInput asks what breaking down an item would yield
type PreviewInput struct {
	Kind   game.ItemKind
	Slot   game.EquipmentSlot
	Rarity game.Rarity
	Name   string
}

// PreviewOutput is the deterministic reward plus display metadata
type PreviewOutput struct {
	Reward      gamedata.DecomposeReward
	RarityLabel string
	Mythic      bool
}

// DecomposeInput requests the reward for a broken-down item
type DecomposeInput struct {
	Kind   game.ItemKind
	Slot   game.EquipmentSlot
	Rarity game.Rarity
}

// DecomposeOutput carries the reward value object. The caller removes
// the item and credits the material; this engine mutates nothing.
type DecomposeOutput struct {
	Reward gamedata.DecomposeReward
}
