package gamedata

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// Quest condition types used by the authored quests. UpdateProgress
// accepts arbitrary strings; these are the ones the campaign emits.
const (
	ConditionHunt    = "hunt"
	ConditionGather  = "gather"
	ConditionCraft   = "craft"
	ConditionEnhance = "enhance"
	ConditionExplore = "explore"
)

// defaultQuests authors the starting quest graph. The first quest of a
// chain starts ACTIVE; everything gated by prerequisites starts LOCKED.
func defaultQuests() []*game.Quest {
	return []*game.Quest{
		{
			ID:     "quest:first_steps",
			Title:  "First Steps",
			Type:   game.QuestTypeNormal,
			Status: game.QuestActive,
			Conditions: []game.QuestCondition{
				{Type: ConditionExplore, TargetID: game.ConditionTargetAny, Required: 1},
			},
			Reward: game.QuestReward{Exp: 50, Gold: 100},
		},
		{
			ID:     "quest:gear_up",
			Title:  "Gear Up",
			Type:   game.QuestTypeNormal,
			Status: game.QuestLocked,
			Conditions: []game.QuestCondition{
				{Type: ConditionGather, TargetID: string(game.MaterialOre), Required: 6},
				{Type: ConditionCraft, TargetID: string(game.SlotWeapon), Required: 1},
			},
			Reward: game.QuestReward{
				Exp:  150,
				Gold: 250,
				Materials: map[string]int{
					game.MaterialKey(game.MaterialOre, game.QualityGood): 4,
				},
			},
			Prerequisites: []string{"quest:first_steps"},
		},
		{
			ID:     "quest:sharpened_edge",
			Title:  "Sharpened Edge",
			Type:   game.QuestTypeNormal,
			Status: game.QuestLocked,
			Conditions: []game.QuestCondition{
				{Type: ConditionEnhance, TargetID: game.ConditionTargetAny, Required: 3},
			},
			Reward: game.QuestReward{
				Exp:  300,
				Gold: 500,
				Items: map[string]int{
					ItemProtectionCharm: 1,
				},
			},
			Prerequisites: []string{"quest:gear_up"},
		},
		{
			ID:     "quest:wolf_cull",
			Title:  "Cull the Pack",
			Type:   game.QuestTypeDaily,
			Status: game.QuestActive,
			Conditions: []game.QuestCondition{
				{Type: ConditionHunt, TargetID: "wolf", Required: 5},
			},
			Reward: game.QuestReward{Exp: 80, Gold: 150},
		},
		{
			ID:     "quest:daily_forage",
			Title:  "Forage Run",
			Type:   game.QuestTypeDaily,
			Status: game.QuestActive,
			Conditions: []game.QuestCondition{
				{Type: ConditionGather, TargetID: game.ConditionTargetAny, Required: 10},
			},
			Reward: game.QuestReward{
				Exp: 60,
				Materials: map[string]int{
					game.MaterialKey(game.MaterialWood, game.QualityNormal): 5,
				},
			},
		},
	}
}
