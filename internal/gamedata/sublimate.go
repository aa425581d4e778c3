package gamedata

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// MaxSublimationLevel caps the sublimation track.
const MaxSublimationLevel = 10

// sublimationMilestones are the levels whose attainment promotes the
// item's rarity one step.
var sublimationMilestones = []int{3, 5, 8}

// SublimationMilestoneIndex reports whether reaching the given level is
// a rarity-promotion milestone and, if so, which one (0-based).
func SublimationMilestoneIndex(level int) (int, bool) {
	for i, m := range sublimationMilestones {
		if level == m {
			return i, true
		}
	}
	return 0, false
}

// SublimationBonus is the per-category reward for completing a
// sublimation level. Flat applies on every level-up; at milestone
// levels the item's whole stat block additionally scales by
// MilestoneMultiplier alongside the rarity promotion.
type SublimationBonus struct {
	Flat                game.StatBlock
	MilestoneMultiplier float64
}

// Weapons push attack, armor pushes defense and HP, accessories spread
// across the secondary stats.
func defaultSublimationBonuses() map[EquipCategory]SublimationBonus {
	return map[EquipCategory]SublimationBonus{
		CategoryWeapon: {
			Flat:                game.StatBlock{Attack: 4, Hit: 1, Crit: 1},
			MilestoneMultiplier: 1.5,
		},
		CategoryArmor: {
			Flat:                game.StatBlock{Defense: 3, HP: 15},
			MilestoneMultiplier: 1.4,
		},
		CategoryAccessory: {
			Flat:                game.StatBlock{Speed: 1, Dodge: 1, Hit: 1, HP: 8},
			MilestoneMultiplier: 1.3,
		},
	}
}
