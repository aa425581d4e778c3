package skills

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// MaxActiveSkills caps how many active skills can be learned at once.
// Passive skills are uncapped.
const MaxActiveSkills = 4

// LearnInput requests learning an available skill
type LearnInput struct {
	SkillID string
}

// LearnOutput carries the instantiated skill and any skills its
// unlock chain made available
type LearnOutput struct {
	Skill         *game.Skill
	NewlyUnlocked []string
}

// UseInput requests firing an active skill
type UseInput struct {
	SkillID string
}

// UseOutput reports whether the skill fired. Used is false while the
// skill is on cooldown; that is not an error.
type UseOutput struct {
	Used   bool
	Effect game.SkillEffect
}

// State is the persistable snapshot of the unlock graph
type State struct {
	Available []string      `json:"available"`
	Active    []*game.Skill `json:"active"`
	Passive   []*game.Skill `json:"passive"`
}
