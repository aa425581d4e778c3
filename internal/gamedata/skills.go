package gamedata

import (
	"github.com/railforge/railforge/internal/entities/game"
)

// SkillEffectFormula computes a skill's effect values as
// base + level*scaling per component. StunChance is clamped to 1.0 at
// evaluation time.
type SkillEffectFormula struct {
	Base    game.SkillEffect `json:"base" mapstructure:"base"`
	Scaling game.SkillEffect `json:"scaling" mapstructure:"scaling"`
}

// At evaluates the formula for the given skill level.
func (f SkillEffectFormula) At(level int) game.SkillEffect {
	l := float64(level)
	effect := game.SkillEffect{
		DamagePercent: f.Base.DamagePercent + l*f.Scaling.DamagePercent,
		HealPercent:   f.Base.HealPercent + l*f.Scaling.HealPercent,
		BuffAttack:    f.Base.BuffAttack + l*f.Scaling.BuffAttack,
		BuffDefense:   f.Base.BuffDefense + l*f.Scaling.BuffDefense,
		BuffSpeed:     f.Base.BuffSpeed + l*f.Scaling.BuffSpeed,
		StunChance:    f.Base.StunChance + l*f.Scaling.StunChance,
		CritBoost:     f.Base.CritBoost + l*f.Scaling.CritBoost,
		DrainHP:       f.Base.DrainHP + l*f.Scaling.DrainHP,
	}
	if effect.StunChance > 1.0 {
		effect.StunChance = 1.0
	}
	return effect
}

// SkillTemplate is an authored skill definition. Learning a skill
// instantiates game.Skill from it and appends UnlockChain to the
// available set.
type SkillTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        game.SkillType     `json:"type"`
	MaxCooldown int                `json:"max_cooldown"`
	Formula     SkillEffectFormula `json:"formula"`
	UnlockChain []string           `json:"unlock_chain,omitempty"`
}

// Instantiate builds a level-1 skill from the template.
func (t SkillTemplate) Instantiate() *game.Skill {
	return &game.Skill{
		ID:          t.ID,
		Name:        t.Name,
		Type:        t.Type,
		Level:       1,
		MaxCooldown: t.MaxCooldown,
	}
}

func defaultSkillTemplates() map[string]SkillTemplate {
	templates := []SkillTemplate{
		{
			ID: "skill:cleave", Name: "Cleave", Type: game.SkillActive, MaxCooldown: 3,
			Formula: SkillEffectFormula{
				Base:    game.SkillEffect{DamagePercent: 1.2},
				Scaling: game.SkillEffect{DamagePercent: 0.15},
			},
			UnlockChain: []string{"skill:whirlwind"},
		},
		{
			ID: "skill:whirlwind", Name: "Whirlwind", Type: game.SkillActive, MaxCooldown: 5,
			Formula: SkillEffectFormula{
				Base:    game.SkillEffect{DamagePercent: 0.8, StunChance: 0.10},
				Scaling: game.SkillEffect{DamagePercent: 0.10, StunChance: 0.05},
			},
			UnlockChain: []string{"skill:executioner"},
		},
		{
			ID: "skill:executioner", Name: "Executioner", Type: game.SkillActive, MaxCooldown: 6,
			Formula: SkillEffectFormula{
				Base:    game.SkillEffect{DamagePercent: 2.0, CritBoost: 0.20},
				Scaling: game.SkillEffect{DamagePercent: 0.25, CritBoost: 0.02},
			},
		},
		{
			ID: "skill:field_dressing", Name: "Field Dressing", Type: game.SkillActive, MaxCooldown: 4,
			Formula: SkillEffectFormula{
				Base:    game.SkillEffect{HealPercent: 0.25},
				Scaling: game.SkillEffect{HealPercent: 0.05},
			},
			UnlockChain: []string{"skill:leech_blade"},
		},
		{
			ID: "skill:leech_blade", Name: "Leech Blade", Type: game.SkillActive, MaxCooldown: 5,
			Formula: SkillEffectFormula{
				Base:    game.SkillEffect{DamagePercent: 0.9, DrainHP: 0.30},
				Scaling: game.SkillEffect{DamagePercent: 0.10, DrainHP: 0.03},
			},
		},
		{
			ID: "skill:iron_hide", Name: "Iron Hide", Type: game.SkillPassive,
			Formula: SkillEffectFormula{
				Base:    game.SkillEffect{BuffDefense: 5},
				Scaling: game.SkillEffect{BuffDefense: 2},
			},
			UnlockChain: []string{"skill:steam_vigor"},
		},
		{
			ID: "skill:steam_vigor", Name: "Steam Vigor", Type: game.SkillPassive,
			Formula: SkillEffectFormula{
				Base:    game.SkillEffect{BuffAttack: 4, BuffSpeed: 2},
				Scaling: game.SkillEffect{BuffAttack: 2, BuffSpeed: 1},
			},
		},
	}

	byID := make(map[string]SkillTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}
	return byID
}

// defaultAvailableSkills are reachable from the start; the rest unlock
// through chains.
func defaultAvailableSkills() []string {
	return []string{"skill:cleave", "skill:field_dressing", "skill:iron_hide"}
}
