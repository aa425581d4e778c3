package game

// SkillType separates battle-usable skills from always-on ones. ACTIVE
// skills occupy a capped slot set; PASSIVE skills are uncapped.
type SkillType string

// Skill types
const (
	SkillActive  SkillType = "active"
	SkillPassive SkillType = "passive"
)

// SkillEffect is the per-use effect of a skill at its current level.
// Values are computed from the template formula base + level*scaling.
type SkillEffect struct {
	DamagePercent float64 `json:"damage_percent"`
	HealPercent   float64 `json:"heal_percent"`
	BuffAttack    float64 `json:"buff_attack"`
	BuffDefense   float64 `json:"buff_defense"`
	BuffSpeed     float64 `json:"buff_speed"`
	StunChance    float64 `json:"stun_chance"`
	CritBoost     float64 `json:"crit_boost"`
	DrainHP       float64 `json:"drain_hp"`
}

// Skill is a learned skill instance.
type Skill struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            SkillType `json:"type"`
	Level           int       `json:"level"`
	MaxCooldown     int       `json:"max_cooldown"`
	CurrentCooldown int       `json:"current_cooldown"`
	UseCount        int       `json:"use_count"`
}

// Ready reports whether the skill is off cooldown.
func (s *Skill) Ready() bool {
	return s.CurrentCooldown <= 0
}
