package game

// PlayerState is the persisted snapshot of the player resource pool.
// The session service owns the live pool; this struct is its plain
// key-value form for save profiles.
type PlayerState struct {
	Gold         int   `json:"gold"`
	Exp          int   `json:"exp"`
	HP           int   `json:"hp"`
	MaxHP        int   `json:"max_hp"`
	Spirit       int   `json:"spirit"`
	MaxSpirit    int   `json:"max_spirit"`
	Stamina      int   `json:"stamina"`
	MaxStamina   int   `json:"max_stamina"`
	TotalAttack  int   `json:"total_attack"`
	TotalDefense int   `json:"total_defense"`
	TotalAgility int   `json:"total_agility"`

	// Per-pool recovery marks. Spirit and stamina regenerate on
	// different cadences, so each pool keeps its own timestamp and
	// sub-interval remainder.
	LastSpiritRecoveryUnix  int64 `json:"last_spirit_recovery_unix"`
	LastStaminaRecoveryUnix int64 `json:"last_stamina_recovery_unix"`
}
