package game

// Profile is a complete save: every stateful entity in its plain JSON
// snapshot form. The session service assembles and restores it; the
// profile repository persists it.
type Profile struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`

	Player    PlayerState              `json:"player"`
	Items     map[string]int           `json:"items,omitempty"`
	Equipment []*Equipment             `json:"equipment,omitempty"`
	Equipped  map[EquipmentSlot]string `json:"equipped,omitempty"`

	Quests []*Quest `json:"quests,omitempty"`

	AvailableSkills []string `json:"available_skills,omitempty"`
	ActiveSkills    []*Skill `json:"active_skills,omitempty"`
	PassiveSkills   []*Skill `json:"passive_skills,omitempty"`

	Locations map[string]*LocationProgress `json:"locations,omitempty"`
	ShopStock []*ShopItem                  `json:"shop_stock,omitempty"`

	ClockMinutes int `json:"clock_minutes"`

	CreatedAtUnix int64 `json:"created_at_unix"`
	UpdatedAtUnix int64 `json:"updated_at_unix"`
}
