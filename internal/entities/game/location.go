package game

// Location progress caps
const (
	MaxMaterialProgress = 20
	MaxHuntProgress     = 80
)

// LocationProgress tracks per-location exploration counters. Created
// lazily on first access per location ID; lives for the whole save.
type LocationProgress struct {
	LocationID            string `json:"location_id"`
	MaterialProgress      int    `json:"material_progress"`
	HuntProgress          int    `json:"hunt_progress"`
	BossDefeated          bool   `json:"boss_defeated"`
	LastBossDefeatDay     int    `json:"last_boss_defeat_day"`
	LastBossChallengeDate string `json:"last_boss_challenge_date,omitempty"`
}

// ShopItem is a purchasable entry with a daily-limited stock. Stock is
// restored to DailyLimit at every day rollover.
type ShopItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Stock      int    `json:"stock"`
	DailyLimit int    `json:"daily_limit"`
}
