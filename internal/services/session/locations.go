package session

import (
	"context"
	"log/slog"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
)

const calendarDayLayout = "2006-01-02"

// Location returns the progress record for a location, creating it
// lazily on first access.
func (s *Session) Location(locationID string) *game.LocationProgress {
	if lp, ok := s.locations[locationID]; ok {
		return lp
	}
	lp := &game.LocationProgress{LocationID: locationID}
	s.locations[locationID] = lp
	return lp
}

// AddMaterialProgress advances a location's gathering counter, capped.
func (s *Session) AddMaterialProgress(locationID string, amount int) int {
	lp := s.Location(locationID)
	lp.MaterialProgress += amount
	if lp.MaterialProgress > game.MaxMaterialProgress {
		lp.MaterialProgress = game.MaxMaterialProgress
	}
	return lp.MaterialProgress
}

// AddHuntProgress advances a location's hunting counter, capped.
func (s *Session) AddHuntProgress(locationID string, amount int) int {
	lp := s.Location(locationID)
	lp.HuntProgress += amount
	if lp.HuntProgress > game.MaxHuntProgress {
		lp.HuntProgress = game.MaxHuntProgress
	}
	return lp.HuntProgress
}

// CanChallengeBoss reports whether the location's boss can be
// challenged today. One challenge per calendar day.
func (s *Session) CanChallengeBoss(locationID string) bool {
	today := s.clock.Now().Format(calendarDayLayout)
	return s.Location(locationID).LastBossChallengeDate != today
}

// RecordBossChallenge burns today's challenge attempt for the
// location.
func (s *Session) RecordBossChallenge(locationID string) error {
	today := s.clock.Now().Format(calendarDayLayout)
	lp := s.Location(locationID)
	if lp.LastBossChallengeDate == today {
		return errors.FailedPreconditionf(
			"boss at %q already challenged today", locationID)
	}
	lp.LastBossChallengeDate = today
	return nil
}

// RecordBossDefeat marks the location's boss as beaten on the given
// game day.
func (s *Session) RecordBossDefeat(locationID string, day int) {
	lp := s.Location(locationID)
	lp.BossDefeated = true
	lp.LastBossDefeatDay = day
}

// ShopItems returns the live shop stock.
func (s *Session) ShopItems() []*game.ShopItem {
	out := make([]*game.ShopItem, len(s.shopStock))
	copy(out, s.shopStock)
	return out
}

// BuyShopItem purchases from the shop: checks stock and gold, debits
// both, credits the item.
func (s *Session) BuyShopItem(itemID string, quantity int) error {
	if quantity <= 0 {
		return errors.InvalidArgument("quantity must be positive")
	}

	var item *game.ShopItem
	for _, si := range s.shopStock {
		if si.ID == itemID {
			item = si
			break
		}
	}
	if item == nil {
		return errors.NotFoundf("shop item %q not found", itemID)
	}
	if item.Stock < quantity {
		return errors.ResourceExhaustedf("shop has %d of %s in stock", item.Stock, itemID).
			WithMeta("have", item.Stock).
			WithMeta("need", quantity)
	}
	if err := s.SpendGold(item.Price * quantity); err != nil {
		return err
	}

	item.Stock -= quantity
	s.AddItem(itemID, quantity)
	return nil
}

// ResetDaily is the game clock's rollover hook: shop stock back to
// daily limits, active daily quests zeroed, rewarded dailies brought
// back for the new day.
func (s *Session) ResetDaily(ctx context.Context, day int) error {
	for _, item := range s.shopStock {
		item.Stock = item.DailyLimit
	}

	if _, err := s.quests.ResetDailies(ctx); err != nil {
		return errors.Wrap(err, "failed to reset daily quests")
	}
	if _, err := s.quests.ReactivateDailies(ctx); err != nil {
		return errors.Wrap(err, "failed to reactivate daily quests")
	}

	slog.Info("Daily reset applied", "day", day)
	return nil
}
