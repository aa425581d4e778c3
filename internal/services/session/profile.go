package session

import (
	"context"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/orchestrators/skills"
)

// BuildProfile assembles the complete save snapshot of this session.
func (s *Session) BuildProfile(ctx context.Context, id, playerID, name string) *game.Profile {
	skillState := s.skills.Snapshot(ctx)

	p := &game.Profile{
		ID:       id,
		PlayerID: playerID,
		Name:     name,

		Player: s.player,
		Items:  make(map[string]int, len(s.items)),

		Quests: s.quests.Snapshot(ctx),

		AvailableSkills: skillState.Available,
		ActiveSkills:    skillState.Active,
		PassiveSkills:   skillState.Passive,

		Locations: make(map[string]*game.LocationProgress, len(s.locations)),
		ShopStock: make([]*game.ShopItem, len(s.shopStock)),

		ClockMinutes: s.gameClock.Snapshot(ctx),
	}

	for k, v := range s.items {
		p.Items[k] = v
	}
	p.Equipment = make([]*game.Equipment, len(s.equipment))
	for i, eq := range s.equipment {
		eqCopy := *eq
		p.Equipment[i] = &eqCopy
	}
	p.Equipped = make(map[game.EquipmentSlot]string, len(s.equipped))
	for slot, instID := range s.equipped {
		p.Equipped[slot] = instID
	}
	for lid, lp := range s.locations {
		lpCopy := *lp
		p.Locations[lid] = &lpCopy
	}
	for i, item := range s.shopStock {
		itemCopy := *item
		p.ShopStock[i] = &itemCopy
	}
	return p
}

// ApplyProfile restores the session from a save snapshot, replacing
// all live state.
func (s *Session) ApplyProfile(ctx context.Context, p *game.Profile) error {
	if p == nil {
		return errors.InvalidArgument("profile cannot be nil")
	}

	if err := s.quests.Restore(ctx, p.Quests); err != nil {
		return errors.Wrap(err, "failed to restore quests")
	}
	if err := s.skills.Restore(ctx, &skills.State{
		Available: p.AvailableSkills,
		Active:    p.ActiveSkills,
		Passive:   p.PassiveSkills,
	}); err != nil {
		return errors.Wrap(err, "failed to restore skills")
	}
	if err := s.gameClock.Restore(ctx, p.ClockMinutes); err != nil {
		return errors.Wrap(err, "failed to restore clock")
	}

	s.player = p.Player
	s.items = make(map[string]int, len(p.Items))
	for k, v := range p.Items {
		s.items[k] = v
	}
	s.equipment = make([]*game.Equipment, len(p.Equipment))
	for i, eq := range p.Equipment {
		eqCopy := *eq
		s.equipment[i] = &eqCopy
	}
	s.equipped = make(map[game.EquipmentSlot]string, len(p.Equipped))
	for slot, id := range p.Equipped {
		s.equipped[slot] = id
	}
	s.locations = make(map[string]*game.LocationProgress, len(p.Locations))
	for lid, lp := range p.Locations {
		lpCopy := *lp
		s.locations[lid] = &lpCopy
	}
	if len(p.ShopStock) > 0 {
		s.shopStock = make([]*game.ShopItem, len(p.ShopStock))
		for i, item := range p.ShopStock {
			itemCopy := *item
			s.shopStock[i] = &itemCopy
		}
	}
	return nil
}
