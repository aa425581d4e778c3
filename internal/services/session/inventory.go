package session

import (
	"log/slog"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
)

// ItemQuantity returns the held count for a stackable item or material
// key. Unknown IDs are zero.
func (s *Session) ItemQuantity(id string) int {
	return s.items[id]
}

// AddItem credits a stackable item or material.
func (s *Session) AddItem(id string, quantity int) {
	if quantity <= 0 {
		return
	}
	s.items[id] += quantity
}

// RemoveItem debits a stackable item or material, failing without
// mutation if the held count is short.
func (s *Session) RemoveItem(id string, quantity int) error {
	have := s.items[id]
	if have < quantity {
		return errors.ResourceExhaustedf("not enough %s", id).
			WithMeta("have", have).
			WithMeta("need", quantity)
	}
	s.items[id] = have - quantity
	if s.items[id] == 0 {
		delete(s.items, id)
	}
	return nil
}

// AddEquipment appends a new equipment instance to the inventory.
func (s *Session) AddEquipment(eq *game.Equipment) {
	s.equipment = append(s.equipment, eq)
}

// Equipment returns the owned equipment list.
func (s *Session) Equipment() []*game.Equipment {
	out := make([]*game.Equipment, len(s.equipment))
	copy(out, s.equipment)
	return out
}

// FindEquipment returns an owned equipment instance by instance ID.
func (s *Session) FindEquipment(instanceID string) (*game.Equipment, error) {
	for _, eq := range s.equipment {
		if eq.InstanceID == instanceID {
			return eq, nil
		}
	}
	return nil, errors.NotFoundf("equipment instance %q not found", instanceID)
}

// RemoveEquipment destroys an owned equipment instance, unequipping it
// first if worn.
func (s *Session) RemoveEquipment(instanceID string) error {
	for i, eq := range s.equipment {
		if eq.InstanceID != instanceID {
			continue
		}
		if s.equipped[eq.Slot] == instanceID {
			delete(s.equipped, eq.Slot)
		}
		s.equipment = append(s.equipment[:i], s.equipment[i+1:]...)
		return nil
	}
	return errors.NotFoundf("equipment instance %q not found", instanceID)
}

// Equip wears an owned equipment instance in its slot, replacing
// whatever was there.
func (s *Session) Equip(instanceID string) error {
	eq, err := s.FindEquipment(instanceID)
	if err != nil {
		return err
	}
	s.equipped[eq.Slot] = instanceID
	slog.Info("Equipment equipped", "instance_id", instanceID, "slot", eq.Slot)
	return nil
}

// EquippedIn returns the equipment worn in the slot, or nil.
func (s *Session) EquippedIn(slot game.EquipmentSlot) *game.Equipment {
	id, ok := s.equipped[slot]
	if !ok {
		return nil
	}
	eq, err := s.FindEquipment(id)
	if err != nil {
		return nil
	}
	return eq
}

// CreditExp implements the quest reward sink.
func (s *Session) CreditExp(amount int) {
	s.player.Exp += amount
}

// CreditGold implements the quest reward sink.
func (s *Session) CreditGold(amount int) {
	s.player.Gold += amount
}

// CreditItem implements the quest reward sink.
func (s *Session) CreditItem(id string, quantity int) {
	s.AddItem(id, quantity)
}

// CreditMaterial implements the quest reward sink. Material rewards
// arrive already keyed by type and quality.
func (s *Session) CreditMaterial(key string, quantity int) {
	s.AddItem(key, quantity)
}
