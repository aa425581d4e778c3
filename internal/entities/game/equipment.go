package game

import "math"

// EquipmentSlot identifies where a piece of equipment is worn.
type EquipmentSlot string

// Equipment slots
const (
	SlotHead      EquipmentSlot = "head"
	SlotBody      EquipmentSlot = "body"
	SlotLegs      EquipmentSlot = "legs"
	SlotFeet      EquipmentSlot = "feet"
	SlotWeapon    EquipmentSlot = "weapon"
	SlotAccessory EquipmentSlot = "accessory"
)

// EquipmentSlots lists every slot in declaration order.
var EquipmentSlots = []EquipmentSlot{
	SlotHead,
	SlotBody,
	SlotLegs,
	SlotFeet,
	SlotWeapon,
	SlotAccessory,
}

// Valid reports whether the slot is one of the six known slots.
func (s EquipmentSlot) Valid() bool {
	for _, known := range EquipmentSlots {
		if s == known {
			return true
		}
	}
	return false
}

// Rarity is the ordered rank of equipment:
// COMMON < UNCOMMON < RARE < EPIC < LEGENDARY < MYTHIC.
type Rarity string

// Equipment rarities, lowest to highest
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

var rarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// Rarities lists every rarity, lowest to highest.
func Rarities() []Rarity {
	out := make([]Rarity, len(rarityOrder))
	copy(out, rarityOrder)
	return out
}

// Index returns the ordinal of the rarity (COMMON=0 .. MYTHIC=5), or
// -1 for an unknown rarity.
func (r Rarity) Index() int {
	for i, known := range rarityOrder {
		if r == known {
			return i
		}
	}
	return -1
}

// Valid reports whether the rarity is one of the six known tiers.
func (r Rarity) Valid() bool {
	return r.Index() >= 0
}

// Promote returns the next rarity up, capped at MYTHIC.
func (r Rarity) Promote() Rarity {
	idx := r.Index()
	if idx < 0 || idx >= len(rarityOrder)-1 {
		return r
	}
	return rarityOrder[idx+1]
}

// Label returns the human-readable rarity name.
func (r Rarity) Label() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	case RarityMythic:
		return "Mythic"
	default:
		return string(r)
	}
}

// StatBlock holds the combat stats carried by a piece of equipment.
type StatBlock struct {
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	HP         int     `json:"hp"`
	Speed      int     `json:"speed"`
	Hit        int     `json:"hit"`
	Dodge      int     `json:"dodge"`
	Crit       int     `json:"crit"`
	CritDamage float64 `json:"crit_damage"`
}

// Add accumulates another stat block into this one.
func (s *StatBlock) Add(other StatBlock) {
	s.Attack += other.Attack
	s.Defense += other.Defense
	s.HP += other.HP
	s.Speed += other.Speed
	s.Hit += other.Hit
	s.Dodge += other.Dodge
	s.Crit += other.Crit
	s.CritDamage += other.CritDamage
}

// Scale multiplies every stat by the factor, rounding the integer
// stats to nearest.
func (s *StatBlock) Scale(factor float64) {
	s.Attack = int(math.Round(float64(s.Attack) * factor))
	s.Defense = int(math.Round(float64(s.Defense) * factor))
	s.HP = int(math.Round(float64(s.HP) * factor))
	s.Speed = int(math.Round(float64(s.Speed) * factor))
	s.Hit = int(math.Round(float64(s.Hit) * factor))
	s.Dodge = int(math.Round(float64(s.Dodge) * factor))
	s.Crit = int(math.Round(float64(s.Crit) * factor))
	s.CritDamage *= factor
}

// Sub removes another stat block from this one.
func (s *StatBlock) Sub(other StatBlock) {
	s.Attack -= other.Attack
	s.Defense -= other.Defense
	s.HP -= other.HP
	s.Speed -= other.Speed
	s.Hit -= other.Hit
	s.Dodge -= other.Dodge
	s.Crit -= other.Crit
	s.CritDamage -= other.CritDamage
}

// Equipment is a single owned equipment instance. Created by the
// crafting engine (or pre-authored generators), destroyed by
// decomposition or removal. Enhance and sublimation fields are the
// mutable progression state; Stats already includes every applied
// bonus.
type Equipment struct {
	ID                  string        `json:"id"`
	InstanceID          string        `json:"instance_id"`
	Name                string        `json:"name"`
	Slot                EquipmentSlot `json:"slot"`
	Rarity              Rarity        `json:"rarity"`
	Stats               StatBlock     `json:"stats"`
	EnhanceLevel        int           `json:"enhance_level"`
	SublimationLevel    int           `json:"sublimation_level"`
	SublimationProgress int           `json:"sublimation_progress"`
}

// ItemKind is the discriminant between plain stackable items and
// equipment instances. Inventory entries carry it explicitly instead of
// being probed for field presence.
type ItemKind string

// Item kinds
const (
	ItemKindNormal    ItemKind = "normal"
	ItemKindEquipment ItemKind = "equipment"
)
