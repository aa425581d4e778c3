package gamedata

import (
	"fmt"

	"github.com/railforge/railforge/internal/entities/game"
)

// slot base stats for a COMMON item; rarity scales them up.
var slotBaseStats = map[game.EquipmentSlot]game.StatBlock{
	game.SlotHead:      {Defense: 4, HP: 15, Hit: 1},
	game.SlotBody:      {Defense: 8, HP: 30},
	game.SlotLegs:      {Defense: 5, HP: 20, Speed: 1},
	game.SlotFeet:      {Defense: 3, HP: 10, Speed: 2, Dodge: 1},
	game.SlotWeapon:    {Attack: 10, Hit: 2, Crit: 1, CritDamage: 0.10},
	game.SlotAccessory: {Attack: 3, Defense: 3, HP: 10, Crit: 1},
}

var rarityStatMultiplier = map[game.Rarity]float64{
	game.RarityCommon:    1.0,
	game.RarityUncommon:  1.3,
	game.RarityRare:      1.7,
	game.RarityEpic:      2.2,
	game.RarityLegendary: 3.0,
	game.RarityMythic:    4.0,
}

var slotDisplayName = map[game.EquipmentSlot]string{
	game.SlotHead:      "Helm",
	game.SlotBody:      "Coat",
	game.SlotLegs:      "Greaves",
	game.SlotFeet:      "Boots",
	game.SlotWeapon:    "Blade",
	game.SlotAccessory: "Talisman",
}

// EquipmentTemplate resolves the authored name and base stat block for
// a slot+rarity pair. A miss for a valid slot is a data-authoring bug:
// the caller treats it as a fatal invariant violation, not a
// recoverable failure.
func (t *Tables) EquipmentTemplate(slot game.EquipmentSlot, rarity game.Rarity) (string, game.StatBlock, error) {
	base, ok := slotBaseStats[slot]
	if !ok {
		return "", game.StatBlock{}, missingConfigf("no equipment template for slot %q", slot)
	}
	mult, ok := rarityStatMultiplier[rarity]
	if !ok {
		return "", game.StatBlock{}, missingConfigf("no stat multiplier for rarity %q", rarity)
	}

	stats := game.StatBlock{
		Attack:     scaleStat(base.Attack, mult),
		Defense:    scaleStat(base.Defense, mult),
		HP:         scaleStat(base.HP, mult),
		Speed:      scaleStat(base.Speed, mult),
		Hit:        scaleStat(base.Hit, mult),
		Dodge:      scaleStat(base.Dodge, mult),
		Crit:       scaleStat(base.Crit, mult),
		CritDamage: base.CritDamage * mult,
	}
	name := fmt.Sprintf("%s %s", rarity.Label(), slotDisplayName[slot])
	return name, stats, nil
}

func scaleStat(v int, mult float64) int {
	return int(float64(v) * mult)
}
