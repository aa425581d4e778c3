// Package game implements the railforge simulation entities.
// These are data-only structs plus identity helpers; all progression
// logic lives in the orchestrator engines.
package game

import (
	"fmt"
	"strings"

	"github.com/railforge/railforge/internal/errors"
)

// MaterialType identifies one of the six gatherable material families.
type MaterialType string

// Material types
const (
	MaterialWood    MaterialType = "wood"
	MaterialOre     MaterialType = "ore"
	MaterialHide    MaterialType = "hide"
	MaterialFiber   MaterialType = "fiber"
	MaterialCrystal MaterialType = "crystal"
	MaterialBone    MaterialType = "bone"
)

// MaterialTypes lists every material type in declaration order.
var MaterialTypes = []MaterialType{
	MaterialWood,
	MaterialOre,
	MaterialHide,
	MaterialFiber,
	MaterialCrystal,
	MaterialBone,
}

// Quality is the ordered rank of a crafting material:
// NORMAL < GOOD < FINE < RARE < LEGENDARY.
type Quality string

// Material qualities, lowest to highest
const (
	QualityNormal    Quality = "normal"
	QualityGood      Quality = "good"
	QualityFine      Quality = "fine"
	QualityRare      Quality = "rare"
	QualityLegendary Quality = "legendary"
)

// qualityOrder fixes the total ordering used for weighted-average
// computations.
var qualityOrder = []Quality{
	QualityNormal,
	QualityGood,
	QualityFine,
	QualityRare,
	QualityLegendary,
}

// Qualities lists every quality, lowest to highest.
func Qualities() []Quality {
	out := make([]Quality, len(qualityOrder))
	copy(out, qualityOrder)
	return out
}

// Index returns the ordinal of the quality (NORMAL=0 .. LEGENDARY=4),
// or -1 for an unknown quality.
func (q Quality) Index() int {
	for i, known := range qualityOrder {
		if q == known {
			return i
		}
	}
	return -1
}

// Valid reports whether the quality is one of the five known tiers.
func (q Quality) Valid() bool {
	return q.Index() >= 0
}

// QualityFromIndex returns the quality at the given ordinal.
func QualityFromIndex(idx int) (Quality, error) {
	if idx < 0 || idx >= len(qualityOrder) {
		return "", errors.OutOfRangef("quality index %d outside [0,%d]", idx, len(qualityOrder)-1)
	}
	return qualityOrder[idx], nil
}

const materialKeyPrefix = "mat"

// MaterialKey encodes a (type, quality) pair into the inventory lookup
// key. Encoding is a pure string composition; ParseMaterialKey inverts
// it losslessly.
func MaterialKey(mt MaterialType, q Quality) string {
	return fmt.Sprintf("%s:%s:%s", materialKeyPrefix, mt, q)
}

// ParseMaterialKey decodes an inventory key produced by MaterialKey.
func ParseMaterialKey(key string) (MaterialType, Quality, error) {
	parts := strings.Split(key, ":")
	if len(parts) != 3 || parts[0] != materialKeyPrefix {
		return "", "", errors.InvalidArgumentf("malformed material key %q", key)
	}

	mt := MaterialType(parts[1])
	q := Quality(parts[2])
	if !q.Valid() {
		return "", "", errors.InvalidArgumentf("invalid quality %q in material key %q", parts[2], key)
	}

	return mt, q, nil
}
