package gamedata

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
)

// Tables aggregates every authored balance table. Construct with
// Default or Load; accessors return explicit errors for gaps instead
// of falling back to defaults silently.
type Tables struct {
	recipes       map[game.EquipmentSlot]Recipe
	distributions map[game.Quality]RarityDistribution
	enhanceTable  []EnhanceLevelConfig
	decompose     map[decomposeKey]DecomposeReward
	sublimation   map[EquipCategory]SublimationBonus
	skills        map[string]SkillTemplate
	availSkills   []string
	quests        []*game.Quest
	shopItems     []*game.ShopItem
}

// Default returns the in-code authored tables.
func Default() *Tables {
	return &Tables{
		recipes:       defaultRecipes(),
		distributions: defaultQualityDistributions(),
		enhanceTable:  defaultEnhanceTable(),
		decompose:     defaultDecomposeTable(),
		sublimation:   defaultSublimationBonuses(),
		skills:        defaultSkillTemplates(),
		availSkills:   defaultAvailableSkills(),
		quests:        defaultQuests(),
		shopItems:     defaultShopItems(),
	}
}

// Load returns the default tables with YAML overrides from the given
// file applied. Overridable knobs: enhancement success rates and
// costs, recipe costs, decompose quantities. An unreadable file is an
// error; an absent override section leaves the default untouched.
func Load(path string) (*Tables, error) {
	t := Default()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read balance overrides from %s", path)
	}

	if v.IsSet("enhance_levels") {
		var levels []EnhanceLevelConfig
		if err := v.UnmarshalKey("enhance_levels", &levels); err != nil {
			return nil, errors.Wrap(err, "failed to parse enhance_levels override")
		}
		if len(levels) == 0 {
			return nil, errors.InvalidArgument("enhance_levels override must not be empty")
		}
		t.enhanceTable = levels
	}

	if v.IsSet("recipes") {
		var recipes []Recipe
		if err := v.UnmarshalKey("recipes", &recipes); err != nil {
			return nil, errors.Wrap(err, "failed to parse recipes override")
		}
		for _, r := range recipes {
			if !r.Slot.Valid() {
				return nil, errors.InvalidArgumentf("recipe override for unknown slot %q", r.Slot)
			}
			t.recipes[r.Slot] = r
		}
	}

	if v.IsSet("decompose_quantities") {
		overrides := map[string]int{}
		if err := v.UnmarshalKey("decompose_quantities", &overrides); err != nil {
			return nil, errors.Wrap(err, "failed to parse decompose_quantities override")
		}
		for rarityName, qty := range overrides {
			rarity := game.Rarity(rarityName)
			if !rarity.Valid() {
				return nil, errors.InvalidArgumentf("decompose override for unknown rarity %q", rarityName)
			}
			for key, reward := range t.decompose {
				if key.rarity == rarity {
					reward.Quantity = qty
					t.decompose[key] = reward
				}
			}
		}
	}

	slog.Info("Loaded balance overrides",
		"path", path,
		"enhance_levels", len(t.enhanceTable),
		"recipes", len(t.recipes),
	)

	return t, nil
}

func missingConfigf(format string, args ...interface{}) error {
	return errors.Internalf(format, args...)
}

// Recipe returns the unique recipe for the slot.
func (t *Tables) Recipe(slot game.EquipmentSlot) (Recipe, error) {
	r, ok := t.recipes[slot]
	if !ok {
		return Recipe{}, errors.NotFoundf("no recipe for slot %q", slot)
	}
	return r, nil
}

// QualityDistribution returns the rarity simplex for a combined
// material quality tier.
func (t *Tables) QualityDistribution(q game.Quality) (RarityDistribution, error) {
	d, ok := t.distributions[q]
	if !ok {
		return RarityDistribution{}, missingConfigf("no rarity distribution for quality %q", q)
	}
	return d, nil
}

// EnhanceLevel returns the table row for the given current level.
// ok=false means the level is past the table: max level reached.
func (t *Tables) EnhanceLevel(level int) (EnhanceLevelConfig, bool) {
	if level < 0 || level >= len(t.enhanceTable) {
		return EnhanceLevelConfig{}, false
	}
	return t.enhanceTable[level], true
}

// EnhanceMaxLevel returns the number of authored enhancement levels.
func (t *Tables) EnhanceMaxLevel() int {
	return len(t.enhanceTable)
}

// DecomposeReward returns the deterministic reward for breaking down
// equipment of the given category and rarity.
func (t *Tables) DecomposeReward(category EquipCategory, rarity game.Rarity) (DecomposeReward, error) {
	r, ok := t.decompose[decomposeKey{category: category, rarity: rarity}]
	if !ok {
		return DecomposeReward{}, missingConfigf("no decompose reward for %s/%s", category, rarity)
	}
	return r, nil
}

// SublimationBonus returns the per-level reward for the category.
func (t *Tables) SublimationBonus(category EquipCategory) (SublimationBonus, error) {
	b, ok := t.sublimation[category]
	if !ok {
		return SublimationBonus{}, missingConfigf("no sublimation bonus for category %q", category)
	}
	return b, nil
}

// SkillTemplate returns the authored skill definition.
func (t *Tables) SkillTemplate(id string) (SkillTemplate, bool) {
	tmpl, ok := t.skills[id]
	return tmpl, ok
}

// StartingSkills returns the skill IDs available before any unlocks.
func (t *Tables) StartingSkills() []string {
	out := make([]string, len(t.availSkills))
	copy(out, t.availSkills)
	return out
}

// Quests returns fresh copies of the authored quest graph.
func (t *Tables) Quests() []*game.Quest {
	out := make([]*game.Quest, len(t.quests))
	for i, q := range t.quests {
		qCopy := *q
		qCopy.Conditions = make([]game.QuestCondition, len(q.Conditions))
		copy(qCopy.Conditions, q.Conditions)
		qCopy.Prerequisites = append([]string(nil), q.Prerequisites...)
		out[i] = &qCopy
	}
	return out
}

// ShopItems returns fresh copies of the authored shop stock.
func (t *Tables) ShopItems() []*game.ShopItem {
	out := make([]*game.ShopItem, len(t.shopItems))
	for i, item := range t.shopItems {
		itemCopy := *item
		out[i] = &itemCopy
	}
	return out
}

func defaultShopItems() []*game.ShopItem {
	return []*game.ShopItem{
		{ID: ItemEnhanceStone, Name: "Enhance Stone", Price: 300, Stock: 10, DailyLimit: 10},
		{ID: ItemProtectionCharm, Name: "Protection Charm", Price: 2000, Stock: 2, DailyLimit: 2},
		{ID: game.MaterialKey(game.MaterialWood, game.QualityNormal), Name: "Timber Bundle", Price: 50, Stock: 20, DailyLimit: 20},
		{ID: game.MaterialKey(game.MaterialOre, game.QualityNormal), Name: "Ore Chunk", Price: 80, Stock: 20, DailyLimit: 20},
	}
}
