// Package session holds the live player state for one save and wires
// every engine to it: it is the inventory behind crafting and
// enhancement, the purse behind enhancement, the spirit pool behind
// sublimation, the reward sink behind quest claims, and the daily
// resetter behind the game clock.
package session

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/orchestrators/crafting"
	"github.com/railforge/railforge/internal/orchestrators/decomposition"
	"github.com/railforge/railforge/internal/orchestrators/enhancement"
	"github.com/railforge/railforge/internal/orchestrators/gameclock"
	"github.com/railforge/railforge/internal/orchestrators/quests"
	"github.com/railforge/railforge/internal/orchestrators/skills"
	"github.com/railforge/railforge/internal/orchestrators/sublimation"
	"github.com/railforge/railforge/internal/pkg/clock"
	"github.com/railforge/railforge/internal/pkg/idgen"
)

// Starting resource pool for a fresh save
const (
	startingGold      = 200
	startingHP        = 100
	startingMaxSpirit = 30
	startingStamina   = 50
)

// Config holds the dependencies for a session
type Config struct {
	Tables      *gamedata.Tables
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Session is the top-level orchestrator of one save: it owns the
// player pool, inventory, shop stock and location progress, and holds
// the engines operating on them. Single-threaded by design; callers
// hold exclusive access for the duration of one action.
type Session struct {
	tables *gamedata.Tables
	clock  clock.Clock

	player    game.PlayerState
	items     map[string]int
	equipment []*game.Equipment
	equipped  map[game.EquipmentSlot]string
	locations map[string]*game.LocationProgress
	shopStock []*game.ShopItem

	crafting      crafting.Service
	enhancement   enhancement.Service
	sublimation   sublimation.Service
	decomposition decomposition.Service
	quests        quests.Service
	skills        skills.Service
	gameClock     gameclock.Service
}

// NewSession creates a fresh session and wires every engine to it
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Session{
		tables: cfg.Tables,
		clock:  cfg.Clock,
		player: game.PlayerState{
			Gold:                    startingGold,
			HP:                      startingHP,
			MaxHP:                   startingHP,
			Spirit:                  startingMaxSpirit,
			MaxSpirit:               startingMaxSpirit,
			Stamina:                 startingStamina,
			MaxStamina:              startingStamina,
			LastSpiritRecoveryUnix:  cfg.Clock.Now().Unix(),
			LastStaminaRecoveryUnix: cfg.Clock.Now().Unix(),
		},
		items:     make(map[string]int),
		equipped:  make(map[game.EquipmentSlot]string),
		locations: make(map[string]*game.LocationProgress),
		shopStock: cfg.Tables.ShopItems(),
	}

	craftSvc, err := crafting.NewOrchestrator(&crafting.Config{
		Tables:      cfg.Tables,
		Roller:      cfg.Roller,
		IDGenerator: cfg.IDGenerator,
		Inventory:   s,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build crafting engine")
	}

	enhanceSvc, err := enhancement.NewOrchestrator(&enhancement.Config{
		Tables:    cfg.Tables,
		Roller:    cfg.Roller,
		Inventory: s,
		Purse:     s,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build enhancement engine")
	}

	sublimateSvc, err := sublimation.NewOrchestrator(&sublimation.Config{
		Tables: cfg.Tables,
		Roller: cfg.Roller,
		Pool:   s,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sublimation engine")
	}

	decomposeSvc, err := decomposition.NewOrchestrator(&decomposition.Config{
		Tables: cfg.Tables,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build decomposition engine")
	}

	questSvc, err := quests.NewOrchestrator(&quests.Config{
		Tables:   cfg.Tables,
		EventBus: cfg.EventBus,
		Rewards:  s,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build quest graph")
	}

	skillSvc, err := skills.NewOrchestrator(&skills.Config{
		Tables: cfg.Tables,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build skill graph")
	}

	clockSvc, err := gameclock.NewOrchestrator(&gameclock.Config{
		EventBus: cfg.EventBus,
		Resetter: s,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build game clock")
	}

	s.crafting = craftSvc
	s.enhancement = enhanceSvc
	s.sublimation = sublimateSvc
	s.decomposition = decomposeSvc
	s.quests = questSvc
	s.skills = skillSvc
	s.gameClock = clockSvc
	return s, nil
}

// Crafting returns the crafting engine bound to this session.
func (s *Session) Crafting() crafting.Service { return s.crafting }

// Enhancement returns the enhancement engine bound to this session.
func (s *Session) Enhancement() enhancement.Service { return s.enhancement }

// Sublimation returns the sublimation engine bound to this session.
func (s *Session) Sublimation() sublimation.Service { return s.sublimation }

// Decomposition returns the decomposition engine.
func (s *Session) Decomposition() decomposition.Service { return s.decomposition }

// Quests returns the quest graph bound to this session.
func (s *Session) Quests() quests.Service { return s.quests }

// Skills returns the skill graph.
func (s *Session) Skills() skills.Service { return s.skills }

// GameClock returns the progression clock bound to this session.
func (s *Session) GameClock() gameclock.Service { return s.gameClock }

// Compile-time checks that the session satisfies every engine-side
// collaborator interface
var (
	_ crafting.Inventory      = (*Session)(nil)
	_ enhancement.Inventory   = (*Session)(nil)
	_ enhancement.Purse       = (*Session)(nil)
	_ sublimation.SpiritPool  = (*Session)(nil)
	_ quests.RewardSink       = (*Session)(nil)
	_ gameclock.DailyResetter = (*Session)(nil)
)
