// Package skills implements skill acquisition with chained unlocks:
// learning a skill can make further skills available, active skills
// compete for a capped slot set, and per-turn cooldowns gate use.
package skills

//go:generate mockgen -destination=mock/mock_service.go -package=skillsmock github.com/railforge/railforge/internal/orchestrators/skills Service

import (
	"context"
	"log/slog"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
)

// Service defines the interface for skill graph operations
type Service interface {
	Learn(ctx context.Context, input *LearnInput) (*LearnOutput, error)
	AvailableSkills(ctx context.Context) []string
	LearnedSkills(ctx context.Context) []*game.Skill
	Skill(ctx context.Context, id string) (*game.Skill, error)
	Effect(ctx context.Context, id string) (game.SkillEffect, error)
	CanUse(ctx context.Context, id string) (bool, error)
	Use(ctx context.Context, input *UseInput) (*UseOutput, error)
	OnTurnEnd(ctx context.Context)
	Snapshot(ctx context.Context) *State
	Restore(ctx context.Context, state *State) error
}

// Config holds the dependencies for the skill orchestrator
type Config struct {
	Tables *gamedata.Tables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}

	return vb.Build()
}

type orchestrator struct {
	tables *gamedata.Tables

	available []string
	availSet  map[string]struct{}
	active    []*game.Skill
	passive   []*game.Skill
}

// NewOrchestrator creates a new skill orchestrator seeded with the
// starting available set
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{tables: cfg.Tables}
	o.installAvailable(cfg.Tables.StartingSkills())
	return o, nil
}

func (o *orchestrator) installAvailable(ids []string) {
	o.available = nil
	o.availSet = make(map[string]struct{})
	for _, id := range ids {
		o.addAvailable(id)
	}
}

// addAvailable appends idempotently, preserving discovery order.
func (o *orchestrator) addAvailable(id string) bool {
	if _, ok := o.availSet[id]; ok {
		return false
	}
	o.available = append(o.available, id)
	o.availSet[id] = struct{}{}
	return true
}

// Learn instantiates an available skill and opens its unlock chain.
func (o *orchestrator) Learn(_ context.Context, input *LearnInput) (*LearnOutput, error) {
	id := input.SkillID
	if _, ok := o.availSet[id]; !ok {
		return nil, errors.FailedPreconditionf("skill %q is not unlocked", id)
	}
	if o.learned(id) != nil {
		return nil, errors.AlreadyExistsf("skill %q is already learned", id)
	}

	tmpl, ok := o.tables.SkillTemplate(id)
	if !ok {
		return nil, errors.Internalf("no template for available skill %q", id)
	}
	if tmpl.Type == game.SkillActive && len(o.active) >= MaxActiveSkills {
		return nil, errors.FailedPreconditionf(
			"active skill slots full: %d of %d in use", len(o.active), MaxActiveSkills)
	}

	skill := tmpl.Instantiate()
	if skill.Type == game.SkillActive {
		o.active = append(o.active, skill)
	} else {
		o.passive = append(o.passive, skill)
	}

	out := &LearnOutput{Skill: skill}
	for _, next := range tmpl.UnlockChain {
		if o.addAvailable(next) {
			out.NewlyUnlocked = append(out.NewlyUnlocked, next)
		}
	}

	slog.Info("Skill learned",
		"skill_id", skill.ID,
		"type", skill.Type,
		"newly_unlocked", len(out.NewlyUnlocked),
	)
	return out, nil
}

// AvailableSkills returns the learnable IDs in discovery order.
func (o *orchestrator) AvailableSkills(_ context.Context) []string {
	out := make([]string, len(o.available))
	copy(out, o.available)
	return out
}

// LearnedSkills returns every learned skill, actives first.
func (o *orchestrator) LearnedSkills(_ context.Context) []*game.Skill {
	out := make([]*game.Skill, 0, len(o.active)+len(o.passive))
	out = append(out, o.active...)
	return append(out, o.passive...)
}

// Skill returns the learned skill by ID.
func (o *orchestrator) Skill(_ context.Context, id string) (*game.Skill, error) {
	if skill := o.learned(id); skill != nil {
		return skill, nil
	}
	return nil, errors.NotFoundf("skill %q is not learned", id)
}

// Effect evaluates the skill's formula at its current level.
func (o *orchestrator) Effect(_ context.Context, id string) (game.SkillEffect, error) {
	skill := o.learned(id)
	if skill == nil {
		return game.SkillEffect{}, errors.NotFoundf("skill %q is not learned", id)
	}

	tmpl, ok := o.tables.SkillTemplate(id)
	if !ok {
		return game.SkillEffect{}, errors.Internalf("no template for learned skill %q", id)
	}
	return tmpl.Formula.At(skill.Level), nil
}

// CanUse reports whether the skill is off cooldown.
func (o *orchestrator) CanUse(_ context.Context, id string) (bool, error) {
	skill := o.learned(id)
	if skill == nil {
		return false, errors.NotFoundf("skill %q is not learned", id)
	}
	return skill.Ready(), nil
}

// Use fires the skill: while on cooldown it reports Used=false,
// otherwise the cooldown resets to max and the use count increments.
func (o *orchestrator) Use(ctx context.Context, input *UseInput) (*UseOutput, error) {
	skill := o.learned(input.SkillID)
	if skill == nil {
		return nil, errors.NotFoundf("skill %q is not learned", input.SkillID)
	}
	if !skill.Ready() {
		return &UseOutput{Used: false}, nil
	}

	skill.CurrentCooldown = skill.MaxCooldown
	skill.UseCount++

	effect, err := o.Effect(ctx, skill.ID)
	if err != nil {
		return nil, err
	}
	return &UseOutput{Used: true, Effect: effect}, nil
}

// OnTurnEnd decrements every active cooldown, flooring at zero.
func (o *orchestrator) OnTurnEnd(_ context.Context) {
	for _, skill := range o.active {
		if skill.CurrentCooldown > 0 {
			skill.CurrentCooldown--
		}
	}
}

// Snapshot returns a deep copy of the graph state for persistence.
func (o *orchestrator) Snapshot(_ context.Context) *State {
	state := &State{
		Available: make([]string, len(o.available)),
		Active:    copySkills(o.active),
		Passive:   copySkills(o.passive),
	}
	copy(state.Available, o.available)
	return state
}

// Restore replaces the graph state with a persisted snapshot.
func (o *orchestrator) Restore(_ context.Context, state *State) error {
	if state == nil {
		return errors.InvalidArgument("state is required")
	}
	if len(state.Active) > MaxActiveSkills {
		return errors.InvalidArgumentf(
			"snapshot holds %d active skills, cap is %d", len(state.Active), MaxActiveSkills)
	}

	o.installAvailable(state.Available)
	o.active = copySkills(state.Active)
	o.passive = copySkills(state.Passive)
	return nil
}

func (o *orchestrator) learned(id string) *game.Skill {
	for _, skill := range o.active {
		if skill.ID == id {
			return skill
		}
	}
	for _, skill := range o.passive {
		if skill.ID == id {
			return skill
		}
	}
	return nil
}

func copySkills(in []*game.Skill) []*game.Skill {
	out := make([]*game.Skill, len(in))
	for i, s := range in {
		sCopy := *s
		out[i] = &sCopy
	}
	return out
}
