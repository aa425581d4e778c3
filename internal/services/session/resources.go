package session

import (
	"log/slog"
	"time"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
)

// Wall-clock regeneration cadences
const (
	spiritRegenInterval  = 3 * time.Minute
	staminaRegenInterval = 2 * time.Minute
)

// Gold returns the purse balance.
func (s *Session) Gold() int { return s.player.Gold }

// SpendGold debits the purse, failing without mutation if short.
func (s *Session) SpendGold(amount int) error {
	if s.player.Gold < amount {
		return errors.ResourceExhausted("not enough gold").
			WithMeta("have", s.player.Gold).
			WithMeta("need", amount)
	}
	s.player.Gold -= amount
	return nil
}

// Spirit returns the current spirit pool.
func (s *Session) Spirit() int { return s.player.Spirit }

// MaxSpirit returns the spirit pool cap.
func (s *Session) MaxSpirit() int { return s.player.MaxSpirit }

// Stamina returns the current stamina pool.
func (s *Session) Stamina() int { return s.player.Stamina }

// SpendSpirit debits spirit, failing without mutation if short.
func (s *Session) SpendSpirit(amount int) error {
	if s.player.Spirit < amount {
		return errors.ResourceExhausted("not enough spirit").
			WithMeta("have", s.player.Spirit).
			WithMeta("need", amount)
	}
	s.player.Spirit -= amount
	return nil
}

// SpendStamina debits stamina, failing without mutation if short.
func (s *Session) SpendStamina(amount int) error {
	if s.player.Stamina < amount {
		return errors.ResourceExhausted("not enough stamina").
			WithMeta("have", s.player.Stamina).
			WithMeta("need", amount)
	}
	s.player.Stamina -= amount
	return nil
}

// Player returns a copy of the player state snapshot.
func (s *Session) Player() game.PlayerState {
	return s.player
}

// RecoverOutput reports a wall-clock regeneration pass
type RecoverOutput struct {
	SpiritGained  int
	StaminaGained int
}

// RecoverResources credits spirit and stamina for the wall-clock time
// elapsed since each pool's last recovery: one spirit per three
// minutes, one stamina per two minutes, whole intervals only, capped
// at the pool maxima. Each timestamp advances by the whole intervals
// it credited, so a sub-interval remainder keeps accumulating and
// frequent polling never starves the slower pool. A pool at its cap
// snaps its timestamp to now instead of banking time.
func (s *Session) RecoverResources() *RecoverOutput {
	now := s.clock.Now().Unix()

	out := &RecoverOutput{
		SpiritGained: s.recoverPool(
			now, &s.player.LastSpiritRecoveryUnix, spiritRegenInterval, s.creditSpirit),
		StaminaGained: s.recoverPool(
			now, &s.player.LastStaminaRecoveryUnix, staminaRegenInterval, s.creditStamina),
	}
	if out.SpiritGained == 0 && out.StaminaGained == 0 {
		return out
	}

	slog.Info("Resources recovered",
		"spirit_gained", out.SpiritGained,
		"stamina_gained", out.StaminaGained,
	)
	return out
}

func (s *Session) recoverPool(now int64, last *int64, interval time.Duration, credit func(int) int) int {
	elapsed := now - *last
	if elapsed <= 0 {
		return 0
	}
	gain := int(elapsed / int64(interval.Seconds()))
	if gain == 0 {
		return 0
	}

	credited := credit(gain)
	if credited < gain {
		*last = now
	} else {
		*last += int64(gain) * int64(interval.Seconds())
	}
	return credited
}

func (s *Session) creditSpirit(amount int) int {
	before := s.player.Spirit
	s.player.Spirit += amount
	if s.player.Spirit > s.player.MaxSpirit {
		s.player.Spirit = s.player.MaxSpirit
	}
	return s.player.Spirit - before
}

func (s *Session) creditStamina(amount int) int {
	before := s.player.Stamina
	s.player.Stamina += amount
	if s.player.Stamina > s.player.MaxStamina {
		s.player.Stamina = s.player.MaxStamina
	}
	return s.player.Stamina - before
}

// RaiseMaxSpirit grows the spirit cap, filling the gained headroom.
func (s *Session) RaiseMaxSpirit(by int) {
	if by <= 0 {
		return
	}
	s.player.MaxSpirit += by
	s.player.Spirit += by
}

// CombatTotals sums the player's worn equipment stats into the
// attack/defense/agility totals the battle layer reads.
func (s *Session) CombatTotals() (attack, defense, agility int) {
	attack = s.player.TotalAttack
	defense = s.player.TotalDefense
	agility = s.player.TotalAgility
	for _, id := range s.equipped {
		eq, err := s.FindEquipment(id)
		if err != nil {
			continue
		}
		attack += eq.Stats.Attack
		defense += eq.Stats.Defense
		agility += eq.Stats.Speed
	}
	return attack, defense, agility
}
