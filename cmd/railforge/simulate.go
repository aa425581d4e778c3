package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/railforge/railforge/internal/entities/game"
	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/gamedata"
	"github.com/railforge/railforge/internal/orchestrators/crafting"
	"github.com/railforge/railforge/internal/orchestrators/enhancement"
	"github.com/railforge/railforge/internal/orchestrators/gameclock"
	"github.com/railforge/railforge/internal/orchestrators/quests"
	"github.com/railforge/railforge/internal/orchestrators/skills"
	"github.com/railforge/railforge/internal/orchestrators/sublimation"
	"github.com/railforge/railforge/internal/pkg/clock"
	"github.com/railforge/railforge/internal/pkg/idgen"
	redisclient "github.com/railforge/railforge/internal/redis"
	"github.com/railforge/railforge/internal/repositories/profile"
	"github.com/railforge/railforge/internal/services/session"
)

var (
	balancePath   string
	redisEndpoint string
	profileID     string
	playerID      string
	simDays       int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted progression session",
	Long:  `Simulate drives one session through the progression loop: gather, craft, enhance, sublimate, quest, and day rollover. With --redis the resulting save profile is persisted.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&balancePath, "balance", "", "path to a YAML balance override file")
	simulateCmd.Flags().StringVar(&redisEndpoint, "redis", "", "redis endpoint for profile persistence (optional)")
	simulateCmd.Flags().StringVar(&profileID, "profile", "profile_sim", "profile ID to save under")
	simulateCmd.Flags().StringVar(&playerID, "player", "player_sim", "player ID owning the profile")
	simulateCmd.Flags().IntVar(&simDays, "days", 2, "in-game days to simulate")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tables := gamedata.Default()
	if balancePath != "" {
		loaded, err := gamedata.Load(balancePath)
		if err != nil {
			return fmt.Errorf("failed to load balance overrides: %w", err)
		}
		tables = loaded
	}

	bus := rpgevents.NewBus()
	bus.SubscribeFunc(gameclock.EventDaylightChanged, 0, func(_ context.Context, e rpgevents.Event) error {
		daytime, _ := e.Context().Get("daytime")
		slog.Info("Daylight notification", "daytime", daytime)
		return nil
	})
	bus.SubscribeFunc(quests.EventQuestUnlocked, 0, func(_ context.Context, e rpgevents.Event) error {
		slog.Info("Quest unlocked notification", "quest_id", e.Source().GetID())
		return nil
	})

	sess, err := session.NewSession(&session.Config{
		Tables:      tables,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("inst"),
		Clock:       clock.New(),
		EventBus:    bus,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err := runProgressionLoop(ctx, sess); err != nil {
		return err
	}

	if redisEndpoint == "" {
		return nil
	}
	return saveProfile(ctx, sess)
}

// runProgressionLoop walks one session through every engine once per
// simulated day.
func runProgressionLoop(ctx context.Context, sess *session.Session) error {
	for day := 1; day <= simDays; day++ {
		sess.AddItem(game.MaterialKey(game.MaterialOre, game.QualityGood), 6)
		sess.AddItem(game.MaterialKey(game.MaterialWood, game.QualityNormal), 3)
		sess.AddItem(gamedata.ItemEnhanceStone, 5)
		sess.CreditGold(2000)

		crafted, err := sess.Crafting().Craft(ctx, &crafting.CraftInput{
			Slot:             game.SlotWeapon,
			BaseQuality:      game.QualityGood,
			SecondaryQuality: game.QualityNormal,
		})
		if err != nil {
			return fmt.Errorf("craft failed: %w", err)
		}
		slog.Info("Crafted equipment",
			"name", crafted.Equipment.Name,
			"rarity", crafted.Rarity,
		)
		if err := sess.Equip(crafted.Equipment.InstanceID); err != nil {
			return fmt.Errorf("equip failed: %w", err)
		}

		enhanced, err := sess.Enhancement().Enhance(ctx, &enhancement.EnhanceInput{
			Equipment: crafted.Equipment,
		})
		if err != nil {
			return fmt.Errorf("enhance failed: %w", err)
		}
		slog.Info("Enhancement attempt", "outcome", enhanced.Outcome, "level", enhanced.NewLevel)

		sublimated, err := sess.Sublimation().Sublimate(ctx, &sublimation.SublimateInput{
			Equipment: crafted.Equipment,
		})
		switch {
		case errors.IsResourceExhausted(err):
			// Spirit regenerates on wall-clock time, so long runs
			// drain the pool. Skip the attempt rather than abort.
			slog.Info("Sublimation skipped", "day", day, "reason", err.Error())
		case err != nil:
			return fmt.Errorf("sublimate failed: %w", err)
		default:
			slog.Info("Sublimation attempt",
				"result", sublimated.Result,
				"level", sublimated.Level,
				"progress", sublimated.Progress,
			)
		}

		if _, err := sess.Quests().UpdateProgress(ctx, &quests.UpdateProgressInput{
			ConditionType: gamedata.ConditionCraft,
			TargetID:      string(game.SlotWeapon),
			Amount:        1,
		}); err != nil {
			return fmt.Errorf("quest progress failed: %w", err)
		}

		if day == 1 {
			if _, err := sess.Skills().Learn(ctx, &skills.LearnInput{SkillID: "skill:cleave"}); err != nil {
				return fmt.Errorf("skill learn failed: %w", err)
			}
		}

		if _, err := sess.GameClock().Advance(ctx, &gameclock.AdvanceInput{Minutes: gameclock.MinutesPerDay}); err != nil {
			return fmt.Errorf("clock advance failed: %w", err)
		}
	}

	attack, defense, agility := sess.CombatTotals()
	slog.Info("Simulation finished",
		"days", simDays,
		"gold", sess.Gold(),
		"equipment", len(sess.Equipment()),
		"attack", attack,
		"defense", defense,
		"agility", agility,
	)
	return nil
}

func saveProfile(ctx context.Context, sess *session.Session) error {
	client, err := redisclient.NewClient(redisEndpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	repo, err := profile.NewRedis(&profile.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create profile repository: %w", err)
	}

	p := sess.BuildProfile(ctx, profileID, playerID, "Simulated Save")
	if _, err := repo.Create(ctx, profile.CreateInput{Profile: p}); err != nil {
		if _, updateErr := repo.Update(ctx, profile.UpdateInput{Profile: p}); updateErr != nil {
			return fmt.Errorf("failed to persist profile: %w", updateErr)
		}
	}

	slog.Info("Profile saved", "profile_id", profileID, "redis", redisEndpoint)
	return nil
}
