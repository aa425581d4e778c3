// Package gameclock implements the monotonic game-time counter: a
// minute accumulator that derives the calendar day and the day/night
// flag, fires the daily reset exactly once per crossed day, and
// announces daylight changes on the event bus.
package gameclock

//go:generate mockgen -destination=mock/mock_service.go -package=gameclockmock github.com/railforge/railforge/internal/orchestrators/gameclock Service,DailyResetter

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/railforge/railforge/internal/errors"
)

// DailyResetter performs the rollover work owned by the caller: shop
// stock back to daily limits, daily quest progress zeroed.
type DailyResetter interface {
	ResetDaily(ctx context.Context, day int) error
}

// Service defines the interface for game time operations
type Service interface {
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)
	Now(ctx context.Context) *TimeInfo
	Snapshot(ctx context.Context) int
	Restore(ctx context.Context, totalMinutes int) error
}

// Config holds the dependencies for the clock orchestrator
type Config struct {
	EventBus events.EventBus
	Resetter DailyResetter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Resetter == nil {
		vb.RequiredField("Resetter")
	}

	return vb.Build()
}

type orchestrator struct {
	bus      events.EventBus
	resetter DailyResetter

	totalMinutes int
}

// NewOrchestrator creates a new clock orchestrator starting at minute
// zero of day one
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		bus:      cfg.EventBus,
		resetter: cfg.Resetter,
	}, nil
}

// Advance moves the clock forward, running the daily reset for every
// crossed day and publishing a notification when the day/night flag
// flips.
func (o *orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if input.Minutes <= 0 {
		return nil, errors.InvalidArgument("minutes must be positive")
	}

	oldDay := dayOf(o.totalMinutes)
	wasDaytime := daytimeOf(o.totalMinutes)

	o.totalMinutes += input.Minutes
	newDay := dayOf(o.totalMinutes)
	isDaytime := daytimeOf(o.totalMinutes)

	for day := oldDay + 1; day <= newDay; day++ {
		if err := o.resetter.ResetDaily(ctx, day); err != nil {
			return nil, errors.Wrapf(err, "daily reset for day %d failed", day)
		}
		o.publishDay(ctx, EventDayStarted, day)
		slog.Info("Day rolled over", "day", day)
	}

	if isDaytime != wasDaytime {
		o.publishDaylight(ctx, isDaytime)
		slog.Info("Daylight changed", "daytime", isDaytime, "day", newDay)
	}

	return &AdvanceOutput{
		TotalMinutes:    o.totalMinutes,
		Day:             newDay,
		MinuteOfDay:     o.totalMinutes % MinutesPerDay,
		Daytime:         isDaytime,
		DaysCrossed:     newDay - oldDay,
		DaylightChanged: isDaytime != wasDaytime,
	}, nil
}

// Now returns the current clock reading without advancing it.
func (o *orchestrator) Now(_ context.Context) *TimeInfo {
	return &TimeInfo{
		TotalMinutes: o.totalMinutes,
		Day:          dayOf(o.totalMinutes),
		MinuteOfDay:  o.totalMinutes % MinutesPerDay,
		Daytime:      daytimeOf(o.totalMinutes),
	}
}

// Snapshot returns the persisted form of the clock.
func (o *orchestrator) Snapshot(_ context.Context) int {
	return o.totalMinutes
}

// Restore sets the clock from a persisted snapshot. No resets or
// events fire: the snapshot is already-lived time.
func (o *orchestrator) Restore(_ context.Context, totalMinutes int) error {
	if totalMinutes < 0 {
		return errors.InvalidArgument("total minutes must not be negative")
	}
	o.totalMinutes = totalMinutes
	return nil
}

func (o *orchestrator) publishDay(ctx context.Context, eventType string, day int) {
	event := events.NewGameEvent(eventType, nil, nil)
	event.Context().Set("day", day)
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish clock event", "event_type", eventType, "error", err)
	}
}

func (o *orchestrator) publishDaylight(ctx context.Context, daytime bool) {
	event := events.NewGameEvent(EventDaylightChanged, nil, nil)
	event.Context().Set("daytime", daytime)
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish clock event", "event_type", EventDaylightChanged, "error", err)
	}
}

func dayOf(totalMinutes int) int {
	return totalMinutes/MinutesPerDay + 1
}

func daytimeOf(totalMinutes int) bool {
	minute := totalMinutes % MinutesPerDay
	return minute >= DaylightStart && minute < DaylightEnd
}
