package gameclock_test

import (
	"context"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/railforge/railforge/internal/errors"
	"github.com/railforge/railforge/internal/orchestrators/gameclock"
)

type fakeResetter struct {
	resetDays []int
	err       error
}

func (f *fakeResetter) ResetDaily(_ context.Context, day int) error {
	if f.err != nil {
		return f.err
	}
	f.resetDays = append(f.resetDays, day)
	return nil
}

type GameClockTestSuite struct {
	suite.Suite
	ctx      context.Context
	bus      rpgevents.EventBus
	resetter *fakeResetter
	svc      gameclock.Service

	daysStarted     []int
	daylightChanges []bool
}

func TestGameClockSuite(t *testing.T) {
	suite.Run(t, new(GameClockTestSuite))
}

func (s *GameClockTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = rpgevents.NewBus()
	s.resetter = &fakeResetter{}
	s.daysStarted = nil
	s.daylightChanges = nil

	s.bus.SubscribeFunc(gameclock.EventDayStarted, 0, func(_ context.Context, e rpgevents.Event) error {
		day, _ := e.Context().Get("day")
		s.daysStarted = append(s.daysStarted, day.(int))
		return nil
	})
	s.bus.SubscribeFunc(gameclock.EventDaylightChanged, 0, func(_ context.Context, e rpgevents.Event) error {
		daytime, _ := e.Context().Get("daytime")
		s.daylightChanges = append(s.daylightChanges, daytime.(bool))
		return nil
	})

	svc, err := gameclock.NewOrchestrator(&gameclock.Config{
		EventBus: s.bus,
		Resetter: s.resetter,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *GameClockTestSuite) TestStartsAtNightOfDayOne() {
	now := s.svc.Now(s.ctx)
	s.Assert().Equal(1, now.Day)
	s.Assert().Zero(now.MinuteOfDay)
	s.Assert().False(now.Daytime)
}

func (s *GameClockTestSuite) TestAdvanceIntoDaylight() {
	out, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 360})
	s.Require().NoError(err)

	s.Assert().Equal(1, out.Day)
	s.Assert().True(out.Daytime)
	s.Assert().True(out.DaylightChanged)
	s.Assert().Zero(out.DaysCrossed)
	s.Assert().Equal([]bool{true}, s.daylightChanges)
	s.Assert().Empty(s.resetter.resetDays)
}

func (s *GameClockTestSuite) TestNightfallAtWindowEnd() {
	_, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 1079})
	s.Require().NoError(err)
	_, err = s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 1})
	s.Require().NoError(err)

	now := s.svc.Now(s.ctx)
	s.Assert().False(now.Daytime, "minute 1080 is night")
	s.Assert().Equal([]bool{true, false}, s.daylightChanges)
}

func (s *GameClockTestSuite) TestDayRolloverRunsResetOnce() {
	out, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 1440})
	s.Require().NoError(err)

	s.Assert().Equal(2, out.Day)
	s.Assert().Equal(1, out.DaysCrossed)
	s.Assert().Equal([]int{2}, s.resetter.resetDays)
	s.Assert().Equal([]int{2}, s.daysStarted)
}

func (s *GameClockTestSuite) TestDayRolloverFromMidDayOffset() {
	_, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 500})
	s.Require().NoError(err)
	s.Require().Empty(s.resetter.resetDays)

	out, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: gameclock.MinutesPerDay})
	s.Require().NoError(err)

	s.Assert().Equal(2, out.Day)
	s.Assert().Equal(1, out.DaysCrossed)
	s.Assert().Equal([]int{2}, s.resetter.resetDays)

	now := s.svc.Now(s.ctx)
	s.Assert().Equal(500, now.MinuteOfDay)
}

func (s *GameClockTestSuite) TestMultiDayAdvanceResetsEachDay() {
	out, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 3 * 1440})
	s.Require().NoError(err)

	s.Assert().Equal(4, out.Day)
	s.Assert().Equal(3, out.DaysCrossed)
	s.Assert().Equal([]int{2, 3, 4}, s.resetter.resetDays)
}

func (s *GameClockTestSuite) TestResetFailurePropagates() {
	s.resetter.err = errors.Internal("reset blew up")

	_, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 1440})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "daily reset")
}

func (s *GameClockTestSuite) TestAdvanceRejectsNonPositiveMinutes() {
	_, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 0})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *GameClockTestSuite) TestSnapshotRestore() {
	_, err := s.svc.Advance(s.ctx, &gameclock.AdvanceInput{Minutes: 2000})
	s.Require().NoError(err)
	minutes := s.svc.Snapshot(s.ctx)
	s.Assert().Equal(2000, minutes)

	restored, err := gameclock.NewOrchestrator(&gameclock.Config{
		EventBus: rpgevents.NewBus(),
		Resetter: &fakeResetter{},
	})
	s.Require().NoError(err)
	s.Require().NoError(restored.Restore(s.ctx, minutes))

	now := restored.Now(s.ctx)
	s.Assert().Equal(2, now.Day)
	s.Assert().Equal(560, now.MinuteOfDay)
	s.Assert().True(now.Daytime)

	s.Assert().Error(restored.Restore(s.ctx, -1))
}
