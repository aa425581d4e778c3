package gameclock

// Minutes per in-game day and the daylight window bounds
const (
	MinutesPerDay = 1440
	DaylightStart = 360
	DaylightEnd   = 1080
)

// Event types published on the bus
const (
	EventDayStarted      = "clock.day_started"
	EventDaylightChanged = "clock.daylight_changed"
)

// AdvanceInput moves game time forward
type AdvanceInput struct {
	Minutes int
}

// AdvanceOutput describes the time after the advance
type AdvanceOutput struct {
	TotalMinutes    int
	Day             int
	MinuteOfDay     int
	Daytime         bool
	DaysCrossed     int
	DaylightChanged bool
}

// TimeInfo is the current reading of the clock
type TimeInfo struct {
	TotalMinutes int
	Day          int
	MinuteOfDay  int
	Daytime      bool
}
