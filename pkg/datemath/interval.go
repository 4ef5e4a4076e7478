package datemath

import "time"

// Interval is a symbolic relative-day label such as "tomorrow" or "nextWeek".
type Interval string

const (
	IntervalToday         Interval = "today"
	IntervalTomorrow      Interval = "tomorrow"
	IntervalNextMonday    Interval = "nextMonday"
	IntervalThisWeekend   Interval = "thisWeekend"
	IntervalLaterThisWeek Interval = "laterThisWeek"
	IntervalLaterNextWeek Interval = "laterNextWeek"
	IntervalNextWeek      Interval = "nextWeek"
)

// DayIntervalCalculator maps an Interval to a number of days from now.
type DayIntervalCalculator interface {
	DaysUntil(interval Interval, now time.Time) int
}

// NearestHourCalculator picks the hour of day used when a date carries no
// explicit clock time.
type NearestHourCalculator interface {
	NearestHour(t time.Time) int
}

// DefaultDayInterval is the built-in DayIntervalCalculator.
type DefaultDayInterval struct{}

// DaysUntil implements DayIntervalCalculator.
func (d DefaultDayInterval) DaysUntil(interval Interval, now time.Time) int {
	weekday := now.Weekday()

	switch interval {
	case IntervalToday:
		return 0
	case IntervalTomorrow:
		return 1
	case IntervalNextMonday:
		days := (int(time.Monday) + 7 - int(weekday)) % 7
		if days == 0 {
			days = 7
		}
		return days
	case IntervalThisWeekend:
		return (int(time.Saturday) + 7 - int(weekday)) % 7
	case IntervalLaterThisWeek:
		if weekday == time.Friday || weekday == time.Saturday || weekday == time.Sunday {
			return 0
		}
		return 2
	case IntervalLaterNextWeek:
		return d.DaysUntil(IntervalLaterThisWeek, now) + 7
	case IntervalNextWeek:
		return 7
	}

	return 0
}

// SlotHours is a NearestHourCalculator over an ascending list of hour slots.
// Hours before the first slot or after the last one wrap to the first slot.
type SlotHours []int

// DefaultSlotHours are used when no slots are configured.
var DefaultSlotHours = SlotHours{9, 12, 15, 18, 21}

// NearestHour implements NearestHourCalculator.
func (s SlotHours) NearestHour(t time.Time) int {
	if len(s) == 0 {
		return t.Hour()
	}

	hour := t.Hour()
	if hour <= s[0] || hour > s[len(s)-1] {
		return s[0]
	}

	for _, slot := range s {
		if hour <= slot {
			return slot
		}
	}

	return s[0]
}
