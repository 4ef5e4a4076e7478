package datemath_test

import (
	"strconv"
	"testing"
	"time"

	"task-quick-add/pkg/datemath"
)

// Wednesday, May 1, 2024
var baseTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newUTCParser(t *testing.T, opts ...datemath.Option) *datemath.Parser {
	t.Helper()
	parser, err := datemath.NewParser("UTC", opts...)
	if err != nil {
		t.Fatalf("unexpected error creating parser: %v", err)
	}
	return parser
}

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser := newUTCParser(t)

	tests := []struct {
		name     string
		text     string
		now      time.Time
		wantText string
		want     time.Time
	}{
		// Keywords
		{
			name:     "Today",
			text:     "Buy milk today",
			wantText: "Buy milk ",
			want:     time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Today capitalized",
			text:     "Buy milk Today",
			wantText: "Buy milk ",
			want:     time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Tomorrow",
			text:     "Buy milk tomorrow",
			wantText: "Buy milk ",
			want:     time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Next monday",
			text:     "Call next monday",
			wantText: "Call ",
			want:     time.Date(2024, 5, 6, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "This weekend",
			text:     "Clean garage this weekend",
			wantText: "Clean garage ",
			want:     time.Date(2024, 5, 4, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Later this week",
			text:     "Review PR later this week",
			wantText: "Review PR ",
			want:     time.Date(2024, 5, 3, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Later next week",
			text:     "Review PR later next week",
			wantText: "Review PR ",
			want:     time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Next week",
			text:     "Plan sprint next week",
			wantText: "Plan sprint ",
			want:     time.Date(2024, 5, 8, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Next month",
			text:     "Pay invoice next month",
			wantText: "Pay invoice ",
			want:     time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "End of month",
			text:     "Close books end of month",
			wantText: "Close books ",
			want:     time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Keyword priority beats position",
			text:     "tomorrow or today",
			wantText: "tomorrow or ",
			want:     time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Repeated keyword is removed everywhere",
			text:     "today or today",
			wantText: " or ",
			want:     time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Keyword with time suffix",
			text:     "Buy milk today at 17:30",
			wantText: "Buy milk ",
			want:     time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC),
		},
		{
			name:     "Next monday with hour only",
			text:     "Standup next monday at 9",
			wantText: "Standup ",
			want:     time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC),
		},

		// Weekdays
		{
			name:     "Weekday with time suffix",
			text:     "Meet on monday at 14:00",
			wantText: "Meet on ",
			want:     time.Date(2024, 5, 6, 14, 0, 0, 0, time.UTC),
		},
		{
			name:     "Weekday is today",
			text:     "Meet on wednesday",
			wantText: "Meet on ",
			want:     baseTime,
		},
		{
			name:     "Abbreviated weekday",
			text:     "Party fri",
			wantText: "Party ",
			want:     time.Date(2024, 5, 3, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "Next prefix does not add a week",
			text:     "Party next fri",
			wantText: "Party ",
			want:     time.Date(2024, 5, 3, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "Weekday in capitals",
			text:     "Gym Tuesday",
			wantText: "Gym ",
			want:     time.Date(2024, 5, 7, 15, 30, 0, 0, time.UTC),
		},

		// Day of month
		{
			name:     "Ordinal later this month",
			text:     "Call mom 21st",
			wantText: "Call mom ",
			want:     time.Date(2024, 5, 21, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "Ordinal already passed rolls to next month",
			text:     "Call mom 21st",
			now:      time.Date(2024, 5, 25, 10, 0, 0, 0, time.UTC),
			wantText: "Call mom ",
			want:     time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "Ordinal 31st in a 30 day month",
			text:     "Report 31st",
			now:      time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC),
			wantText: "Report ",
			want:     time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "Ordinal 30th skips february",
			text:     "Report 30th",
			now:      time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
			wantText: "Report ",
			want:     time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "Ordinal is today",
			text:     "Report 1st",
			wantText: "Report ",
			want:     baseTime,
		},
		{
			name:     "Day with trailing period",
			text:     "Submit report by 5.",
			wantText: "Submit report by ",
			want:     time.Date(2024, 5, 5, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "Ordinal with month name keeps the year",
			text:     "Pay rent 21st jan",
			wantText: "Pay rent  jan",
			want:     time.Date(2024, 1, 21, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "Month name before ordinal",
			text:     "Pay rent june the 3rd",
			wantText: "Pay rent june the ",
			want:     time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC),
		},

		// Relative offsets
		{
			name:     "In days",
			text:     "Renew in 3 days",
			wantText: "Renew ",
			want:     time.Date(2024, 5, 4, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "In one day",
			text:     "Renew in 1 day",
			wantText: "Renew ",
			want:     time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "In weeks",
			text:     "Renew in 2 weeks",
			wantText: "Renew ",
			want:     time.Date(2024, 5, 15, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "In months",
			text:     "Renew in 1 month",
			wantText: "Renew ",
			want:     time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC),
		},
		{
			name:     "In months overflows short month",
			text:     "Renew in 1 month",
			now:      time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC),
			wantText: "Renew ",
			want:     time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "In hours crossing midnight",
			text:     "Check oven in 10 hours",
			wantText: "Check oven ",
			want:     time.Date(2024, 5, 2, 1, 30, 0, 0, time.UTC),
		},

		// Explicit dates
		{
			name:     "ISO date",
			text:     "Release 2021-06-24",
			wantText: "Release ",
			want:     time.Date(2021, 6, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "ISO date with time",
			text:     "Release 2021-06-24 at 10:15",
			wantText: "Release ",
			want:     time.Date(2021, 6, 24, 10, 15, 0, 0, time.UTC),
		},
		{
			name:     "Year first with slashes",
			text:     "Release 2021/06/24",
			wantText: "Release ",
			want:     time.Date(2021, 6, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Month first with year",
			text:     "Release 06/24/2021",
			wantText: "Release ",
			want:     time.Date(2021, 6, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Day first with year",
			text:     "Release 24/06/2021",
			wantText: "Release ",
			want:     time.Date(2021, 6, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Month name then day",
			text:     "Dentist jun 21",
			wantText: "Dentist ",
			want:     time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Day then full month name",
			text:     "Dentist 21 june",
			wantText: "Dentist ",
			want:     time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Past month name rolls to next year",
			text:     "Dentist jan 21",
			wantText: "Dentist ",
			want:     time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Day month without year read year first",
			text:     "Pay 05/06",
			wantText: "Pay ",
			want:     time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Day month without year swapped",
			text:     "Pay 27/01",
			wantText: "Pay ",
			want:     time.Date(2024, 1, 27, 0, 0, 0, 0, time.UTC),
		},

		// Time of day
		{
			name:     "Pm adds twelve hours",
			text:     "Meeting tomorrow at 3pm",
			wantText: "Meeting ",
			want:     time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "Uppercase PM with space",
			text:     "Meeting tomorrow at 3 PM",
			wantText: "Meeting ",
			want:     time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "At sign with minutes and am",
			text:     "Meeting tomorrow @ 9:15am",
			wantText: "Meeting ",
			want:     time.Date(2024, 5, 2, 9, 15, 0, 0, time.UTC),
		},
		{
			name:     "12pm is read as hour 24",
			text:     "Lunch tomorrow at 12pm",
			wantText: "Lunch ",
			want:     time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			if now.IsZero() {
				now = baseTime
			}

			got := parser.Parse(tt.text, now)
			if !got.Found() {
				t.Fatalf("Parse(%q) found no date", tt.text)
			}
			if got.Text != tt.wantText {
				t.Errorf("Parse(%q) text = %q, want %q", tt.text, got.Text, tt.wantText)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Parse(%q) date = %v, want %v", tt.text, *got.Date, tt.want)
			}
		})
	}
}

func TestParseNoDate(t *testing.T) {
	parser := newUTCParser(t)

	tests := []string{
		"no date here",
		"",
		"monthly report",
		"Within 3 days",
		"Invoice 02/30/2021",
		"Dentist feb 30",
		"Look at the market",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got := parser.Parse(text, baseTime)
			if got.Found() {
				t.Fatalf("Parse(%q) unexpectedly found %v", text, *got.Date)
			}
			if got.Text != text {
				t.Errorf("Parse(%q) text = %q, want input unchanged", text, got.Text)
			}
		})
	}
}

func TestParseResidualHasNoDate(t *testing.T) {
	parser := newUTCParser(t)

	tests := []string{
		"Buy milk today",
		"Meet on monday at 14:00",
		"Renew in 3 days",
		"Call mom 21st",
		"Release 24/06/2021",
		"Dentist 21 june",
		"Pay rent 21st jan",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			first := parser.Parse(text, baseTime)
			if !first.Found() {
				t.Fatalf("Parse(%q) found no date", text)
			}
			second := parser.Parse(first.Text, baseTime)
			if second.Found() {
				t.Errorf("Parse(%q) found %v in residual text", first.Text, *second.Date)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	parser := newUTCParser(t)
	text := "Meet on friday at 9:30am"

	first := parser.Parse(text, baseTime)
	second := parser.Parse(text, baseTime)
	if first.Text != second.Text || !first.Date.Equal(*second.Date) {
		t.Errorf("Parse is not deterministic: %+v vs %+v", first, second)
	}
}

func TestParseWeekdayProperty(t *testing.T) {
	parser := newUTCParser(t)
	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"saturday":  time.Saturday,
	}

	for offset := 0; offset < 7; offset++ {
		now := baseTime.AddDate(0, 0, offset)
		for name, weekday := range names {
			got := parser.Parse("Water plants "+name, now)
			if !got.Found() {
				t.Fatalf("%s from %s: no date", name, now.Weekday())
			}
			if got.Date.Weekday() != weekday {
				t.Errorf("%s from %s: got weekday %s", name, now.Weekday(), got.Date.Weekday())
			}
			if got.Date.Before(now) || got.Date.Sub(now) > 6*24*time.Hour {
				t.Errorf("%s from %s: date %v is not within a week", name, now.Weekday(), *got.Date)
			}
		}
	}
}

func TestParseDayOfMonthProperty(t *testing.T) {
	parser := newUTCParser(t)
	nows := []time.Time{
		baseTime,
		time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 28, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 6, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 30, 18, 45, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	suffixes := []string{"st", "nd", "rd", "th", "."}

	for _, now := range nows {
		for day := 1; day <= 31; day++ {
			text := "Standup " + strconv.Itoa(day) + suffixes[day%len(suffixes)]
			got := parser.Parse(text, now)
			if !got.Found() {
				t.Fatalf("Parse(%q) at %v: no date", text, now)
			}
			if got.Date.Day() != day {
				t.Errorf("Parse(%q) at %v: day = %d", text, now, got.Date.Day())
			}
			if got.Date.Before(now) {
				t.Errorf("Parse(%q) at %v: %v is in the past", text, now, *got.Date)
			}
		}
	}
}

func TestParseConvertsNowToLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 20:00 UTC is already 03:00 the next day in Ho Chi Minh City.
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	got := parser.Parse("Buy milk today", now)
	if !got.Found() {
		t.Fatalf("expected a date")
	}

	want := time.Date(2024, 5, 2, 9, 0, 0, 0, parser.Location())
	if !got.Date.Equal(want) {
		t.Errorf("got %v, want %v", *got.Date, want)
	}
	if got.Date.Location() != parser.Location() {
		t.Errorf("got location %v, want %v", got.Date.Location(), parser.Location())
	}
}

type fixedDays int

func (f fixedDays) DaysUntil(datemath.Interval, time.Time) int { return int(f) }

type fixedHour int

func (f fixedHour) NearestHour(time.Time) int { return int(f) }

func TestParseWithCustomCalculators(t *testing.T) {
	parser := newUTCParser(t,
		datemath.WithDayInterval(fixedDays(3)),
		datemath.WithNearestHour(fixedHour(7)),
	)

	got := parser.Parse("Buy milk today", baseTime)
	want := time.Date(2024, 5, 4, 7, 0, 0, 0, time.UTC)
	if !got.Found() || !got.Date.Equal(want) {
		t.Errorf("got %+v, want %v", got, want)
	}

	got = parser.Parse("Close books end of month", baseTime)
	want = time.Date(2024, 5, 31, 7, 0, 0, 0, time.UTC)
	if !got.Found() || !got.Date.Equal(want) {
		t.Errorf("got %+v, want %v", got, want)
	}
}
