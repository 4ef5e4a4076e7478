package datemath

import (
	"regexp"
	"strconv"
	"time"
)

var dayOfMonthRegex = regexp.MustCompile(`(?i)(?:^| )(([12][0-9]|3[01]|0?[1-9])(?:st|nd|rd|th|\.))(?:$| )`)

// matchDayOfMonth resolves "21st", "3rd" or "5." to the next date with that
// day of month. A month name elsewhere in the text overrides the month.
func matchDayOfMonth(text string, now time.Time) match {
	loc := dayOfMonthRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return noMatch()
	}

	day, err := strconv.Atoi(text[loc[4]:loc[5]])
	if err != nil {
		return noMatch()
	}

	date := withDay(now, day)
	for date.Before(now) {
		date = date.AddDate(0, 1, 0)
	}

	// Setting a day the month does not have rolls into the next month
	// (31 in April gives May 1st). Put the day back on the month we landed in.
	if date.Day() != day {
		date = withDay(date, day)
	}

	if month, ok := findMonth(text); ok {
		date = time.Date(date.Year(), month, date.Day(), date.Hour(), date.Minute(), date.Second(), 0, date.Location())
	}

	return matched(text[loc[2]:loc[3]], date)
}

func withDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}
