package datemath

import (
	"regexp"
	"strings"
	"time"
)

// A "next " prefix is accepted but does not push the date a week further.
var weekdayRegex = regexp.MustCompile(`(?i)(?:^| )((?:next )?(monday|mon|tuesday|tue|wednesday|wed|thursday|thu|friday|fri|saturday|sat|sunday|sun))(?:$| )`)

var weekdays = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// matchWeekday resolves a weekday name to its next occurrence, today included.
func matchWeekday(text string, now time.Time) match {
	loc := weekdayRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return noMatch()
	}

	name := strings.ToLower(text[loc[4]:loc[5]])
	target, ok := weekdays[name[:3]]
	if !ok {
		return noMatch()
	}

	distance := (int(target) + 7 - int(now.Weekday())) % 7
	return matched(text[loc[2]:loc[3]], now.AddDate(0, 0, distance))
}
