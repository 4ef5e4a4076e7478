package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

// The suffix keeps its leading space so removing it leaves no double blank.
var timeOfDayRegex = regexp.MustCompile(`(?i) (?:at|@) ([0-9][0-9]?)(?::([0-9][0-9]?))?(?: ?([ap]m))?`)

type timeOfDay struct {
	text   string
	hour   int
	minute int
}

// findTimeOfDay looks for " at 14:00", " @ 3pm" and similar. "pm" adds twelve
// hours as written, so "12pm" yields hour 24 and rolls into the next day.
func findTimeOfDay(text string) (timeOfDay, bool) {
	sub := timeOfDayRegex.FindStringSubmatch(text)
	if sub == nil {
		return timeOfDay{}, false
	}

	hour, err := strconv.Atoi(sub[1])
	if err != nil {
		return timeOfDay{}, false
	}
	if strings.EqualFold(sub[3], "pm") {
		hour += 12
	}

	minute := 0
	if sub[2] != "" {
		if minute, err = strconv.Atoi(sub[2]); err != nil {
			return timeOfDay{}, false
		}
	}

	return timeOfDay{text: sub[0], hour: hour, minute: minute}, true
}
