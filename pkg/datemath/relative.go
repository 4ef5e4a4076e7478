package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeRegex = regexp.MustCompile(`(?i)(?:^| )(in ([0-9]{1,6}) (hours?|days?|weeks?|months?))\b`)

// matchRelative resolves "in 3 days" style offsets from now. Month offsets
// use calendar addition, so Jan 31 + 1 month lands in early March.
func matchRelative(text string, now time.Time) match {
	loc := relativeRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return noMatch()
	}

	amount, err := strconv.Atoi(text[loc[4]:loc[5]])
	if err != nil {
		return noMatch()
	}

	var date time.Time
	unit := strings.ToLower(text[loc[6]:loc[7]])
	switch {
	case strings.HasPrefix(unit, "hour"):
		date = time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+amount, now.Minute(), now.Second(), 0, now.Location())
	case strings.HasPrefix(unit, "day"):
		date = now.AddDate(0, 0, amount)
	case strings.HasPrefix(unit, "week"):
		date = now.AddDate(0, 0, amount*7)
	case strings.HasPrefix(unit, "month"):
		date = now.AddDate(0, amount, 0)
	default:
		return noMatch()
	}

	return matched(text[loc[2]:loc[3]], date)
}
