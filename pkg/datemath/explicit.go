package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	fullDateRegex = regexp.MustCompile(`(?:^| )([0-9]{1,2}/[0-9]{1,2}/[0-9]{2}(?:[0-9]{2})?|[0-9]{4}/[0-9]{1,2}/[0-9]{1,2}|[0-9]{4}-[0-9]{1,2}-[0-9]{1,2})`)
	monthDayRegex = regexp.MustCompile(`(?i)(?:^| )(` + monthPattern + ` ([0-9]{1,2})|([0-9]{1,2}) ` + monthPattern + `)\b`)
	dayMonthRegex = regexp.MustCompile(`(?:^| )([0-9]{1,2})/([0-9]{1,2})`)
)

// matchExplicitDate recognizes written-out dates. Full numeric dates are
// tried first, then "jan 21" / "21 jan", then a bare "27/01".
func matchExplicitDate(text string, now time.Time) match {
	if m := matchFullDate(text, now); m.ok() {
		return m
	}
	if m := matchMonthName(text, now); m.ok() {
		return m
	}
	return matchDayMonth(text, now)
}

// matchFullDate handles 06/24/2021, 06/24/21, 2021/06/24 and 2021-06-24.
// Slash dates with the year last are read month first; when that is not a
// valid date the first two parts are swapped.
func matchFullDate(text string, now time.Time) match {
	loc := fullDateRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return noMatch()
	}

	found := text[loc[2]:loc[3]]
	candidates := []string{found}
	if parts := strings.Split(found, "/"); len(parts) == 3 && len(parts[0]) <= 2 {
		candidates = append(candidates, parts[1]+"/"+parts[0]+"/"+parts[2])
	}

	date, ok := firstValidDate(candidates, now.Location())
	if !ok {
		return noMatch()
	}
	return matched(found, date)
}

// matchMonthName handles "jan 21" and "21 january". The year is not written,
// so a date already behind now moves to next year.
func matchMonthName(text string, now time.Time) match {
	sub := monthDayRegex.FindStringSubmatch(text)
	if sub == nil {
		return noMatch()
	}

	name, dayText := sub[2], sub[3]
	if name == "" {
		name, dayText = sub[5], sub[4]
	}

	month, ok := monthFromName(name)
	if !ok {
		return noMatch()
	}
	day, err := strconv.Atoi(dayText)
	if err != nil || day < 1 || day > daysIn(now.Year(), month, now.Location()) {
		return noMatch()
	}

	date := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if date.Before(now) {
		date = time.Date(date.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}

	return matched(sub[1], date)
}

// matchDayMonth handles "27/01" and "01/27" without a year. Candidates are
// tried in order and the first valid calendar date wins. Unlike
// matchMonthName, a past date is not moved to next year.
func matchDayMonth(text string, now time.Time) match {
	sub := dayMonthRegex.FindStringSubmatch(text)
	if sub == nil {
		return noMatch()
	}

	found, first, second := sub[0], sub[1], sub[2]
	found = strings.TrimLeft(found, " ")
	year := now.Year()

	candidates := []string{
		fmt.Sprintf("%d/%s/%s", year, first, second),
		fmt.Sprintf("%s/%s/%d", first, second, year),
		fmt.Sprintf("%s/%s/%d", second, first, year),
	}

	date, ok := firstValidDate(candidates, now.Location())
	if !ok {
		return noMatch()
	}
	return matched(found, date)
}

// firstValidDate parses each candidate and returns the first one that is a
// real calendar date.
func firstValidDate(candidates []string, loc *time.Location) (time.Time, bool) {
	for _, c := range candidates {
		t, err := dateparse.ParseIn(c, loc)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}
