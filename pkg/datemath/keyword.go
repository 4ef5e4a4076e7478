package datemath

import (
	"regexp"
	"time"
)

type keyword struct {
	phrase  string
	re      *regexp.Regexp
	resolve func(p *Parser, now time.Time) time.Time
}

func newKeyword(phrase string, resolve func(p *Parser, now time.Time) time.Time) keyword {
	return keyword{
		phrase:  phrase,
		re:      regexp.MustCompile(`(?i)(?:^| )(` + regexp.QuoteMeta(phrase) + `)`),
		resolve: resolve,
	}
}

func intervalKeyword(phrase string, interval Interval) keyword {
	return newKeyword(phrase, func(p *Parser, now time.Time) time.Time {
		return p.fromInterval(interval, now)
	})
}

// keywords are tested in this order; "next monday" must win over "next week".
var keywords = []keyword{
	intervalKeyword("today", IntervalToday),
	intervalKeyword("tomorrow", IntervalTomorrow),
	intervalKeyword("next monday", IntervalNextMonday),
	intervalKeyword("this weekend", IntervalThisWeekend),
	intervalKeyword("later this week", IntervalLaterThisWeek),
	intervalKeyword("later next week", IntervalLaterNextWeek),
	intervalKeyword("next week", IntervalNextWeek),
	newKeyword("next month", (*Parser).firstOfNextMonth),
	newKeyword("end of month", (*Parser).endOfMonth),
}

func (p *Parser) keywordMatcher(kw keyword) matcher {
	return matcherFunc(func(text string, now time.Time) match {
		loc := kw.re.FindStringSubmatchIndex(text)
		if loc == nil {
			return noMatch()
		}
		return matched(text[loc[2]:loc[3]], kw.resolve(p, now))
	})
}

// fromInterval resolves a relative-day interval at the default hour.
func (p *Parser) fromInterval(interval Interval, now time.Time) time.Time {
	return p.atNearestHour(now.AddDate(0, 0, p.days.DaysUntil(interval, now)))
}

func (p *Parser) firstOfNextMonth(now time.Time) time.Time {
	first := time.Date(now.Year(), now.Month()+1, 1, now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	return p.atNearestHour(first)
}

// endOfMonth uses day 0 of the following month, which normalizes to the last
// day of the current one.
func (p *Parser) endOfMonth(now time.Time) time.Time {
	last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
	return p.atNearestHour(last)
}

func (p *Parser) atNearestHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), p.hours.NearestHour(t), 0, 0, 0, t.Location())
}
