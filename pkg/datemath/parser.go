// Package datemath extracts a single natural-language date expression from a
// task title and resolves it to an absolute time.
package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser turns free-form task titles into a cleaned title and a due date.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	location *time.Location
	days     DayIntervalCalculator
	hours    NearestHourCalculator
	matchers []matcher
}

// Option configures a Parser.
type Option func(*Parser)

// WithDayInterval replaces the calculator used for relative-day keywords.
func WithDayInterval(c DayIntervalCalculator) Option {
	return func(p *Parser) {
		if c != nil {
			p.days = c
		}
	}
}

// WithNearestHour replaces the calculator used to default the hour of day.
func WithNearestHour(c NearestHourCalculator) Option {
	return func(p *Parser) {
		if c != nil {
			p.hours = c
		}
	}
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	p := &Parser{
		location: loc,
		days:     DefaultDayInterval{},
		hours:    DefaultSlotHours,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.matchers = p.cascade()
	return p, nil
}

// Location returns the location results are expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// cascade lists every matcher in priority order. The first one to resolve a
// date wins.
func (p *Parser) cascade() []matcher {
	ms := make([]matcher, 0, len(keywords)+4)
	for _, kw := range keywords {
		ms = append(ms, p.keywordMatcher(kw))
	}

	return append(ms,
		matcherFunc(matchWeekday),
		matcherFunc(matchDayOfMonth),
		matcherFunc(matchRelative),
		matcherFunc(matchExplicitDate),
	)
}

// Parse extracts the first date expression found in text. now is the
// reference instant and is converted into the parser's location.
func (p *Parser) Parse(text string, now time.Time) Result {
	now = now.In(p.location).Truncate(time.Second)

	for _, m := range p.matchers {
		found := m.match(text, now)
		if found.ok() {
			return applyTimeOfDay(text, *found.date, found.text)
		}
	}

	return Result{Text: text}
}

// applyTimeOfDay strips the matched expression from text and refines the
// clock time from a trailing "at 14:00" style suffix when there is one.
func applyTimeOfDay(text string, date time.Time, matchedText string) Result {
	text = RemoveAll(text, strings.TrimSpace(matchedText))

	suffix, ok := findTimeOfDay(text)
	if !ok {
		return Result{Text: text, Date: &date}
	}

	date = time.Date(date.Year(), date.Month(), date.Day(), suffix.hour, suffix.minute, 0, 0, date.Location())
	return Result{
		Text: RemoveAll(text, suffix.text),
		Date: &date,
	}
}
