package datemath

import "time"

// Result is the outcome of extracting a date expression from a text.
type Result struct {
	// Text is the input with the matched expression (and its time suffix) removed.
	Text string
	// Date is nil when no expression was recognized.
	Date *time.Time
}

// Found reports whether a date expression was recognized.
func (r Result) Found() bool {
	return r.Date != nil
}

// match is what a single matcher recognized. text is an exact substring of
// the text the matcher searched.
type match struct {
	text string
	date *time.Time
}

func (m match) ok() bool {
	return m.date != nil
}

func noMatch() match {
	return match{}
}

func matched(text string, date time.Time) match {
	return match{text: text, date: &date}
}

// matcher recognizes one category of date expression.
type matcher interface {
	match(text string, now time.Time) match
}

type matcherFunc func(text string, now time.Time) match

func (f matcherFunc) match(text string, now time.Time) match {
	return f(text, now)
}
