package model

import "time"

// Task is a task created from a quick-add title.
type Task struct {
	ID           string
	Title        string     // Title with the date expression removed
	RawTitle     string     // Title exactly as the user typed it
	DueDate      *time.Time // nil when the title carried no date
	CalendarID   string     // Google Calendar event ID (may be empty)
	CalendarLink string     // Deep link to the Google Calendar event (may be empty)
	CreatedAt    time.Time
}

// HasDueDate reports whether a due date was extracted from the title.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}
