package task

import (
	"time"

	"task-quick-add/internal/model"
)

// ParseInput is the input for a dry-run parse.
type ParseInput struct {
	Title string
	Now   time.Time // reference instant; zero means the current time
}

// ParseOutput is the result of a dry-run parse.
type ParseOutput struct {
	Text    string     // residual text exactly as the parser left it
	Title   string     // residual text with whitespace collapsed
	DueDate *time.Time // nil when no date expression was found
}

// QuickAddInput is the input for quick-add task creation.
type QuickAddInput struct {
	Title        string
	Now          time.Time // reference instant; zero means the current time
	SyncCalendar bool      // also create a Google Calendar event for the due date
}

// Conflict is an existing calendar event overlapping the new task's slot.
type Conflict struct {
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	Link      string
}

// QuickAddOutput is the result of the quick-add operation.
type QuickAddOutput struct {
	Task      model.Task
	Conflicts []Conflict
}
