package usecase

import (
	"context"
	"time"

	"task-quick-add/pkg/datemath"
	"task-quick-add/pkg/gcalendar"
	pkgLog "task-quick-add/pkg/log"
)

// DateParser extracts a due date from a title.
type DateParser interface {
	Parse(text string, now time.Time) datemath.Result
	Location() *time.Location
}

// Calendar is the subset of the Google Calendar client used for syncing.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l             pkgLog.Logger
	dateParser    DateParser
	calendar      Calendar
	calendarID    string
	eventDuration time.Duration
	clock         func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil when Google
// Calendar is not configured.
func New(
	l pkgLog.Logger,
	dateParser DateParser,
	calendar Calendar,
	calendarID string,
	eventDuration time.Duration,
) *implUseCase {
	return &implUseCase{
		l:             l,
		dateParser:    dateParser,
		calendar:      calendar,
		calendarID:    calendarID,
		eventDuration: eventDuration,
		clock:         time.Now,
	}
}
