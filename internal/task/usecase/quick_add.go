package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-quick-add/internal/model"
	"task-quick-add/internal/task"
	"task-quick-add/pkg/gcalendar"
)

// QuickAdd creates a task from a free-form title. Calendar failures are
// logged and never fail the task itself.
func (uc *implUseCase) QuickAdd(ctx context.Context, input task.QuickAddInput) (task.QuickAddOutput, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return task.QuickAddOutput{}, err
	}

	now := uc.now(input.Now)
	result := uc.dateParser.Parse(title, now)

	t := model.Task{
		ID:        uuid.NewString(),
		Title:     cleanTitle(result.Text, title),
		RawTitle:  input.Title,
		DueDate:   result.Date,
		CreatedAt: now,
	}

	if !t.HasDueDate() {
		uc.l.Infof(ctx, "uc.QuickAdd: task %s created without due date", t.ID)
		return task.QuickAddOutput{Task: t}, nil
	}
	uc.l.Infof(ctx, "uc.QuickAdd: task %s due %s", t.ID, t.DueDate.Format(time.RFC3339))

	if !input.SyncCalendar {
		return task.QuickAddOutput{Task: t}, nil
	}
	if uc.calendar == nil {
		uc.l.Warnf(ctx, "uc.QuickAdd: calendar sync requested for task %s but Google Calendar is not configured", t.ID)
		return task.QuickAddOutput{Task: t}, nil
	}

	conflicts := uc.findConflicts(ctx, *t.DueDate)
	if event := uc.scheduleEvent(ctx, t); event != nil {
		t.CalendarID = event.ID
		t.CalendarLink = event.HtmlLink
	}

	return task.QuickAddOutput{Task: t, Conflicts: conflicts}, nil
}

// findConflicts lists calendar events overlapping the slot the task will take.
func (uc *implUseCase) findConflicts(ctx context.Context, start time.Time) []task.Conflict {
	end := start.Add(uc.eventDuration)

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.findConflicts ListEvents: %v", err)
		return nil
	}

	var conflicts []task.Conflict
	for _, e := range events {
		if !e.Overlaps(start, end) {
			continue
		}
		conflicts = append(conflicts, task.Conflict{
			Summary:   e.Summary,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Link:      e.HtmlLink,
		})
	}
	return conflicts
}

func (uc *implUseCase) scheduleEvent(ctx context.Context, t model.Task) *gcalendar.Event {
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: buildEventDescription(t),
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(uc.eventDuration),
		Timezone:    uc.dateParser.Location().String(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.scheduleEvent CreateEvent: %v", err)
		return nil
	}

	uc.l.Infof(ctx, "uc.scheduleEvent: task %s scheduled as event %s", t.ID, event.ID)
	return event
}
