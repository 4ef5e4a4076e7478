package http

import (
	"fmt"
	"time"

	"task-quick-add/internal/task"
	"task-quick-add/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Title string `json:"title" example:"Buy milk tomorrow at 5pm"`
	Now   string `json:"now"   example:"2024-05-01T15:30:00Z"`
}

func (r parseReq) validate() error {
	_, err := parseNow(r.Now)
	return err
}

func (r parseReq) toInput() task.ParseInput {
	now, _ := parseNow(r.Now)
	return task.ParseInput{
		Title: r.Title,
		Now:   now,
	}
}

// ---

type quickAddReq struct {
	Title        string `json:"title"         example:"Pay rent 1st"`
	Now          string `json:"now"           example:"2024-05-01T15:30:00Z"`
	SyncCalendar bool   `json:"sync_calendar"`
}

func (r quickAddReq) validate() error {
	_, err := parseNow(r.Now)
	return err
}

func (r quickAddReq) toInput() task.QuickAddInput {
	now, _ := parseNow(r.Now)
	return task.QuickAddInput{
		Title:        r.Title,
		Now:          now,
		SyncCalendar: r.SyncCalendar,
	}
}

// parseNow reads the optional reference instant. Empty means "use the clock".
func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	now, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", task.ErrInvalidNow, err)
	}
	return now, nil
}

// --- Response DTOs ---

type parseResp struct {
	Text  string             `json:"text"`
	Title string             `json:"title"`
	Date  *response.DateTime `json:"date" swaggertype:"string"`
	Found bool               `json:"found"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{
		Text:  out.Text,
		Title: out.Title,
		Date:  response.NewDateTime(out.DueDate),
		Found: out.DueDate != nil,
	}
}

type conflictResp struct {
	Summary   string            `json:"summary"`
	StartTime response.DateTime `json:"start_time" swaggertype:"string"`
	EndTime   response.DateTime `json:"end_time"   swaggertype:"string"`
	Link      string            `json:"link,omitempty"`
}

type quickAddResp struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	RawTitle          string             `json:"raw_title"`
	DueDate           *response.DateTime `json:"due_date" swaggertype:"string"`
	CalendarEventID   string             `json:"calendar_event_id,omitempty"`
	CalendarEventLink string             `json:"calendar_event_link,omitempty"`
	Conflicts         []conflictResp     `json:"conflicts"`
	CreatedAt         response.DateTime  `json:"created_at" swaggertype:"string"`
}

func (h *handler) newQuickAddResp(out task.QuickAddOutput) quickAddResp {
	conflicts := make([]conflictResp, len(out.Conflicts))
	for i, c := range out.Conflicts {
		conflicts[i] = conflictResp{
			Summary:   c.Summary,
			StartTime: response.DateTime(c.StartTime),
			EndTime:   response.DateTime(c.EndTime),
			Link:      c.Link,
		}
	}

	return quickAddResp{
		ID:                out.Task.ID,
		Title:             out.Task.Title,
		RawTitle:          out.Task.RawTitle,
		DueDate:           response.NewDateTime(out.Task.DueDate),
		CalendarEventID:   out.Task.CalendarID,
		CalendarEventLink: out.Task.CalendarLink,
		Conflicts:         conflicts,
		CreatedAt:         response.DateTime(out.Task.CreatedAt),
	}
}
