package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse extracts the due date from a title without creating anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// QuickAdd creates a task from a free-form title, using any date in the
	// title as its due date and optionally scheduling it in Google Calendar.
	QuickAdd(ctx context.Context, input QuickAddInput) (QuickAddOutput, error)
}
