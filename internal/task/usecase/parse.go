package usecase

import (
	"context"

	"task-quick-add/internal/task"
)

// Parse runs the date parser on a title and reports what a quick add would do.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return task.ParseOutput{}, err
	}

	result := uc.dateParser.Parse(title, uc.now(input.Now))
	uc.l.Debugf(ctx, "uc.Parse: title=%q found=%t residual=%q", title, result.Found(), result.Text)

	return task.ParseOutput{
		Text:    result.Text,
		Title:   cleanTitle(result.Text, title),
		DueDate: result.Date,
	}, nil
}
