package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"task-quick-add/internal/model"
	"task-quick-add/internal/task"
)

// now returns the injected reference instant, or the clock when it is zero.
func (uc *implUseCase) now(injected time.Time) time.Time {
	if !injected.IsZero() {
		return injected
	}
	return uc.clock()
}

func validateTitle(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", task.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > task.MaxTitleLength {
		return "", task.ErrTitleTooLong
	}
	return title, nil
}

// cleanTitle collapses the gaps left by removed date expressions. A title
// that was nothing but a date keeps its original text.
func cleanTitle(residual, original string) string {
	cleaned := strings.Join(strings.Fields(residual), " ")
	if cleaned == "" {
		return strings.TrimSpace(original)
	}
	return cleaned
}

func buildEventDescription(t model.Task) string {
	return fmt.Sprintf("Created from quick add: %q\nTask ID: %s", t.RawTitle, t.ID)
}
