package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle   = errors.New("title is empty")
	ErrTitleTooLong = errors.New("title is too long")
	ErrInvalidNow   = errors.New("now must be an RFC3339 timestamp")
)

// MaxTitleLength is the longest title accepted, in runes.
const MaxTitleLength = 250
