package note

import "errors"

var (
	ErrNotFound    = errors.New("note not found")
	ErrForbidden   = errors.New("note belongs to another user")
	ErrInvalidData = errors.New("invalid note data")
	ErrTooManyTags = errors.New("tags array must not exceed 9 items")
)
