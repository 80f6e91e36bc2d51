package model

import "errors"

var (
	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("item not found")
	// ErrTemplateNotFound is returned for an unknown template id.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrBadMinute is returned for a schedule minute outside 0..59.
	ErrBadMinute = errors.New("minute out of range")
	// ErrInvalidItem is returned when item fields fail validation.
	ErrInvalidItem = errors.New("invalid item")
)
