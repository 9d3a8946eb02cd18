package calc

import "errors"

var (
	ErrInvalidAmount    = errors.New("amounts must not be negative")
	ErrUnknownFrequency = errors.New("the specified frequency is not a valid recurrence")
	ErrInvalidSnapshot  = errors.New("the budget snapshot must not be nil")
)
