package game

import "errors"

var (
	// ErrInvalidInput reports troop or trial counts a battle cannot start from.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateResult reports a statistic that is undefined for the sample, such as a loss ratio with no defender losses.
	ErrDegenerateResult = errors.New("degenerate result")
)
