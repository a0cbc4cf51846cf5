package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the single failure kind of scoring: a missing or
	// out-of-range answer. It indicates a caller defect.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig reports static content (catalog or profile table)
	// that fails the startup checks.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InputReason says why an answer was rejected.
type InputReason string

const (
	ReasonMissing         InputReason = "missing"
	ReasonOutOfRange      InputReason = "out_of_range"
	ReasonNotInteger      InputReason = "not_integer"
	ReasonUnknownQuestion InputReason = "unknown_question"
)

// InvalidInputError names the offending question. Value is only
// meaningful for out_of_range and unknown_question.
type InvalidInputError struct {
	QuestionID int
	Value      int
	Reason     InputReason
}

func (e *InvalidInputError) Error() string {
	switch e.Reason {
	case ReasonMissing:
		return fmt.Sprintf("invalid input: missing answer for question %d", e.QuestionID)
	case ReasonOutOfRange:
		return fmt.Sprintf("invalid input: answer %d for question %d is outside [%d,%d]",
			e.Value, e.QuestionID, MinAnswer, MaxAnswer)
	case ReasonNotInteger:
		return fmt.Sprintf("invalid input: answer for question %d is not an integer", e.QuestionID)
	case ReasonUnknownQuestion:
		return fmt.Sprintf("invalid input: question %d is not in the catalog", e.QuestionID)
	default:
		return fmt.Sprintf("invalid input: question %d", e.QuestionID)
	}
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// configErrorf wraps ErrInvalidConfig with a formatted message.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
