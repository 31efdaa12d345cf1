package usecase

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by services. Handlers map them to HTTP statuses
// with errors.Is instead of matching message strings.
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSeatTaken      = errors.New("seat already taken")
	ErrStepOutOfOrder = errors.New("purchase step out of order")
)

// NotFoundf wraps ErrNotFound with context about what was missing.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Validationf wraps ErrValidation with the reason the input was rejected.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StepError rejects a purchase request made out of order and names the step
// the client has to go back to.
type StepError struct {
	Step   string
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: go to step %q", e.Reason, e.Step)
}

func (e *StepError) Unwrap() error {
	return ErrStepOutOfOrder
}

// StepFromError extracts the redirect step from a step error, or "" when the
// error is unrelated to the purchase flow.
func StepFromError(err error) string {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step
	}
	return ""
}
