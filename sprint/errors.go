package sprint

import "github.com/ayoisaiah/streak/internal/apperr"

var (
	// ErrInvalidDuration is returned when a sprint is not at least a minute
	// long.
	ErrInvalidDuration = &apperr.Error{
		Message: "sprint duration must be a positive number of minutes, got %d",
	}

	// ErrNotRunning is returned when a tick arrives without an active sprint.
	ErrNotRunning = &apperr.Error{
		Message: "no sprint is running",
	}

	// ErrUnknownSpeed is returned for a speed name that is not a known tier.
	ErrUnknownSpeed = &apperr.Error{
		Message: "unknown sprint speed %q (expected slow, medium, fast or very-fast)",
	}
)
