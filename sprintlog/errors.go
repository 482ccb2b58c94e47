package sprintlog

import "github.com/ayoisaiah/streak/internal/apperr"

var (
	errMalformedEntry = &apperr.Error{
		Message: "malformed log entry: %q",
	}

	errReadLog = &apperr.Error{
		Message: "reading sprint log failed",
	}

	errWriteLog = &apperr.Error{
		Message: "writing sprint log failed",
	}

	errIncompleteEntry = &apperr.Error{
		Message: "log entry is missing its %s",
	}

	errUnsafeEntry = &apperr.Error{
		Message: "log entry %s %q cannot be written on one line",
	}
)
