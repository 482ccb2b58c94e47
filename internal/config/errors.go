package config

import "github.com/ayoisaiah/streak/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "sprint duration must be a positive number of minutes, got %d",
	}

	errDurationTooLong = &apperr.Error{
		Message: "sprint duration must be at most %d minutes, got %d",
	}

	errInvalidDecay = &apperr.Error{
		Message: "sprint decay cannot be negative, got %v",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidSessionCmd = &apperr.Error{
		Message: "unable to parse session command %q",
	}

	errEmptyFolder = &apperr.Error{
		Message: "log folder cannot be empty",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value",
	}
)

var errPrompt = &apperr.Error{
	Message: "user prompt failed",
}
