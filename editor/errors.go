package editor

import "github.com/ayoisaiah/streak/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session command %q",
	}

	errNoDocument = &apperr.Error{
		Message: "no file to save to: start streak with a file argument",
	}

	errReadDocument = &apperr.Error{
		Message: "unable to read %s",
	}
)
