package config

import (
	"strconv"
	"strings"
)

// ParseMinutes interprets a user supplied sprint length. Empty or non-numeric
// input yields DefaultMinutes; zero or a negative number is an error.
func ParseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultMinutes, nil
	}

	if n <= 0 {
		return 0, errInvalidDuration.Fmt(n)
	}

	return n, nil
}
