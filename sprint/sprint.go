// Package sprint runs a writing sprint: a countdown paired with a health
// value that decays every tick and is restored by typing
package sprint

import (
	"slices"
	"strings"
	"time"
)

const (
	// TickLength is how often the session advances.
	TickLength = 10 * time.Millisecond
	// MaxHealth sits above the 0-100 display range to give the writer a
	// small buffer at the start of a sprint.
	MaxHealth = 105.0
	// HealthGain is restored for every input event.
	HealthGain = 1.0
)

// Status is the state of a session.
type Status int

const (
	Idle Status = iota
	Running
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// Speed is a named health decay rate.
type Speed string

const (
	Slow     Speed = "slow"
	Medium   Speed = "medium"
	Fast     Speed = "fast"
	VeryFast Speed = "very-fast"
)

var decayPerTick = map[Speed]float64{
	Slow:     0.01,
	Medium:   0.03,
	Fast:     0.05,
	VeryFast: 0.15,
}

// Speeds lists the speed tiers from slowest to fastest.
func Speeds() []Speed {
	return []Speed{Slow, Medium, Fast, VeryFast}
}

// ParseSpeed converts a configured speed name into a Speed.
func ParseSpeed(s string) (Speed, error) {
	speed := Speed(strings.ToLower(strings.TrimSpace(s)))

	if !slices.Contains(Speeds(), speed) {
		return "", ErrUnknownSpeed.Fmt(s)
	}

	return speed, nil
}

// Decay returns the health lost per tick at this speed.
func (s Speed) Decay() float64 {
	return decayPerTick[s]
}

// Config describes a single sprint.
type Config struct {
	Speed Speed
	// Decay overrides the speed's decay rate when positive.
	Decay   float64
	Minutes int
}

// Duration is the total length of the sprint.
func (c Config) Duration() time.Duration {
	return time.Duration(c.Minutes) * time.Minute
}

// DecayPerTick resolves the health lost on every tick.
func (c Config) DecayPerTick() float64 {
	if c.Decay > 0 {
		return c.Decay
	}

	return c.Speed.Decay()
}

func (c Config) validate() error {
	if c.Minutes <= 0 {
		return ErrInvalidDuration.Fmt(c.Minutes)
	}

	if c.DecayPerTick() <= 0 {
		return ErrUnknownSpeed.Fmt(c.Speed)
	}

	return nil
}
