// Package light contains the pure traffic light state machine.
// This package has NO external dependencies (no GPIO, MQTT, OS, or
// time.Sleep). It never measures time: callers decide when to call
// Advance, using CurrentDuration as the hold time for the active phase.
package light

import (
	"time"

	"github.com/sweeney/traffic-light/internal/timing"
)

// Phase represents the active traffic light signal. Exactly one phase is
// active at any instant.
type Phase string

const (
	Red    Phase = "RED"
	Yellow Phase = "YELLOW"
	Green  Phase = "GREEN"
)

// Transition records one phase change for publishing.
type Transition struct {
	Timestamp time.Time
	From      Phase
	To        Phase
	// HoldMS is how long the new phase will be held, in milliseconds.
	HoldMS uint64
}

// Controller owns the current phase and the configured hold durations.
// The durations never change after construction; only the phase mutates,
// and only via Advance. Controllers are independent values — two instances
// share nothing.
type Controller struct {
	currentPhase   Phase
	redDuration    uint64
	yellowDuration uint64
	greenDuration  uint64
}

// New creates a controller starting at Red with the standard configured
// durations. Durations are copied unchecked, matching the timing package's
// advisory (not enforced) range; callers that accept durations from outside
// validate at that boundary instead.
func New() *Controller {
	return NewWithDurations(timing.RedDurationMS, timing.YellowDurationMS, timing.GreenDurationMS)
}

// NewWithDurations creates a controller starting at Red with the given hold
// durations in milliseconds. No range check is applied here.
func NewWithDurations(red, yellow, green uint64) *Controller {
	return &Controller{
		currentPhase:   Red,
		redDuration:    red,
		yellowDuration: yellow,
		greenDuration:  green,
	}
}

// Advance moves to the next phase in the cycle and returns it.
// The cycle is Red -> Green -> Yellow -> Red, period 3.
func (c *Controller) Advance() Phase {
	switch c.currentPhase {
	case Red:
		c.currentPhase = Green
	case Green:
		c.currentPhase = Yellow
	default:
		c.currentPhase = Red
	}
	return c.currentPhase
}

// CurrentState returns the active phase.
func (c *Controller) CurrentState() Phase {
	return c.currentPhase
}

// CurrentDuration returns the hold duration for the active phase in
// milliseconds.
func (c *Controller) CurrentDuration() uint64 {
	switch c.currentPhase {
	case Red:
		return c.redDuration
	case Yellow:
		return c.yellowDuration
	default:
		return c.greenDuration
	}
}

// RedDuration returns the configured red hold in milliseconds.
func (c *Controller) RedDuration() uint64 {
	return c.redDuration
}

// YellowDuration returns the configured yellow hold in milliseconds.
func (c *Controller) YellowDuration() uint64 {
	return c.yellowDuration
}

// GreenDuration returns the configured green hold in milliseconds.
func (c *Controller) GreenDuration() uint64 {
	return c.greenDuration
}

// IsRed reports whether the active phase is Red.
func (c *Controller) IsRed() bool {
	return c.currentPhase == Red
}

// IsYellow reports whether the active phase is Yellow.
func (c *Controller) IsYellow() bool {
	return c.currentPhase == Yellow
}

// IsGreen reports whether the active phase is Green.
func (c *Controller) IsGreen() bool {
	return c.currentPhase == Green
}

// PhaseMatches reports whether the current phase equals the target phase.
// Used to decide whether a given lamp should be driven on.
func PhaseMatches(current, target Phase) bool {
	return current == target
}
