// Package status provides a thread-safe status tracker for the traffic
// light daemon. It is read by HTTP handlers and serialized into MQTT
// lifecycle events.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/traffic-light/internal/light"
)

// Counts tracks how many times each phase has been entered since startup.
// The initial Red phase at construction is not counted.
type Counts struct {
	Red    int
	Yellow int
	Green  int
}

// Config contains daemon configuration for display.
type Config struct {
	RedMS       uint64
	YellowMS    uint64
	GreenMS     uint64
	HeartbeatMs int64
	Broker      string
	HTTPAddr    string
	PinRed      int
	PinYellow   int
	PinGreen    int
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Phase         light.Phase
	PhaseSince    time.Time
	HoldMS        uint64
	Counts        Counts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// InPhase returns how long the current phase has been held.
func (s Snapshot) InPhase() time.Duration {
	return s.Now.Sub(s.PhaseSince)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
// The phase is seeded from the controller's initial state.
func NewTracker(startTime time.Time, phase light.Phase, holdMS uint64, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			Phase:      phase,
			PhaseSince: startTime,
			HoldMS:     holdMS,
			StartTime:  startTime,
			Config:     cfg,
		},
	}
}

// RecordTransition sets the new phase and its hold, and counts the entry.
// Called from the run loop on every advance.
func (t *Tracker) RecordTransition(to light.Phase, at time.Time, holdMS uint64) {
	t.mu.Lock()
	t.snap.Phase = to
	t.snap.PhaseSince = at
	t.snap.HoldMS = holdMS
	switch to {
	case light.Red:
		t.snap.Counts.Red++
	case light.Yellow:
		t.snap.Counts.Yellow++
	case light.Green:
		t.snap.Counts.Green++
	}
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
