package status

import (
	"encoding/json"
	"time"

	"github.com/sweeney/traffic-light/internal/gpio"
	"github.com/sweeney/traffic-light/internal/lamps"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event          string     `json:"event,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	Phase          string     `json:"phase"`
	HoldMS         uint64     `json:"hold_ms"`
	InPhaseSeconds int64      `json:"in_phase_seconds"`
	Lamps          LampsJSON  `json:"lamps"`
	UptimeSeconds  int64      `json:"uptime_seconds"`
	StartTime      string     `json:"start_time"`
	Timestamp      string     `json:"timestamp"`
	MQTT           MQTTStatus `json:"mqtt"`
	Counts         CountsJSON `json:"transition_counts"`
	Config         ConfigJSON `json:"config"`
}

// LampsJSON reports the logical state of each lamp.
type LampsJSON struct {
	Red    string `json:"red"`
	Yellow string `json:"yellow"`
	Green  string `json:"green"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of phase entry counts.
type CountsJSON struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	RedMS       uint64 `json:"red_ms"`
	YellowMS    uint64 `json:"yellow_ms"`
	GreenMS     uint64 `json:"green_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	Broker      string `json:"broker"`
	HTTPAddr    string `json:"http_addr"`
	PinRed      int    `json:"pin_red"`
	PinYellow   int    `json:"pin_yellow"`
	PinGreen    int    `json:"pin_green"`
}

func buildInner(snap Snapshot) StatusInner {
	phase := string(snap.Phase)
	if phase == "" {
		phase = "UNKNOWN"
	}

	states := lamps.States(snap.Phase)

	return StatusInner{
		Phase:          phase,
		HoldMS:         snap.HoldMS,
		InPhaseSeconds: int64(snap.InPhase().Truncate(time.Second).Seconds()),
		Lamps: LampsJSON{
			Red:    string(states[gpio.LampRed]),
			Yellow: string(states[gpio.LampYellow]),
			Green:  string(states[gpio.LampGreen]),
		},
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			Red:    snap.Counts.Red,
			Yellow: snap.Counts.Yellow,
			Green:  snap.Counts.Green,
		},
		Config: ConfigJSON{
			RedMS:       snap.Config.RedMS,
			YellowMS:    snap.Config.YellowMS,
			GreenMS:     snap.Config.GreenMS,
			HeartbeatMs: snap.Config.HeartbeatMs,
			Broker:      snap.Config.Broker,
			HTTPAddr:    snap.Config.HTTPAddr,
			PinRed:      snap.Config.PinRed,
			PinYellow:   snap.Config.PinYellow,
			PinGreen:    snap.Config.PinGreen,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
