// Package timing defines the hold durations for each traffic light phase.
// Pure configuration data, no behavior. All values are milliseconds.
package timing

const (
	// RedDurationMS is how long the red light stays on before transitioning.
	RedDurationMS uint64 = 3000

	// YellowDurationMS is how long the yellow light stays on before transitioning.
	YellowDurationMS uint64 = 1000

	// GreenDurationMS is how long the green light stays on before transitioning.
	GreenDurationMS uint64 = 3000

	// MinDurationMS is the shortest hold accepted from configuration.
	// Guards against transitions too fast for the lamps to be visible.
	MinDurationMS uint64 = 100

	// MaxDurationMS is the longest hold accepted from configuration.
	MaxDurationMS uint64 = 10000
)
