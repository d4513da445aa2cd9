// Package gpio drives the traffic light lamps with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Lamp identifies one of the three physical lamps.
type Lamp string

const (
	LampRed    Lamp = "red"
	LampYellow Lamp = "yellow"
	LampGreen  Lamp = "green"
)

// Lamps lists all lamps in display order.
var Lamps = []Lamp{LampRed, LampYellow, LampGreen}

// Writer sets lamp output levels.
type Writer interface {
	// SetLamp drives one lamp to the given level (true = on/high).
	SetLamp(lamp Lamp, level bool) error

	// Close drives all lamps off and releases GPIO resources.
	Close() error
}

// Default pin assignments (BCM numbering).
const (
	DefaultPinRed    = 17
	DefaultPinYellow = 27
	DefaultPinGreen  = 22
)

// Pins maps each lamp to its BCM pin number.
type Pins struct {
	Red    int
	Yellow int
	Green  int
}

// DefaultPins returns the standard pin assignment.
func DefaultPins() Pins {
	return Pins{Red: DefaultPinRed, Yellow: DefaultPinYellow, Green: DefaultPinGreen}
}

func (p Pins) pin(lamp Lamp) int {
	switch lamp {
	case LampRed:
		return p.Red
	case LampYellow:
		return p.Yellow
	default:
		return p.Green
	}
}
