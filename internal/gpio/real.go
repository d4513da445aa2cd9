//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealWriter drives lamps on actual hardware using the Linux GPIO
// character device.
type RealWriter struct {
	chip  *gpiocdev.Chip
	lines map[Lamp]*gpiocdev.Line
}

// NewRealWriter claims the three lamp pins as outputs, all driven low.
func NewRealWriter(pins Pins) (*RealWriter, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	w := &RealWriter{
		chip:  chip,
		lines: make(map[Lamp]*gpiocdev.Line, len(Lamps)),
	}

	for _, lamp := range Lamps {
		line, err := chip.RequestLine(pins.pin(lamp), gpiocdev.AsOutput(0))
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("request %s pin %d: %w", lamp, pins.pin(lamp), err)
		}
		w.lines[lamp] = line
	}

	return w, nil
}

// SetLamp drives one lamp to the given level.
func (w *RealWriter) SetLamp(lamp Lamp, level bool) error {
	line, ok := w.lines[lamp]
	if !ok {
		return fmt.Errorf("set %s: line not claimed", lamp)
	}

	value := 0
	if level {
		value = 1
	}
	if err := line.SetValue(value); err != nil {
		return fmt.Errorf("set %s pin: %w", lamp, err)
	}
	return nil
}

// Close drives all lamps low and releases GPIO resources.
// Pins are reconfigured to input before closing so external lamp driver
// modules see a released line rather than a held level across restarts.
func (w *RealWriter) Close() error {
	var errs []error

	for _, lamp := range Lamps {
		line, ok := w.lines[lamp]
		if !ok {
			continue
		}
		if err := line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("lower %s pin: %w", lamp, err))
		}
		if err := line.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure %s pin: %w", lamp, err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s pin: %w", lamp, err))
		}
		delete(w.lines, lamp)
	}
	if w.chip != nil {
		if err := w.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
		w.chip = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
