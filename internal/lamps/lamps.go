// Package lamps maps a traffic light phase onto the three physical lamps.
package lamps

import (
	"fmt"

	"github.com/sweeney/traffic-light/internal/gpio"
	"github.com/sweeney/traffic-light/internal/light"
	"github.com/sweeney/traffic-light/internal/signal"
)

// phaseFor maps each lamp to the phase that lights it.
var phaseFor = map[gpio.Lamp]light.Phase{
	gpio.LampRed:    light.Red,
	gpio.LampYellow: light.Yellow,
	gpio.LampGreen:  light.Green,
}

// Panel drives the three lamps through a gpio.Writer.
type Panel struct {
	writer gpio.Writer
}

// NewPanel creates a Panel over the given writer.
func NewPanel(writer gpio.Writer) *Panel {
	return &Panel{writer: writer}
}

// Apply drives exactly the lamp matching the given phase on and the other
// two off. On write failure the remaining lamps are still written, so a
// single bad pin cannot leave stale levels on the others.
func (p *Panel) Apply(phase light.Phase) error {
	var errs []error
	for lamp, target := range phaseFor {
		level := signal.OutputLevel(light.PhaseMatches(phase, target))
		if err := p.writer.SetLamp(lamp, level); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("apply %s: %v", phase, errs)
	}
	return nil
}

// AllOff drives every lamp off. Used on shutdown.
func (p *Panel) AllOff() error {
	var errs []error
	for _, lamp := range gpio.Lamps {
		if err := p.writer.SetLamp(lamp, signal.OutputLevel(false)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("all off: %v", errs)
	}
	return nil
}

// States returns the logical state of each lamp for the given phase.
// Read-only helper for status display.
func States(phase light.Phase) map[gpio.Lamp]signal.State {
	states := make(map[gpio.Lamp]signal.State, len(phaseFor))
	for lamp, target := range phaseFor {
		states[lamp] = signal.FromBool(light.PhaseMatches(phase, target))
	}
	return states
}
