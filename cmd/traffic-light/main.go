// Command traffic-light cycles a three-lamp GPIO traffic light and
// publishes phase changes to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/traffic-light/internal/gpio"
	"github.com/sweeney/traffic-light/internal/lamps"
	"github.com/sweeney/traffic-light/internal/light"
	"github.com/sweeney/traffic-light/internal/mqtt"
	"github.com/sweeney/traffic-light/internal/status"
	"github.com/sweeney/traffic-light/internal/timing"
	"github.com/sweeney/traffic-light/internal/web"
)

func main() {
	broker := flag.String("broker", "tcp://192.168.1.200:1883", "MQTT broker address")
	httpAddr := flag.String("http", ":80", "HTTP status address (empty to disable)")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	red := flag.Duration("red", msDuration(timing.RedDurationMS), "Red hold duration")
	yellow := flag.Duration("yellow", msDuration(timing.YellowDurationMS), "Yellow hold duration")
	green := flag.Duration("green", msDuration(timing.GreenDurationMS), "Green hold duration")
	pinRed := flag.Int("pin-red", gpio.DefaultPinRed, "BCM pin number for the red lamp")
	pinYellow := flag.Int("pin-yellow", gpio.DefaultPinYellow, "BCM pin number for the yellow lamp")
	pinGreen := flag.Int("pin-green", gpio.DefaultPinGreen, "BCM pin number for the green lamp")
	printState := flag.Bool("print-state", false, "Print configured state and exit")

	flag.Parse()

	holds, err := resolveHolds(*red, *yellow, *green)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}

	pins := gpio.Pins{Red: *pinRed, Yellow: *pinYellow, Green: *pinGreen}
	if err := run(holds, *broker, *heartbeat, pins, *printState, *httpAddr); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// holds carries the validated per-phase hold durations in milliseconds.
type holds struct {
	red, yellow, green uint64
}

// resolveHolds converts the duration flags to milliseconds and enforces the
// configured range. The light package itself copies durations unchecked;
// this flag boundary is where out-of-range values are rejected.
func resolveHolds(red, yellow, green time.Duration) (holds, error) {
	h := holds{}
	for _, hold := range []struct {
		name string
		d    time.Duration
		out  *uint64
	}{
		{"red", red, &h.red},
		{"yellow", yellow, &h.yellow},
		{"green", green, &h.green},
	} {
		ms := hold.d.Milliseconds()
		if ms < int64(timing.MinDurationMS) || ms > int64(timing.MaxDurationMS) {
			return holds{}, fmt.Errorf("%s hold %v out of range [%dms, %dms]",
				hold.name, hold.d, timing.MinDurationMS, timing.MaxDurationMS)
		}
		*hold.out = uint64(ms)
	}
	return h, nil
}

func run(h holds, broker string, heartbeat time.Duration, pins gpio.Pins, printState bool, httpAddr string) error {
	ctrl := light.NewWithDurations(h.red, h.yellow, h.green)

	// Print state mode: no hardware or broker needed
	if printState {
		fmt.Printf("phase: %s\nred: %dms\nyellow: %dms\ngreen: %dms\n",
			ctrl.CurrentState(), ctrl.RedDuration(), ctrl.YellowDuration(), ctrl.GreenDuration())
		return nil
	}

	// Initialize GPIO
	writer, err := gpio.NewRealWriter(pins)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer writer.Close()
	panel := lamps.NewPanel(writer)

	// Initialize MQTT
	base, err := mqtt.NewRealPublisher(broker)
	if err != nil {
		return fmt.Errorf("init mqtt: %w", err)
	}
	publisher := mqtt.NewResilientPublisher(base)
	defer publisher.Close()

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), ctrl.CurrentState(), ctrl.CurrentDuration(), status.Config{
		RedMS:       h.red,
		YellowMS:    h.yellow,
		GreenMS:     h.green,
		HeartbeatMs: heartbeat.Milliseconds(),
		Broker:      broker,
		HTTPAddr:    httpAddr,
		PinRed:      pins.Red,
		PinYellow:   pins.Yellow,
		PinGreen:    pins.Green,
	})
	tracker.SetMQTTConnected(publisher.IsConnected())

	// Publish startup event with full status snapshot
	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Start HTTP status server
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("started: red=%dms yellow=%dms green=%dms broker=%s heartbeat=%v",
		h.red, h.yellow, h.green, broker, heartbeat)

	timer := time.NewTimer(msDuration(ctrl.CurrentDuration()))
	defer timer.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	resetTimer := func(d time.Duration) { timer.Reset(d) }
	return runLoop(panel, publisher, publisher, tracker, ctrl, heartbeat, time.Now, timer.C, resetTimer, sigCh)
}

func runLoop(panel *lamps.Panel, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, ctrl *light.Controller, heartbeat time.Duration, now func() time.Time, timerC <-chan time.Time, resetTimer func(time.Duration), sig <-chan os.Signal) error {
	// Light the initial phase before the first hold elapses.
	if err := panel.Apply(ctrl.CurrentState()); err != nil {
		log.Printf("lamp error: %v", err)
	}
	lastHeartbeat := now()

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			if mqttStatus != nil {
				tracker.SetMQTTConnected(mqttStatus.IsConnected())
			}
			event := mqtt.SystemEvent{
				Timestamp:  now(),
				Event:      "SHUTDOWN",
				Reason:     signalName,
				Retained:   true,
				RawPayload: status.FormatStatusEvent(tracker.Snapshot(), "SHUTDOWN", signalName),
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			if err := panel.AllOff(); err != nil {
				log.Printf("lamp error: %v", err)
			}
			return nil

		case <-timerC:
			t := now()
			from := ctrl.CurrentState()
			to := ctrl.Advance()
			hold := ctrl.CurrentDuration()

			log.Printf("phase: %s -> %s (hold %dms)", from, to, hold)
			if err := panel.Apply(to); err != nil {
				log.Printf("lamp error: %v", err)
				// Keep cycling - a stuck pin should not halt the light
			}

			transition := light.Transition{Timestamp: t, From: from, To: to, HoldMS: hold}
			if err := publisher.Publish(transition); err != nil {
				log.Printf("publish error: %v", err)
			}

			tracker.RecordTransition(to, t, hold)
			if mqttStatus != nil {
				tracker.SetMQTTConnected(mqttStatus.IsConnected())
			}

			// Check for heartbeat
			if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
				lastHeartbeat = t
				snap := tracker.Snapshot()
				log.Printf("heartbeat: uptime=%v red=%d yellow=%d green=%d",
					snap.Uptime(), snap.Counts.Red, snap.Counts.Yellow, snap.Counts.Green)

				hbEvent := mqtt.SystemEvent{
					Timestamp:  t,
					Event:      "HEARTBEAT",
					RawPayload: status.FormatStatusEvent(snap, "HEARTBEAT", ""),
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			resetTimer(msDuration(hold))
		}
	}
}

func msDuration(ms uint64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
