package light

import (
	"testing"

	"github.com/sweeney/traffic-light/internal/timing"
)

func TestNewStartsAtRed(t *testing.T) {
	c := New()
	if c.CurrentState() != Red {
		t.Errorf("initial phase: got %s, want RED", c.CurrentState())
	}
	if c.CurrentDuration() != 3000 {
		t.Errorf("initial duration: got %d, want 3000", c.CurrentDuration())
	}
}

func TestNewCopiesConfiguredDurations(t *testing.T) {
	c := New()
	if c.RedDuration() != timing.RedDurationMS {
		t.Errorf("red duration: got %d, want %d", c.RedDuration(), timing.RedDurationMS)
	}
	if c.YellowDuration() != timing.YellowDurationMS {
		t.Errorf("yellow duration: got %d, want %d", c.YellowDuration(), timing.YellowDurationMS)
	}
	if c.GreenDuration() != timing.GreenDurationMS {
		t.Errorf("green duration: got %d, want %d", c.GreenDuration(), timing.GreenDurationMS)
	}
}

func TestAdvanceSequence(t *testing.T) {
	c := New()

	// Red -> Green, holds 3000ms
	if got := c.Advance(); got != Green {
		t.Errorf("first advance: got %s, want GREEN", got)
	}
	if c.CurrentDuration() != 3000 {
		t.Errorf("green duration: got %d, want 3000", c.CurrentDuration())
	}

	// Green -> Yellow, holds 1000ms
	if got := c.Advance(); got != Yellow {
		t.Errorf("second advance: got %s, want YELLOW", got)
	}
	if c.CurrentDuration() != 1000 {
		t.Errorf("yellow duration: got %d, want 1000", c.CurrentDuration())
	}

	// Yellow -> Red closes the cycle
	if got := c.Advance(); got != Red {
		t.Errorf("third advance: got %s, want RED", got)
	}
	if c.CurrentDuration() != 3000 {
		t.Errorf("red duration: got %d, want 3000", c.CurrentDuration())
	}
}

// Three advances from any phase must return the controller to its exact
// starting state, for several whole cycles.
func TestCycleHasPeriodThree(t *testing.T) {
	c := NewWithDurations(4000, 500, 2500)
	for start := 0; start < 3; start++ {
		before := *c
		for k := 1; k <= 4; k++ {
			for i := 0; i < 3; i++ {
				c.Advance()
			}
			if *c != before {
				t.Fatalf("after %d full cycles from %s: controller state changed", k, before.currentPhase)
			}
		}
		c.Advance() // shift the starting phase for the next round
	}
}

func TestPhaseAfterNAdvances(t *testing.T) {
	want := []Phase{Red, Green, Yellow}
	c := New()
	for n := 0; n <= 12; n++ {
		if got := c.CurrentState(); got != want[n%3] {
			t.Errorf("after %d advances: got %s, want %s", n, got, want[n%3])
		}
		c.Advance()
	}
}

func TestCurrentDurationMatchesPhaseAccessor(t *testing.T) {
	c := NewWithDurations(1234, 567, 8901)
	for n := 0; n < 6; n++ {
		var want uint64
		switch c.CurrentState() {
		case Red:
			want = c.RedDuration()
		case Yellow:
			want = c.YellowDuration()
		case Green:
			want = c.GreenDuration()
		}
		if got := c.CurrentDuration(); got != want {
			t.Errorf("phase %s: CurrentDuration %d, accessor %d", c.CurrentState(), got, want)
		}
		c.Advance()
	}
}

func TestExactlyOnePredicateTrue(t *testing.T) {
	c := New()
	for n := 0; n < 6; n++ {
		trueCount := 0
		for _, p := range []bool{c.IsRed(), c.IsYellow(), c.IsGreen()} {
			if p {
				trueCount++
			}
		}
		if trueCount != 1 {
			t.Errorf("phase %s: %d predicates true, want exactly 1", c.CurrentState(), trueCount)
		}
		c.Advance()
	}
}

func TestPredicatesTrackPhase(t *testing.T) {
	c := New()
	if !c.IsRed() || c.IsYellow() || c.IsGreen() {
		t.Error("new controller: expected only IsRed")
	}
	c.Advance()
	if c.IsRed() || c.IsYellow() || !c.IsGreen() {
		t.Error("after one advance: expected only IsGreen")
	}
	c.Advance()
	if c.IsRed() || !c.IsYellow() || c.IsGreen() {
		t.Error("after two advances: expected only IsYellow")
	}
}

func TestControllersAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.Advance()
	a.Advance()

	if b.CurrentState() != Red {
		t.Errorf("controller b moved to %s when only a was advanced", b.CurrentState())
	}
	if a.CurrentState() != Yellow {
		t.Errorf("controller a: got %s, want YELLOW", a.CurrentState())
	}
}

func TestDurationsUnchangedByAdvance(t *testing.T) {
	c := New()
	for n := 0; n < 9; n++ {
		c.Advance()
	}
	if c.RedDuration() != timing.RedDurationMS ||
		c.YellowDuration() != timing.YellowDurationMS ||
		c.GreenDuration() != timing.GreenDurationMS {
		t.Error("durations changed after advancing")
	}
}

func TestPhaseMatches(t *testing.T) {
	if !PhaseMatches(Green, Green) {
		t.Error("PhaseMatches(Green, Green): got false, want true")
	}
	if PhaseMatches(Green, Red) {
		t.Error("PhaseMatches(Green, Red): got true, want false")
	}
	for _, p := range []Phase{Red, Yellow, Green} {
		for _, q := range []Phase{Red, Yellow, Green} {
			if got := PhaseMatches(p, q); got != (p == q) {
				t.Errorf("PhaseMatches(%s, %s): got %v", p, q, got)
			}
		}
	}
}
