package signal

import "testing"

func TestFromBool(t *testing.T) {
	if got := FromBool(true); got != On {
		t.Errorf("FromBool(true): got %s, want ON", got)
	}
	if got := FromBool(false); got != Off {
		t.Errorf("FromBool(false): got %s, want OFF", got)
	}
}

func TestToBool(t *testing.T) {
	if !ToBool(On) {
		t.Error("ToBool(On): got false, want true")
	}
	if ToBool(Off) {
		t.Error("ToBool(Off): got true, want false")
	}
}

// FromBool and ToBool must be exact inverses in both directions.
func TestBoolRoundTrip(t *testing.T) {
	for _, flag := range []bool{true, false} {
		if got := ToBool(FromBool(flag)); got != flag {
			t.Errorf("ToBool(FromBool(%v)): got %v", flag, got)
		}
	}
	for _, s := range []State{On, Off} {
		if got := FromBool(ToBool(s)); got != s {
			t.Errorf("FromBool(ToBool(%s)): got %s", s, got)
		}
	}
}

func TestOutputLevelIsIdentity(t *testing.T) {
	if !OutputLevel(true) {
		t.Error("OutputLevel(true): got false, want true")
	}
	if OutputLevel(false) {
		t.Error("OutputLevel(false): got true, want false")
	}
}

func TestInvert(t *testing.T) {
	if got := Invert(On); got != Off {
		t.Errorf("Invert(On): got %s, want OFF", got)
	}
	if got := Invert(Off); got != On {
		t.Errorf("Invert(Off): got %s, want ON", got)
	}
}

// Invert applied twice must return the original state for every input.
func TestInvertIsInvolution(t *testing.T) {
	for _, s := range []State{On, Off} {
		if got := Invert(Invert(s)); got != s {
			t.Errorf("Invert(Invert(%s)): got %s", s, got)
		}
	}
}

func TestInvertBool(t *testing.T) {
	if InvertBool(true) {
		t.Error("InvertBool(true): got true, want false")
	}
	if !InvertBool(false) {
		t.Error("InvertBool(false): got false, want true")
	}
	for _, flag := range []bool{true, false} {
		if got := InvertBool(InvertBool(flag)); got != flag {
			t.Errorf("InvertBool twice on %v: got %v", flag, got)
		}
	}
}
