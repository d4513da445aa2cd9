// Package signal maps between logical lamp states and boolean output levels.
// Pure conversion functions, no I/O. The hardware layer calls OutputLevel to
// turn a logical flag into a pin level; nothing else in the tree should.
package signal

// State represents the logical state of a single lamp.
type State string

const (
	On  State = "ON"
	Off State = "OFF"
)

// FromBool maps a boolean flag to a lamp state: true = On, false = Off.
func FromBool(flag bool) State {
	if flag {
		return On
	}
	return Off
}

// ToBool maps a lamp state back to a boolean flag. Exact inverse of FromBool.
func ToBool(s State) bool {
	return s == On
}

// OutputLevel interprets a logical flag as a physical output level
// (true = high, false = low). Identity today; kept as a named seam so the
// GPIO layer has one canonical call site if the polarity ever changes.
func OutputLevel(flag bool) bool {
	return flag
}

// Invert swaps On and Off.
func Invert(s State) State {
	if s == On {
		return Off
	}
	return On
}

// InvertBool is logical negation of a lamp flag.
func InvertBool(flag bool) bool {
	return !flag
}
