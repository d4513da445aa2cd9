package gpio

// FakeWriter is a test double that records lamp writes.
type FakeWriter struct {
	// Levels holds the last level written per lamp.
	Levels map[Lamp]bool

	// History records every write in order.
	History []Write

	// SetError, if set, will be returned by SetLamp.
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// Write records a single lamp write.
type Write struct {
	Lamp  Lamp
	Level bool
}

// NewFakeWriter creates a FakeWriter with all lamps off.
func NewFakeWriter() *FakeWriter {
	return &FakeWriter{Levels: make(map[Lamp]bool)}
}

// SetLamp records the write.
func (f *FakeWriter) SetLamp(lamp Lamp, level bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Levels[lamp] = level
	f.History = append(f.History, Write{Lamp: lamp, Level: level})
	return nil
}

// Close marks the writer as closed.
func (f *FakeWriter) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded writes.
func (f *FakeWriter) Reset() {
	f.Levels = make(map[Lamp]bool)
	f.History = nil
	f.Closed = false
	f.SetError = nil
}
