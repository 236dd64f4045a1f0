package reveal

import "time"

// Clock abstracts timer creation so tests can drive a reveal without real
// wall-clock delays.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

// Timer is the single-shot timer handle a scheduler waits on.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// WallClock is the production clock backed by the time package.
var WallClock Clock = wallClock{}

type wallClock struct{}

func (wallClock) NewTimer(d time.Duration) Timer {
	return wallTimer{t: time.NewTimer(d)}
}

type wallTimer struct {
	t *time.Timer
}

func (w wallTimer) C() <-chan time.Time { return w.t.C }
func (w wallTimer) Stop() bool          { return w.t.Stop() }
