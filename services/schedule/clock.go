package schedule

import "time"

// Clock supplies the current instant. It is injected everywhere this
// package needs "now" so the DST and resolution logic can be pinned to
// fixed dates in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the production clock.
var SystemClock Clock = systemClock{}
