package clock

import (
	"time"

	"voyago/shared/timezone"
)

// Clock abstracts the current time so expiry math is deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// New returns the wall clock in the application timezone.
func New() Clock {
	return systemClock{}
}
