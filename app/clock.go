package app

import "time"

// Clock provides time for the per-second diagnostic. The default
// implementation uses system time, which is monotonic across the
// subtraction Iterate performs. Tests inject a fake clock to control
// elapsed time deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
