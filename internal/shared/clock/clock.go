package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System reads the wall clock in UTC.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Func adapts a plain function, mostly for fixed clocks in tests.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
