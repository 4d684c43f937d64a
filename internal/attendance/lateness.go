package attendance

import (
	"fmt"
	"strings"
	"time"
)

// LatenessPolicy decides the status stamped on a clock-in.
type LatenessPolicy interface {
	Status(clockIn time.Time) string
}

type LatenessFunc func(clockIn time.Time) string

func (f LatenessFunc) Status(clockIn time.Time) string {
	return f(clockIn)
}

// AlwaysPresent never marks anyone late.
var AlwaysPresent LatenessPolicy = LatenessFunc(func(time.Time) string { return StatusPresent })

// LateAfter marks clock-ins strictly after hour:minute UTC as late.
func LateAfter(hour, minute int) LatenessPolicy {
	cutoff := hour*60 + minute
	return LatenessFunc(func(clockIn time.Time) string {
		t := clockIn.UTC()
		if t.Hour()*60+t.Minute() > cutoff {
			return StatusLate
		}
		return StatusPresent
	})
}

// ParseLatenessPolicy reads an HH:MM cutoff. An empty value yields AlwaysPresent.
func ParseLatenessPolicy(s string) (LatenessPolicy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AlwaysPresent, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return nil, fmt.Errorf("invalid lateness cutoff %q: %w", s, err)
	}
	return LateAfter(t.Hour(), t.Minute()), nil
}
