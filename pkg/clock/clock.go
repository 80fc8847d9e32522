// Package clock supplies the current instant in the clinic's wall-clock zone.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

// New returns a clock reporting time.Now in loc. A nil loc means time.Local.
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always reports the same instant. Used by tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
