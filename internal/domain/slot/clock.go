package slot

import (
	"errors"
	"fmt"
	"time"
)

// Clock is a wall-clock time of day in minutes since midnight. It carries no
// time zone: slot boundaries are compared exactly as the doctor entered them.
type Clock int

const (
	Midnight  Clock = 0
	EndOfDay  Clock = 24 * 60
	LastStart Clock = EndOfDay - 1
)

var ErrInvalidClock = errors.New("invalid time format, use HH:MM")

// ParseClock parses "HH:MM". "24:00" is accepted as the end of the day so a
// window may close at midnight.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidClock
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || m > 59 {
		return 0, ErrInvalidClock
	}
	if h == 24 && m == 0 {
		return EndOfDay, nil
	}
	if h > 23 {
		return 0, ErrInvalidClock
	}
	return Clock(h*60 + m), nil
}

// MustParseClock is ParseClock for constants and tests.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(fmt.Sprintf("slot: %q: %v", s, err))
	}
	return c
}

// ClockOf returns the wall-clock minute of t in t's own location.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
