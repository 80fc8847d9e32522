package policy

import (
	"time"

	"go-medical-appointment/internal/domain/slot"
)

const (
	DefaultCancelWindow     = 2 * time.Hour
	DefaultRescheduleWindow = 24 * time.Hour
)

// WindowPolicy holds the minimum lead times before an appointment starts.
// A request made exactly at the threshold is allowed.
type WindowPolicy struct {
	CancelWindow     time.Duration
	RescheduleWindow time.Duration
}

func Default() WindowPolicy {
	return WindowPolicy{
		CancelWindow:     DefaultCancelWindow,
		RescheduleWindow: DefaultRescheduleWindow,
	}
}

// StartInstant combines a stored calendar date with a wall-clock start time
// in loc. Only the year, month and day of date are used.
func StartInstant(date time.Time, start slot.Clock, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, start.Hour(), start.Minute(), 0, 0, loc)
}

// Until returns how long remains between now and the appointment start,
// evaluated in now's location.
func Until(date time.Time, start slot.Clock, now time.Time) time.Duration {
	return StartInstant(date, start, now.Location()).Sub(now)
}

func HoursUntil(date time.Time, start slot.Clock, now time.Time) float64 {
	return Until(date, start, now).Hours()
}

func (p WindowPolicy) CanCancel(date time.Time, start slot.Clock, now time.Time) bool {
	return Until(date, start, now) >= p.CancelWindow
}

func (p WindowPolicy) CanReschedule(date time.Time, start slot.Clock, now time.Time) bool {
	return Until(date, start, now) >= p.RescheduleWindow
}
