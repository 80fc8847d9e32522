package slot

import "errors"

var (
	ErrInvalidDuration = errors.New("slot duration must be greater than zero")
	ErrInvalidWindow   = errors.New("start time must be before end time")
)

// Range is a half-open wall-clock interval [Start, End).
type Range struct {
	Start Clock
	End   Clock
}

// Overlaps reports whether r and o intersect. Ranges that only touch at an
// endpoint do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r Range) Minutes() int {
	return int(r.End - r.Start)
}

// Generate splits [start, end) into contiguous slots of duration minutes.
// A trailing remainder shorter than duration is dropped, never emitted as a
// short slot, so a window of W minutes yields exactly floor(W/duration) slots.
func Generate(start, end Clock, duration int) ([]Range, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if start >= end {
		return nil, ErrInvalidWindow
	}

	slots := make([]Range, 0, int(end-start)/duration)
	step := Clock(duration)
	for cur := start; cur+step <= end; cur += step {
		slots = append(slots, Range{Start: cur, End: cur + step})
	}
	return slots, nil
}

// Remainder returns how many minutes at the end of the window Generate drops.
func Remainder(start, end Clock, duration int) int {
	if duration <= 0 || start >= end {
		return 0
	}
	return int(end-start) % duration
}
