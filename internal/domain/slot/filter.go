package slot

// Slot is a generated range annotated with its availability.
type Slot struct {
	Range
	Available bool
}

// Filter holds everything that can make a generated slot unavailable on one day.
type Filter struct {
	Booked  []Range
	Blocked []Range

	// Cutoff marks every slot starting at or before it as elapsed. Nil disables
	// the check, which is the case for any day after today.
	Cutoff *Clock
}

// Apply annotates slots in generator order. A slot is unavailable if it has
// elapsed, overlaps a booked range, or overlaps a blocked range.
func (f Filter) Apply(slots []Range) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{Range: s, Available: f.available(s)}
	}
	return out
}

func (f Filter) available(s Range) bool {
	if f.Cutoff != nil && s.Start <= *f.Cutoff {
		return false
	}
	if overlapsAny(s, f.Booked) {
		return false
	}
	return !overlapsAny(s, f.Blocked)
}

func overlapsAny(s Range, ranges []Range) bool {
	for _, r := range ranges {
		if s.Overlaps(r) {
			return true
		}
	}
	return false
}

// CountAvailable returns how many slots are bookable.
func CountAvailable(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}

// Find returns the slot exactly matching r.
func Find(slots []Slot, r Range) (Slot, bool) {
	for _, s := range slots {
		if s.Range == r {
			return s, true
		}
	}
	return Slot{}, false
}
