package workweek

import "fmt"

// Shift is a single working interval [start, start+duration) within a day
type Shift struct {
	start    TimeOfDay
	duration Duration
}

// NewShift creates a shift. The duration's sign is not validated here.
func NewShift(start TimeOfDay, duration Duration) Shift {
	return Shift{start: start, duration: duration}
}

// Start returns the start time of the shift
func (s Shift) Start() TimeOfDay {
	return s.start
}

// Duration returns the length of the shift
func (s Shift) Duration() Duration {
	return s.duration
}

// End returns the exclusive end time of the shift
func (s Shift) End() TimeOfDay {
	return s.start.Add(s.duration)
}

// Contains reports whether tod falls within [start, end)
func (s Shift) Contains(tod TimeOfDay) bool {
	return tod >= s.start && tod < s.End()
}

// overlaps reports whether the two half-open intervals intersect
func (s Shift) overlaps(other Shift) bool {
	return s.start < other.End() && other.start < s.End()
}

// Compare orders shifts by start time, then by duration
func (s Shift) Compare(other Shift) int {
	if s.start > other.start {
		return 1
	}
	if s.start < other.start {
		return -1
	}
	return s.duration.Compare(other.duration)
}

func (s Shift) String() string {
	return fmt.Sprintf("%s-%s", s.start, s.End())
}
