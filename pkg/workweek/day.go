package workweek

import (
	"fmt"
	"time"
)

// Day holds the ordered, non-overlapping shifts of one day of the week
type Day struct {
	weekday  time.Weekday
	shifts   []Shift
	duration Duration // sum of shift durations
}

// NewDay creates an empty day
func NewDay(weekday time.Weekday) *Day {
	return &Day{weekday: weekday}
}

// Weekday returns the day of the week this Day represents
func (d *Day) Weekday() time.Weekday {
	return d.weekday
}

// IsWorking reports whether the day has any shifts
func (d *Day) IsWorking() bool {
	return len(d.shifts) > 0
}

// Duration returns the total working time of the day
func (d *Day) Duration() Duration {
	return d.duration
}

// Len returns the number of shifts
func (d *Day) Len() int {
	return len(d.shifts)
}

// Shifts returns a copy of the shifts in ascending order
func (d *Day) Shifts() []Shift {
	out := make([]Shift, len(d.shifts))
	copy(out, d.shifts)
	return out
}

// FindShift returns the shift containing tod
func (d *Day) FindShift(tod TimeOfDay) (Shift, bool) {
	for _, s := range d.shifts {
		if s.Contains(tod) {
			return s, true
		}
	}
	return Shift{}, false
}

// IsWorkingTime reports whether tod falls within a shift
func (d *Day) IsWorkingTime(tod TimeOfDay) bool {
	_, ok := d.FindShift(tod)
	return ok
}

// AddShift inserts a shift, keeping the shifts sorted.
// The shift must have a positive duration, end no later than midnight,
// and not intersect any existing shift.
func (d *Day) AddShift(shift Shift) error {
	if shift.Duration() <= 0 {
		return fmt.Errorf("%w: duration %s must be positive", ErrInvalidShift, shift.Duration())
	}
	if shift.Start() < Midnight || shift.End() > EndOfDay {
		return fmt.Errorf("%w: %s does not fit within %s", ErrInvalidShift, shift, d.weekday)
	}

	for _, existing := range d.shifts {
		if shift.overlaps(existing) {
			return fmt.Errorf("%w: %s overlaps %s on %s", ErrShiftConflict, shift, existing, d.weekday)
		}
	}

	pos := len(d.shifts)
	for i, existing := range d.shifts {
		if shift.Compare(existing) < 0 {
			pos = i
			break
		}
	}

	d.shifts = append(d.shifts, Shift{})
	copy(d.shifts[pos+1:], d.shifts[pos:])
	d.shifts[pos] = shift
	d.duration = d.duration.Add(shift.Duration())

	return nil
}

// RemoveShift removes the shift starting exactly at start and returns it
func (d *Day) RemoveShift(start TimeOfDay) (Shift, error) {
	for i, s := range d.shifts {
		if s.Start() == start {
			d.shifts = append(d.shifts[:i], d.shifts[i+1:]...)
			d.duration = d.duration.Sub(s.Duration())
			return s, nil
		}
	}
	return Shift{}, fmt.Errorf("%w: %s on %s", ErrShiftNotFound, start, d.weekday)
}

// NextShift returns the first shift ending after at.
// If at falls inside that shift, the shift is truncated to start at at.
func (d *Day) NextShift(at time.Time) (Shift, bool, error) {
	if at.Weekday() != d.weekday {
		return Shift{}, false, fmt.Errorf("%w: %s is a %s, day is %s",
			ErrWrongDayOfWeek, at.Format("2006-01-02"), at.Weekday(), d.weekday)
	}
	s, ok := d.nextShift(TimeOfDayOf(at))
	return s, ok, nil
}

// PreviousShift returns the last shift starting before at.
// If at falls inside that shift, the shift is truncated to end at at.
func (d *Day) PreviousShift(at time.Time) (Shift, bool, error) {
	if at.Weekday() != d.weekday {
		return Shift{}, false, fmt.Errorf("%w: %s is a %s, day is %s",
			ErrWrongDayOfWeek, at.Format("2006-01-02"), at.Weekday(), d.weekday)
	}
	s, ok := d.previousShift(TimeOfDayOf(at))
	return s, ok, nil
}

func (d *Day) nextShift(tod TimeOfDay) (Shift, bool) {
	for _, s := range d.shifts {
		if s.End() <= tod {
			continue
		}
		if tod <= s.Start() {
			return s, true
		}
		return NewShift(tod, s.End().Sub(tod)), true
	}
	return Shift{}, false
}

// previousShift accepts EndOfDay so a walk can resume at 24:00 of an earlier day
func (d *Day) previousShift(tod TimeOfDay) (Shift, bool) {
	for i := len(d.shifts) - 1; i >= 0; i-- {
		s := d.shifts[i]
		if s.Start() >= tod {
			continue
		}
		if tod >= s.End() {
			return s, true
		}
		return NewShift(s.Start(), tod.Sub(s.Start())), true
	}
	return Shift{}, false
}
