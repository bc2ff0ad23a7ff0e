package workweek

import (
	"fmt"
	"time"

	"github.com/username/workweek/pkg/dateutil"
)

const (
	daysPerWeek = 7

	// maxWalkDays bounds the cross-day walk: every weekday once, plus the
	// starting weekday again one week later for shifts already passed today.
	maxWalkDays = daysPerWeek + 1
)

// Week is a recurring weekly calendar made of seven Days indexed by time.Weekday.
//
// A Week is not safe for concurrent use; callers sharing one across
// goroutines must guard it with a single lock.
type Week struct {
	days [daysPerWeek]*Day
}

// NewWeek creates a week with seven empty days
func NewWeek() *Week {
	w := &Week{}
	for i := range w.days {
		w.days[i] = NewDay(time.Weekday(i))
	}
	return w
}

func validWeekday(weekday time.Weekday) bool {
	return weekday >= time.Sunday && weekday <= time.Saturday
}

// Day returns the day for the given weekday, or nil when weekday is out of range
func (w *Week) Day(weekday time.Weekday) *Day {
	if !validWeekday(weekday) {
		return nil
	}
	return w.days[weekday]
}

// AddShift adds a shift starting at the given time of day
func (w *Week) AddShift(weekday time.Weekday, hour, minute, second, millisecond int, duration Duration) error {
	return w.AddShiftAt(weekday, NewShift(NewTimeOfDay(hour, minute, second, millisecond), duration))
}

// AddShiftAt adds a pre-built shift to the given weekday
func (w *Week) AddShiftAt(weekday time.Weekday, shift Shift) error {
	if !validWeekday(weekday) {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, int(weekday))
	}
	return w.days[weekday].AddShift(shift)
}

// RemoveShift removes the shift starting at the given time of day
func (w *Week) RemoveShift(weekday time.Weekday, hour, minute, second, millisecond int) error {
	if !validWeekday(weekday) {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, int(weekday))
	}
	_, err := w.days[weekday].RemoveShift(NewTimeOfDay(hour, minute, second, millisecond))
	return err
}

// Duration returns the total working time of the week
func (w *Week) Duration() Duration {
	var total Duration
	for _, d := range w.days {
		total = total.Add(d.Duration())
	}
	return total
}

// ShiftCount returns the number of shifts across all days
func (w *Week) ShiftCount() int {
	n := 0
	for _, d := range w.days {
		n += d.Len()
	}
	return n
}

// ContainsShifts reports whether any day has a shift
func (w *Week) ContainsShifts() bool {
	for _, d := range w.days {
		if d.IsWorking() {
			return true
		}
	}
	return false
}

// IsWorkingDay reports whether the weekday has shifts
func (w *Week) IsWorkingDay(weekday time.Weekday) bool {
	return validWeekday(weekday) && w.days[weekday].IsWorking()
}

// IsWorkingDate reports whether the date falls on a weekday with shifts
func (w *Week) IsWorkingDate(date time.Time) bool {
	return w.IsWorkingDay(date.Weekday())
}

// IsWorkingTime reports whether t falls within a shift
func (w *Week) IsWorkingTime(t time.Time) bool {
	return w.days[t.Weekday()].IsWorkingTime(TimeOfDayOf(t))
}

// NextShift returns the first shift ending after t, truncated to start at t
// when t falls inside it. It reports false when the week has no shifts.
func (w *Week) NextShift(t time.Time) (Interval, bool) {
	if !w.ContainsShifts() {
		return Interval{}, false
	}

	cursor := t.Truncate(time.Millisecond)
	tod := TimeOfDayOf(cursor)

	for i := 0; i < maxWalkDays; i++ {
		if s, ok := w.days[cursor.Weekday()].nextShift(tod); ok {
			return Interval{Start: s.Start().On(cursor), Duration: s.Duration()}, true
		}
		cursor = dateutil.StartOfDay(cursor).AddDate(0, 0, 1)
		tod = Midnight
	}

	return Interval{}, false
}

// PreviousShift returns the last shift starting before t, truncated to end at t
// when t falls inside it. It reports false when the week has no shifts.
func (w *Week) PreviousShift(t time.Time) (Interval, bool) {
	if !w.ContainsShifts() {
		return Interval{}, false
	}

	cursor := t.Truncate(time.Millisecond)
	tod := TimeOfDayOf(cursor)

	for i := 0; i < maxWalkDays; i++ {
		if s, ok := w.days[cursor.Weekday()].previousShift(tod); ok {
			return Interval{Start: s.Start().On(cursor), Duration: s.Duration()}, true
		}
		cursor = dateutil.StartOfDay(cursor).AddDate(0, 0, -1)
		tod = EndOfDay
	}

	return Interval{}, false
}

// DateDiff returns the working time between start and end.
// The result is negative when end is before start.
func (w *Week) DateDiff(start, end time.Time) Duration {
	start = start.Truncate(time.Millisecond)
	end = end.Truncate(time.Millisecond)

	swapped := false
	if start.After(end) {
		start, end = end, start
		swapped = true
	}

	var total Duration

	// Whole weeks contribute exactly one week of working time each.
	// Counted in milliseconds: time.Duration saturates past ~292 years.
	if weeks := (end.UnixMilli() - start.UnixMilli()) / msPerWeek; weeks > 0 {
		total = w.Duration().Mul(weeks)
		start = start.AddDate(0, 0, daysPerWeek*int(weeks))
	}

	limit := w.ShiftCount() + 2
	for i := 0; i < limit; i++ {
		shift, ok := w.NextShift(start)
		if !ok || !shift.Start.Before(end) {
			break
		}

		total = total.Add(shift.Duration)
		start = shift.End()

		if start.After(end) {
			total = total.Sub(FromStd(start.Sub(end)))
			break
		}
	}

	if swapped {
		return total.Neg()
	}
	return total
}

// DateAdd returns the instant reached by moving d of working time from start.
// Negative durations move backwards. A zero duration returns start unchanged.
func (w *Week) DateAdd(start time.Time, d Duration) (time.Time, error) {
	if d.IsZero() {
		return start, nil
	}
	if !w.ContainsShifts() {
		return time.Time{}, fmt.Errorf("%w: cannot move %s from %s", ErrNoShifts, d, start.Format(time.RFC3339))
	}

	start = start.Truncate(time.Millisecond)
	if d > 0 {
		return w.addForward(start, d)
	}
	return w.addBackward(start, d.Neg())
}

// skipWeeks splits a positive budget into whole weeks and a remainder in [0, Duration())
func (w *Week) skipWeeks(budget Duration) (int, Duration) {
	weekly := w.Duration()
	weeks := int64(budget / weekly)
	return int(weeks), budget.Sub(weekly.Mul(weeks))
}

func (w *Week) addForward(start time.Time, budget Duration) (time.Time, error) {
	weeks, remaining := w.skipWeeks(budget)
	start = start.AddDate(0, 0, daysPerWeek*weeks)

	limit := w.ShiftCount() + 2
	for i := 0; i < limit; i++ {
		shift, ok := w.NextShift(start)
		if !ok {
			return time.Time{}, ErrNoShifts
		}

		if shift.Duration < remaining {
			remaining = remaining.Sub(shift.Duration)
			start = shift.End()
			continue
		}

		return shift.Start.Add(remaining.Std()), nil
	}

	return time.Time{}, fmt.Errorf("%w: %s left after %d shifts", ErrTraversalLimit, remaining, limit)
}

func (w *Week) addBackward(start time.Time, budget Duration) (time.Time, error) {
	weeks, remaining := w.skipWeeks(budget)
	start = start.AddDate(0, 0, -daysPerWeek*weeks)

	limit := w.ShiftCount() + 2
	for i := 0; i < limit; i++ {
		shift, ok := w.PreviousShift(start)
		if !ok {
			return time.Time{}, ErrNoShifts
		}

		if shift.Duration < remaining {
			remaining = remaining.Sub(shift.Duration)
			start = shift.Start
			continue
		}

		return shift.End().Add(-remaining.Std()), nil
	}

	return time.Time{}, fmt.Errorf("%w: %s left after %d shifts", ErrTraversalLimit, remaining, limit)
}
