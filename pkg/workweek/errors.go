package workweek

import "errors"

var (
	// ErrShiftConflict is returned when a new shift overlaps an existing one
	ErrShiftConflict = errors.New("new shift conflicts with existing shift")

	// ErrWrongDayOfWeek is returned when a Day is queried with a date on another weekday.
	// It indicates a caller bug rather than bad data.
	ErrWrongDayOfWeek = errors.New("date does not fall on the day's weekday")

	// ErrShiftNotFound is returned by RemoveShift when no shift starts at the given time
	ErrShiftNotFound = errors.New("no shift starts at the given time")

	// ErrInvalidShift is returned for shifts with a non-positive duration or ending after midnight
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidWeekday is returned for a time.Weekday outside Sunday..Saturday
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrNoShifts is returned when working time is requested from an empty week
	ErrNoShifts = errors.New("week contains no shifts")

	// ErrTraversalLimit is returned when a traversal exceeds its iteration bound
	ErrTraversalLimit = errors.New("traversal exceeded iteration limit")

	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)
