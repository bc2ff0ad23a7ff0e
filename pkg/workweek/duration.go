package workweek

import "time"

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
)

// Duration is a signed span of time with millisecond resolution.
// All arithmetic returns a new value.
type Duration int64

// Common durations
const (
	Millisecond Duration = 1
	Second      Duration = msPerSecond
	Minute      Duration = msPerMinute
	Hour        Duration = msPerHour
)

// NewDuration builds a Duration from its components.
// Components may be out of range or negative: hours=30 folds into the total.
func NewDuration(days, hours, minutes, seconds, milliseconds int64) Duration {
	ms := milliseconds
	ms += seconds * msPerSecond
	ms += minutes * msPerMinute
	ms += hours * msPerHour
	ms += days * msPerDay
	return Duration(ms)
}

// FromStd converts a time.Duration, truncating below one millisecond
func FromStd(d time.Duration) Duration {
	return Duration(d / time.Millisecond)
}

// Std converts to a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// Milliseconds returns the exact total number of milliseconds
func (d Duration) Milliseconds() int64 {
	return int64(d)
}

// TotalDays returns the span in days, including partial days
func (d Duration) TotalDays() float64 {
	return float64(d) / msPerDay
}

// TotalHours returns the span in hours, including partial hours
func (d Duration) TotalHours() float64 {
	return float64(d) / msPerHour
}

// TotalMinutes returns the span in minutes, including partial minutes
func (d Duration) TotalMinutes() float64 {
	return float64(d) / msPerMinute
}

// TotalSeconds returns the span in seconds, including partial seconds
func (d Duration) TotalSeconds() float64 {
	return float64(d) / msPerSecond
}

// Days returns the number of whole days in the span.
//
// Component accessors truncate toward zero, so on a negative Duration every
// component carries the sign of the total: -90m is -1h -30m.
func (d Duration) Days() int64 {
	return int64(d) / msPerDay
}

// Hours returns the hours component, excluding whole days.
// 2 days 3 hours 25 minutes returns 3.
func (d Duration) Hours() int64 {
	return int64(d) / msPerHour % 24
}

// Minutes returns the minutes component, excluding whole hours
func (d Duration) Minutes() int64 {
	return int64(d) / msPerMinute % 60
}

// Seconds returns the seconds component, excluding whole minutes
func (d Duration) Seconds() int64 {
	return int64(d) / msPerSecond % 60
}

// Millis returns the milliseconds component, excluding whole seconds
func (d Duration) Millis() int64 {
	return int64(d) % msPerSecond
}

// Add returns d+other
func (d Duration) Add(other Duration) Duration {
	return d + other
}

// Sub returns d-other
func (d Duration) Sub(other Duration) Duration {
	return d - other
}

// Mul returns d scaled by n
func (d Duration) Mul(n int64) Duration {
	return d * Duration(n)
}

// Neg returns -d
func (d Duration) Neg() Duration {
	return -d
}

// Abs returns the magnitude of d
func (d Duration) Abs() Duration {
	if d < 0 {
		return -d
	}
	return d
}

// Sign returns -1, 0 or 1
func (d Duration) Sign() int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// IsZero reports whether the span is empty
func (d Duration) IsZero() bool {
	return d == 0
}

// Compare compares two durations by total milliseconds and returns -1, 0 or 1
func (d Duration) Compare(other Duration) int {
	if d > other {
		return 1
	}
	if d < other {
		return -1
	}
	return 0
}
