package workweek

import (
	"fmt"
	"time"

	"github.com/username/workweek/pkg/dateutil"
)

// TimeOfDay is a time stripped of its calendar date, in milliseconds since midnight
type TimeOfDay int64

const (
	// Midnight is the first instant of a day
	Midnight TimeOfDay = 0
	// EndOfDay is 24:00, the exclusive upper bound of a day
	EndOfDay TimeOfDay = msPerDay
)

// NewTimeOfDay builds a TimeOfDay from clock components
func NewTimeOfDay(hour, minute, second, millisecond int) TimeOfDay {
	return TimeOfDay(int64(hour)*msPerHour +
		int64(minute)*msPerMinute +
		int64(second)*msPerSecond +
		int64(millisecond))
}

// TimeOfDayOf strips the calendar date from t, truncating below one millisecond
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

// ParseTimeOfDay parses "15:04", "15:04:05" or "15:04:05.000"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05", "15:04:05.000"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// Hour returns the hour component (24 for EndOfDay)
func (t TimeOfDay) Hour() int {
	return int(t / msPerHour)
}

// Minute returns the minute component
func (t TimeOfDay) Minute() int {
	return int(t / msPerMinute % 60)
}

// Second returns the second component
func (t TimeOfDay) Second() int {
	return int(t / msPerSecond % 60)
}

// Millisecond returns the millisecond component
func (t TimeOfDay) Millisecond() int {
	return int(t % msPerSecond)
}

// Add returns t shifted by d. The result is not wrapped at midnight.
func (t TimeOfDay) Add(d Duration) TimeOfDay {
	return t + TimeOfDay(d)
}

// Sub returns the span t-other
func (t TimeOfDay) Sub(other TimeOfDay) Duration {
	return Duration(t - other)
}

// On anchors t to the calendar date of date
func (t TimeOfDay) On(date time.Time) time.Time {
	return dateutil.StartOfDay(date).Add(Duration(t).Std())
}

// String formats as HH:MM, adding seconds and milliseconds only when present
func (t TimeOfDay) String() string {
	switch {
	case t.Millisecond() != 0:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour(), t.Minute(), t.Second(), t.Millisecond())
	case t.Second() != 0:
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
