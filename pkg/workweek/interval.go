package workweek

import (
	"fmt"
	"time"
)

// Interval is a shift anchored to a calendar date
type Interval struct {
	Start    time.Time
	Duration Duration
}

// End returns the exclusive end of the interval
func (i Interval) End() time.Time {
	return i.Start.Add(i.Duration.Std())
}

// Contains reports whether t falls within [Start, End)
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End())
}

func (i Interval) String() string {
	return fmt.Sprintf("%s - %s (%s)",
		i.Start.Format("2006-01-02 Mon 15:04:05.000"),
		i.End().Format("15:04:05.000"),
		i.Duration)
}
