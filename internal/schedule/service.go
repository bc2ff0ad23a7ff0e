package schedule

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/workweek/pkg/dateutil"
	"github.com/username/workweek/pkg/workweek"
)

// Service owns a Week and serialises access to it.
// Shift edits take the write lock; every query and traversal takes the read lock.
type Service struct {
	mu     sync.RWMutex
	week   *workweek.Week
	logger *zap.Logger
}

// DayShifts lists the shifts of one weekday
type DayShifts struct {
	Weekday  time.Weekday
	Shifts   []workweek.Shift
	Duration workweek.Duration
}

// Status describes the calendar at an instant
type Status struct {
	At        time.Time
	Working   bool
	Current   workweek.Interval // the shift containing At, when Working
	Remaining workweek.Duration // working time left in Current
	Next      workweek.Interval // the next shift to start after At
	HasNext   bool
}

// NextChange returns the instant Working next flips, if known
func (s Status) NextChange() (time.Time, bool) {
	if s.Working {
		return s.Current.End(), true
	}
	if s.HasNext {
		return s.Next.Start, true
	}
	return time.Time{}, false
}

// DayStatus is the working time of one calendar day within a report range
type DayStatus struct {
	Date    time.Time
	Weekday time.Weekday
	Planned workweek.Duration // the weekday's total
	Worked  workweek.Duration // working time inside the range on this date
}

// Report is a per-day breakdown of working time between two instants
type Report struct {
	From        time.Time
	To          time.Time
	Days        []DayStatus
	Total       workweek.Duration
	WorkingDays int
}

// weekOrder lists weekdays Monday first
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// NewService creates a new Service around week
func NewService(week *workweek.Week, logger *zap.Logger) *Service {
	return &Service{
		week:   week,
		logger: logger,
	}
}

// AddShift adds a shift to the given weekday
func (s *Service) AddShift(weekday time.Weekday, shift workweek.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.week.AddShiftAt(weekday, shift); err != nil {
		return fmt.Errorf("failed to add shift %s %s: %w", weekday, shift, err)
	}

	s.logger.Info("Shift added",
		zap.String("weekday", weekday.String()),
		zap.String("shift", shift.String()),
		zap.String("week_duration", s.week.Duration().String()))
	return nil
}

// RemoveShift removes the shift starting at start on the given weekday
func (s *Service) RemoveShift(weekday time.Weekday, start workweek.TimeOfDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.week.RemoveShift(weekday, start.Hour(), start.Minute(), start.Second(), start.Millisecond())
	if err != nil {
		return fmt.Errorf("failed to remove shift %s %s: %w", weekday, start, err)
	}

	s.logger.Info("Shift removed",
		zap.String("weekday", weekday.String()),
		zap.String("start", start.String()),
		zap.String("week_duration", s.week.Duration().String()))
	return nil
}

// Shifts returns the shifts of every weekday, Monday first
func (s *Service) Shifts() []DayShifts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make([]DayShifts, 0, len(weekOrder))
	for _, wd := range weekOrder {
		day := s.week.Day(wd)
		days = append(days, DayShifts{
			Weekday:  wd,
			Shifts:   day.Shifts(),
			Duration: day.Duration(),
		})
	}
	return days
}

// WeekDuration returns the total working time of one week
func (s *Service) WeekDuration() workweek.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.week.Duration()
}

// Diff returns the working time between from and to, negative when to precedes from
func (s *Service) Diff(from, to time.Time) workweek.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.week.DateDiff(from, to)
	s.logger.Debug("Computed working time",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.String("duration", d.String()))
	return d
}

// Add returns the instant reached from start after d of working time
func (s *Service) Add(start time.Time, d workweek.Duration) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, err := s.week.DateAdd(start, d)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to add %s to %s: %w", d, dateutil.FormatISO8601(start), err)
	}

	s.logger.Debug("Added working time",
		zap.Time("start", start),
		zap.String("duration", d.String()),
		zap.Time("result", result))
	return result, nil
}

// NextShift returns the next shift at or after t
func (s *Service) NextShift(t time.Time) (workweek.Interval, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.week.NextShift(t)
}

// PreviousShift returns the last shift at or before t
func (s *Service) PreviousShift(t time.Time) (workweek.Interval, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.week.PreviousShift(t)
}

// Status reports whether at is working time, the shift it falls in and the next shift
func (s *Service) Status(at time.Time) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at = at.Truncate(time.Millisecond)
	status := Status{At: at}

	if shift, ok := s.week.Day(at.Weekday()).FindShift(workweek.TimeOfDayOf(at)); ok {
		status.Working = true
		status.Current = workweek.Interval{
			Start:    shift.Start().On(at),
			Duration: shift.Duration(),
		}
		status.Remaining = workweek.FromStd(status.Current.End().Sub(at))
		status.Next, status.HasNext = s.week.NextShift(status.Current.End())
		return status
	}

	status.Next, status.HasNext = s.week.NextShift(at)
	return status
}

// Breakdown splits the working time between from and to by calendar day
func (s *Service) Breakdown(from, to time.Time) (Report, error) {
	if to.Before(from) {
		return Report{}, fmt.Errorf("report end %s is before start %s",
			dateutil.FormatISO8601(to), dateutil.FormatISO8601(from))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	report := Report{From: from, To: to}

	for date := dateutil.StartOfDay(from); date.Before(to); date = dateutil.NextDay(date) {
		start := date
		if start.Before(from) {
			start = from
		}
		end := dateutil.NextDay(date)
		if end.After(to) {
			end = to
		}

		day := s.week.Day(date.Weekday())
		worked := s.week.DateDiff(start, end)

		report.Days = append(report.Days, DayStatus{
			Date:    date,
			Weekday: date.Weekday(),
			Planned: day.Duration(),
			Worked:  worked,
		})
		report.Total = report.Total.Add(worked)
		if !worked.IsZero() {
			report.WorkingDays++
		}
	}

	s.logger.Debug("Built working time report",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("days", len(report.Days)),
		zap.String("total", report.Total.String()))

	return report, nil
}
