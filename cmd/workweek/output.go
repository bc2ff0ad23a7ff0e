package main

import (
	"fmt"
	"os"
	"time"

	"github.com/username/workweek/internal/daemon"
	"github.com/username/workweek/internal/schedule"
	"github.com/username/workweek/pkg/workweek"
)

const rule = "═══════════════════════════════════════════════════════"

func printf(format string, a ...interface{}) {
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, a...)
}

func printLine(a ...interface{}) {
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, a...)
}

func formatInstant(t time.Time) string {
	return t.Format("Mon 2006-01-02 15:04:05")
}

// formatDuration renders a duration as ISO 8601 with decimal hours
func formatDuration(d workweek.Duration) string {
	return fmt.Sprintf("%s (%.2fh)", d, d.TotalHours())
}

func printShifts(days []schedule.DayShifts, total workweek.Duration) {
	printLine("\n📅 Weekly shifts:")
	printLine(rule)
	printLine("  Day        | Shifts                          | Total")
	printLine("-------------+---------------------------------+--------")
	for _, day := range days {
		shifts := "-"
		if len(day.Shifts) > 0 {
			shifts = ""
			for i, s := range day.Shifts {
				if i > 0 {
					shifts += ", "
				}
				shifts += s.String()
			}
		}
		printf("  %-10s | %-31s | %5.1fh\n", day.Weekday, shifts, day.Duration.TotalHours())
	}
	printLine(rule)
	printf("  Week total: %s\n", formatDuration(total))
}

func printInterval(label string, interval workweek.Interval) {
	printf("%s: %s - %s (%s)\n",
		label,
		formatInstant(interval.Start),
		interval.End().Format("15:04:05"),
		formatDuration(interval.Duration))
}

func printStatus(status schedule.Status) {
	printf("At %s\n", formatInstant(status.At))
	printLine(daemon.FormatStatus(status))
}

func printReport(report schedule.Report) {
	printf("\n📊 Working time (%s to %s)\n", formatInstant(report.From), formatInstant(report.To))
	printLine(rule)
	printf("  Working days:   %d\n", report.WorkingDays)
	printf("  Total:          %s\n", formatDuration(report.Total))

	if len(report.Days) == 0 {
		return
	}

	printLine("\n📅 Per-day breakdown:")
	printLine(rule)
	printLine("  Date           | Planned | Worked  | Status")
	printLine("-----------------+---------+---------+----------------")
	for _, day := range report.Days {
		printf("  %s | %6.1fh | %6.1fh | %s\n",
			day.Date.Format("2006-01-02 Mon"),
			day.Planned.TotalHours(),
			day.Worked.TotalHours(),
			dayStatusLabel(day))
	}
	printLine("\nLegend: Planned = the weekday's shifts, Worked = working time inside the range.")
}

func dayStatusLabel(day schedule.DayStatus) string {
	switch {
	case day.Planned.IsZero():
		return "day off"
	case day.Worked.Compare(day.Planned) == 0:
		return "full"
	case day.Worked.IsZero():
		return "outside range"
	}
	return fmt.Sprintf("partial %.0f%%", 100*day.Worked.TotalHours()/day.Planned.TotalHours())
}
