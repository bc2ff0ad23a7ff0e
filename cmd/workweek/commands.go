package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/workweek/internal/daemon"
	"github.com/username/workweek/pkg/dateutil"
	"github.com/username/workweek/pkg/workweek"
)

// now is replaced in tests
var now = time.Now

func shiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shifts",
		Short: "List the weekly shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}

			printShifts(service.Shifts(), service.WeekDuration())
			return nil
		},
	}
}

func diffCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Working time between two instants",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseInstant(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			end, err := parseInstant(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			service, err := loadService()
			if err != nil {
				return err
			}

			d := service.Diff(start, end)
			printf("Working time from %s to %s: %s\n",
				formatInstant(start), formatInstant(end), formatDuration(d))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start instant (e.g. 2025-01-13T09:00)")
	cmd.Flags().StringVar(&to, "to", "now", "End instant")
	cmd.MarkFlagRequired("from")

	return cmd
}

func addCmd() *cobra.Command {
	var from, duration string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Instant reached after a working-time duration",
		Long: "Advance (or, with a negative duration, retreat) from an instant by working time.\n" +
			"Durations are ISO 8601 (PT8H, -P1DT2H) or Go syntax (8h, -90m).",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseInstant(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			d, err := parseDuration(duration)
			if err != nil {
				return fmt.Errorf("invalid --duration: %w", err)
			}

			service, err := loadService()
			if err != nil {
				return err
			}

			result, err := service.Add(start, d)
			if err != nil {
				return err
			}

			printf("%s + %s of working time = %s\n",
				formatInstant(start), formatDuration(d), formatInstant(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "now", "Start instant")
	cmd.Flags().StringVar(&duration, "duration", "", "Working-time duration (PT8H, 8h, -PT2H)")
	cmd.MarkFlagRequired("duration")

	return cmd
}

func nextCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Next shift at or after an instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseInstant(at)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}

			service, err := loadService()
			if err != nil {
				return err
			}

			interval, ok := service.NextShift(t)
			if !ok {
				printLine("No shifts scheduled")
				return nil
			}
			printInterval("Next shift", interval)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "now", "Reference instant")

	return cmd
}

func prevCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:     "prev",
		Aliases: []string{"previous"},
		Short:   "Last shift at or before an instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseInstant(at)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}

			service, err := loadService()
			if err != nil {
				return err
			}

			interval, ok := service.PreviousShift(t)
			if !ok {
				printLine("No shifts scheduled")
				return nil
			}
			printInterval("Previous shift", interval)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "now", "Reference instant")

	return cmd
}

func statusCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Whether an instant is working time, and what comes next",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseInstant(at)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}

			service, err := loadService()
			if err != nil {
				return err
			}

			printStatus(service.Status(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "now", "Reference instant")

	return cmd
}

func reportCmd() *cobra.Command {
	var from, to, teeOutput string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Per-day breakdown of working time",
		Long: "Break the working time between two instants down by calendar day.\n" +
			"A plain date for --to includes that whole day. Defaults to the current week up to now.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := dateutil.StartOfWeek(now())
			if from != "" {
				var err error
				if start, err = parseInstant(from); err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
			}
			end, err := parseInstant(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			if date, err := dateutil.ParseDate(to); err == nil {
				end = dateutil.NextDay(time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local))
			}

			if teeOutput != "" {
				if err := os.MkdirAll(filepath.Dir(teeOutput), 0o755); err != nil {
					return fmt.Errorf("failed to create tee path: %w", err)
				}
				f, err := os.OpenFile(teeOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open tee-output file: %w", err)
				}
				defer f.Close()

				previous := out
				out = io.MultiWriter(out, f)
				defer func() { out = previous }()
				printf("📝 Output is mirrored to %s\n", teeOutput)
			}

			service, err := loadService()
			if err != nil {
				return err
			}

			report, err := service.Breakdown(start, end)
			if err != nil {
				return err
			}

			logger.Info("Report generated",
				zap.Time("from", start),
				zap.Time("to", end),
				zap.Int("days", len(report.Days)))

			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start instant (default: Monday of the current week)")
	cmd.Flags().StringVar(&to, "to", "now", "End instant, or a date to include whole")
	cmd.Flags().StringVar(&teeOutput, "tee-output", "", "Mirror report output to file")

	return cmd
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the schedule and log when shifts start and end",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}

			d := daemon.NewDaemon(service, cfg.Watch.GetInterval(), cfg.Watch.SystemTray, logger)
			return d.Start()
		},
	}
}

// parseInstant parses a timestamp or date in local time; "now" and "" mean the current time
func parseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "now") {
		return now(), nil
	}
	return dateutil.ParseDateTime(value, time.Local)
}

// parseDuration accepts ISO 8601 durations and, as a convenience, Go duration syntax
func parseDuration(value string) (workweek.Duration, error) {
	d, err := workweek.ParseDuration(value)
	if err == nil {
		return d, nil
	}
	if std, stdErr := time.ParseDuration(value); stdErr == nil {
		return workweek.FromStd(std), nil
	}
	return 0, err
}
