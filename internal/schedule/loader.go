package schedule

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/workweek/internal/config"
	"github.com/username/workweek/pkg/workweek"
)

// Build creates a Week from the inline shifts in cfg and, when set, the shift file
func Build(cfg config.WeekConfig, logger *zap.Logger) (*workweek.Week, error) {
	week := workweek.NewWeek()

	for i, sc := range cfg.Shifts {
		weekday, shift, err := parseShift(sc.Day, sc.Start, sc.Duration)
		if err != nil {
			return nil, fmt.Errorf("week.shifts[%d]: %w", i, err)
		}
		if err := week.AddShiftAt(weekday, shift); err != nil {
			return nil, fmt.Errorf("week.shifts[%d] %s %s: %w", i, weekday, shift, err)
		}
	}

	if cfg.ShiftsFile != "" {
		count, err := LoadShiftFile(cfg.ShiftsFile, week, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded shift file",
			zap.String("file", cfg.ShiftsFile),
			zap.Int("shifts", count))
	}

	logger.Debug("Week built",
		zap.Int("shifts", week.ShiftCount()),
		zap.String("duration", week.Duration().String()))

	return week, nil
}

// LoadShiftFile adds the shifts listed in a text file to week and returns how many were added.
//
// Format: <weekday> <HH:MM[:SS]> <ISO 8601 duration> [note]
// Example: monday 09:00 PT8H
//
// Blank lines and lines starting with # are skipped. Malformed lines are
// logged and skipped; a shift that conflicts with the week is an error.
func LoadShiftFile(path string, week *workweek.Week, logger *zap.Logger) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open shift file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	added := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 3 {
			logger.Warn("Invalid line format", zap.Int("line", lineNo), zap.String("text", line))
			continue
		}

		weekday, shift, err := parseShift(parts[0], parts[1], parts[2])
		if err != nil {
			logger.Warn("Failed to parse shift", zap.Int("line", lineNo), zap.Error(err))
			continue
		}

		if err := week.AddShiftAt(weekday, shift); err != nil {
			if errors.Is(err, workweek.ErrInvalidShift) {
				logger.Warn("Skipping invalid shift",
					zap.Int("line", lineNo),
					zap.String("shift", shift.String()),
					zap.Error(err))
				continue
			}
			return added, fmt.Errorf("%s:%d: %s %s: %w", path, lineNo, weekday, shift, err)
		}
		added++
	}

	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("failed to read shift file: %w", err)
	}

	return added, nil
}

func parseShift(day, start, duration string) (time.Weekday, workweek.Shift, error) {
	weekday, err := config.ParseWeekday(day)
	if err != nil {
		return 0, workweek.Shift{}, err
	}

	tod, err := workweek.ParseTimeOfDay(start)
	if err != nil {
		return 0, workweek.Shift{}, fmt.Errorf("start %q: %w", start, err)
	}

	d, err := workweek.ParseDuration(duration)
	if err != nil {
		return 0, workweek.Shift{}, fmt.Errorf("duration %q: %w", duration, err)
	}

	return weekday, workweek.NewShift(tod, d), nil
}
