package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
week:
  shifts:
    - day: monday
      start: "09:00"
      duration: PT8H
    - day: Tue
      start: "13:30"
      duration: PT4H30M
log:
  level: debug
watch:
  interval: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Week.Shifts, 2)
	assert.Equal(t, ShiftConfig{Day: "monday", Start: "09:00", Duration: "PT8H"}, cfg.Week.Shifts[0])
	assert.Equal(t, "Tue", cfg.Week.Shifts[1].Day)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 30*time.Second, cfg.Watch.GetInterval())
	assert.False(t, cfg.Watch.SystemTray)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
week:
  shifts_file: shifts.txt
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shifts.txt", cfg.Week.ShiftsFile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.Watch.GetInterval())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
week:
  shifts_file: shifts.txt
log:
  level: info
`)
	t.Setenv("WORKWEEK_LOG_LEVEL", "warn")
	t.Setenv("WORKWEEK_WATCH_INTERVAL", "5m")
	t.Setenv("WORKWEEK_WEEK_SHIFTS_FILE", "/tmp/other.txt")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 5*time.Minute, cfg.Watch.GetInterval())
	assert.Equal(t, "/tmp/other.txt", cfg.Week.ShiftsFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Week: WeekConfig{Shifts: []ShiftConfig{{Day: "friday", Start: "09:00", Duration: "PT8H"}}},
			Log:  LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(c *Config) {},
		},
		{
			name:    "no shift source",
			modify:  func(c *Config) { c.Week.Shifts = nil },
			wantErr: "week.shifts or week.shifts_file is required",
		},
		{
			name:    "unknown weekday",
			modify:  func(c *Config) { c.Week.Shifts[0].Day = "someday" },
			wantErr: `week.shifts[0].day: unknown weekday "someday"`,
		},
		{
			name:    "missing start",
			modify:  func(c *Config) { c.Week.Shifts[0].Start = "" },
			wantErr: "week.shifts[0].start is required",
		},
		{
			name:    "bad start",
			modify:  func(c *Config) { c.Week.Shifts[0].Start = "9am" },
			wantErr: "week.shifts[0].start",
		},
		{
			name:    "bad duration",
			modify:  func(c *Config) { c.Week.Shifts[0].Duration = "8h" },
			wantErr: "week.shifts[0].duration",
		},
		{
			name:    "negative duration",
			modify:  func(c *Config) { c.Week.Shifts[0].Duration = "-PT1H" },
			wantErr: "week.shifts[0].duration must be positive",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level must be one of [debug info warn error]",
		},
		{
			name:    "interval too short",
			modify:  func(c *Config) { c.Watch.Interval = "10ms" },
			wantErr: "watch.interval must be at least 1s",
		},
		{
			name:    "unparseable interval",
			modify:  func(c *Config) { c.Watch.Interval = "often" },
			wantErr: "watch.interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWatchConfig_GetInterval(t *testing.T) {
	tests := []struct {
		interval string
		want     time.Duration
	}{
		{"", time.Minute},
		{"15s", 15 * time.Second},
		{"garbage", time.Minute},
		{"1ms", time.Minute},
	}

	for _, tt := range tests {
		c := WatchConfig{Interval: tt.interval}
		if got := c.GetInterval(); got != tt.want {
			t.Errorf("GetInterval(%q) = %v, want %v", tt.interval, got, tt.want)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{"monday", time.Monday, false},
		{"Sunday", time.Sunday, false},
		{" SAT ", time.Saturday, false},
		{"wed", time.Wednesday, false},
		{"mo", 0, true},
		{"", 0, true},
		{"funday", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
