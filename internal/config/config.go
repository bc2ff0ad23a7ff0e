package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/username/workweek/pkg/workweek"
)

const (
	envPrefix       = "WORKWEEK"
	defaultInterval = time.Minute
	minInterval     = time.Second
)

// Config represents application configuration
type Config struct {
	Week  WeekConfig  `mapstructure:"week"`
	Log   LogConfig   `mapstructure:"log"`
	Watch WatchConfig `mapstructure:"watch"`
}

// WeekConfig describes where the weekly shifts come from
type WeekConfig struct {
	Shifts     []ShiftConfig `mapstructure:"shifts" validate:"dive"`
	ShiftsFile string        `mapstructure:"shifts_file"`
}

// ShiftConfig is a single inline shift
type ShiftConfig struct {
	Day      string `mapstructure:"day" validate:"required,weekday"`
	Start    string `mapstructure:"start" validate:"required"`    // HH:MM[:SS[.mmm]]
	Duration string `mapstructure:"duration" validate:"required"` // ISO 8601, e.g. PT8H
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to console
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// WatchConfig represents watch mode configuration
type WatchConfig struct {
	Interval   string `mapstructure:"interval"`
	SystemTray bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, err := ParseWeekday(fl.Field().String())
	return err == nil
}

// Load loads configuration from file and WORKWEEK_* environment variables.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workweek")
		v.AddConfigPath("/etc/workweek")
	}

	// Defaults make the keys visible to AutomaticEnv
	v.SetDefault("week.shifts_file", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("watch.interval", defaultInterval.String())
	v.SetDefault("watch.system_tray", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errors.New(formatValidationErrors(validationErrors))
		}
		return err
	}

	if len(c.Week.Shifts) == 0 && c.Week.ShiftsFile == "" {
		return fmt.Errorf("week.shifts or week.shifts_file is required")
	}

	for i, s := range c.Week.Shifts {
		if _, err := workweek.ParseTimeOfDay(s.Start); err != nil {
			return fmt.Errorf("week.shifts[%d].start: %w", i, err)
		}
		d, err := workweek.ParseDuration(s.Duration)
		if err != nil {
			return fmt.Errorf("week.shifts[%d].duration: %w", i, err)
		}
		if d.Sign() <= 0 {
			return fmt.Errorf("week.shifts[%d].duration must be positive", i)
		}
	}

	if c.Watch.Interval != "" {
		interval, err := time.ParseDuration(c.Watch.Interval)
		if err != nil {
			return fmt.Errorf("watch.interval: %w", err)
		}
		if interval < minInterval {
			return fmt.Errorf("watch.interval must be at least %s", minInterval)
		}
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		case "weekday":
			messages = append(messages, fmt.Sprintf("%s: unknown weekday %q", field, e.Value()))
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return strings.Join(messages, ", ")
}

// GetInterval returns the watch tick interval
func (c *WatchConfig) GetInterval() time.Duration {
	if c.Interval == "" {
		return defaultInterval
	}
	duration, err := time.ParseDuration(c.Interval)
	if err != nil || duration < minInterval {
		return defaultInterval
	}
	return duration
}

// ParseWeekday parses a weekday name ("monday") or its three-letter
// abbreviation ("mon"), case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || (len(name) == 3 && name == full[:3]) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
