package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/workweek/internal/config"
	"github.com/username/workweek/internal/schedule"
)

var (
	configPath string
	cfg        *config.Config
	cfgErr     error
	logger     *zap.Logger = zap.NewNop()
	out        io.Writer   = os.Stdout
	envLoaded  bool
)

func main() {
	// Variables from .env feed the WORKWEEK_* overrides; the file is optional
	envLoaded = godotenv.Load() == nil

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workweek",
		Short: "Working-time arithmetic over a weekly schedule",
		Long: "Compute working time between instants and offset instants by working time,\n" +
			"skipping the hours outside the weekly shifts defined in the config.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, cfgErr = config.Load(configPath)
			switch {
			case cfgErr != nil:
				initLogger("info")
			case cfg.Log.File != "":
				var err error
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			default:
				initLogger(cfg.Log.Level)
			}

			if envLoaded {
				logger.Debug("Loaded environment from .env")
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./config.yaml, $HOME/.workweek, /etc/workweek)")

	rootCmd.AddCommand(
		shiftsCmd(),
		diffCmd(),
		addCmd(),
		nextCmd(),
		prevCmd(),
		statusCmd(),
		reportCmd(),
		watchCmd(),
	)

	return rootCmd
}

// loadService builds the schedule service from the loaded config
func loadService() (*schedule.Service, error) {
	if cfgErr != nil {
		return nil, fmt.Errorf("failed to load config: %w", cfgErr)
	}

	week, err := schedule.Build(cfg.Week, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build week: %w", err)
	}

	return schedule.NewService(week, logger), nil
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
