package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/username/workweek/internal/schedule"
	"github.com/username/workweek/pkg/dateutil"
	"go.uber.org/zap"
)

// Transition is a change of working state seen between two checks
type Transition int

const (
	NoChange Transition = iota
	ShiftStarted
	ShiftEnded
)

func (t Transition) String() string {
	switch t {
	case ShiftStarted:
		return "shift started"
	case ShiftEnded:
		return "shift ended"
	}
	return "no change"
}

// Daemon watches the calendar and reports when shifts start and end
type Daemon struct {
	service    *schedule.Service
	interval   time.Duration
	systemTray bool // Show system tray icon
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	trayApp    *TrayApp
	now        func() time.Time

	mu      sync.Mutex // Guards the fields below against overlapping checks
	last    schedule.Status
	checked bool
}

// NewDaemon creates a new daemon instance
func NewDaemon(service *schedule.Service, interval time.Duration, systemTray bool, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		service:    service,
		interval:   interval,
		systemTray: systemTray,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		now:        time.Now,
	}
}

// Start starts the daemon and blocks until it is stopped
func (d *Daemon) Start() error {
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			// Fall back to console mode
			return d.startWithoutTray()
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	return d.startWithoutTray()
}

func (d *Daemon) startWithoutTray() error {
	d.logger.Info("Starting console mode")
	d.run()
	return nil
}

// run is the watch loop, called from the tray or standalone
func (d *Daemon) run() {
	d.logger.Info("Watching working hours",
		zap.Duration("interval", d.interval),
		zap.String("week_duration", d.service.WeekDuration().String()))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	d.check(d.now())

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			d.logger.Info("Daemon stopped")
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return

		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			d.Stop()
			return

		case <-ticker.C:
			d.check(d.now())
		}
	}
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// RunWithTimeout runs the watch loop until timeout elapses or Stop is called
func (d *Daemon) RunWithTimeout(timeout time.Duration) error {
	d.logger.Info("Daemon started with timeout",
		zap.Duration("timeout", timeout),
		zap.Duration("interval", d.interval))

	timeoutCtx, timeoutCancel := context.WithTimeout(d.ctx, timeout)
	defer timeoutCancel()

	d.check(d.now())

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-timeoutCtx.Done():
			d.logger.Info("Daemon stopped (timeout reached)")
			return nil

		case <-ticker.C:
			d.check(d.now())
		}
	}
}

// check computes the status at now and logs a transition against the previous check
func (d *Daemon) check(now time.Time) Transition {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := d.service.Status(now)
	transition := NoChange

	switch {
	case !d.checked:
		d.logger.Info("Initial status", statusFields(status)...)
	case status.Working && (!d.last.Working || !status.Current.Start.Equal(d.last.Current.Start)):
		transition = ShiftStarted
	case !status.Working && d.last.Working:
		transition = ShiftEnded
	}

	if transition != NoChange {
		d.logger.Info("Working state changed",
			append([]zap.Field{zap.Stringer("transition", transition)}, statusFields(status)...)...)
		if d.trayApp != nil {
			d.trayApp.ShowNotification(transition.String(), FormatStatus(status))
		}
	}
	if d.trayApp != nil {
		d.trayApp.SetStatus(FormatStatus(status))
	}

	d.last = status
	d.checked = true
	return transition
}

// CurrentStatus returns the status at the current time
func (d *Daemon) CurrentStatus() schedule.Status {
	return d.service.Status(d.now())
}

func statusFields(status schedule.Status) []zap.Field {
	fields := []zap.Field{
		zap.Time("at", status.At),
		zap.Bool("working", status.Working),
	}
	if status.Working {
		fields = append(fields,
			zap.Time("shift_end", status.Current.End()),
			zap.String("remaining", status.Remaining.String()))
	}
	if change, ok := status.NextChange(); ok {
		fields = append(fields,
			zap.Time("next_change", change),
			zap.Duration("wait_duration", change.Sub(status.At)))
	}
	return fields
}

// FormatStatus renders a status as a short human-readable text
func FormatStatus(status schedule.Status) string {
	var text string
	if status.Working {
		text = fmt.Sprintf("Working until %s (%s left)",
			status.Current.End().Format("Mon 15:04"),
			status.Remaining.Std())
	} else {
		text = "Off work"
	}

	if status.HasNext {
		layout := "Mon 2006-01-02 15:04"
		if dateutil.IsSameDay(status.Next.Start, status.At) {
			layout = "today 15:04"
		}
		text += fmt.Sprintf("\nNext shift: %s, %s",
			status.Next.Start.Format(layout),
			status.Next.Duration.Std())
	} else {
		text += "\nNo shifts scheduled"
	}
	return text
}
