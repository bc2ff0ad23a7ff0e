//go:build !windows
// +build !windows

package daemon

import (
	"errors"

	"go.uber.org/zap"
)

// ErrTrayUnsupported is returned by NewTrayApp outside Windows
var ErrTrayUnsupported = errors.New("system tray is only supported on Windows")

// TrayApp is a placeholder on platforms without tray support
type TrayApp struct {
	logger *zap.Logger
}

// NewTrayApp always fails on this platform
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return nil, ErrTrayUnsupported
}

func (t *TrayApp) Run() {}

func (t *TrayApp) Stop() {}

func (t *TrayApp) SetStatus(text string) {}

func (t *TrayApp) ShowNotification(title, message string) {}
