//go:build windows
// +build windows

package daemon

import (
	_ "embed"
	"sync"
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

//go:embed clock.ico
var clockIcon []byte

// TrayApp represents system tray application
type TrayApp struct {
	daemon   *Daemon
	logger   *zap.Logger
	quit     chan struct{}
	stopOnce sync.Once
	ready    chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
		ready:  make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetIcon(clockIcon)
	systray.SetTitle("WW")
	systray.SetTooltip("Workweek")

	mStatus := systray.AddMenuItem("Status", "Show current status")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")
	close(t.ready)

	// Start watch loop in background
	go t.daemon.run()

	go func() {
		for {
			select {
			case <-mStatus.ClickedCh:
				t.logger.Info("Status clicked from tray")
				t.showStatus()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	t.stopOnce.Do(func() {
		close(t.quit)
	})
}

// SetStatus updates the tray tooltip
func (t *TrayApp) SetStatus(text string) {
	select {
	case <-t.ready:
		systray.SetTooltip(text)
	default:
	}
}

// ShowNotification shows a notification (Windows only)
func (t *TrayApp) ShowNotification(title, message string) {
	// fyne.io/systray has no balloon notifications
	t.logger.Info("Notification", zap.String("title", title), zap.String("message", message))
}

func (t *TrayApp) showStatus() {
	message := FormatStatus(t.daemon.CurrentStatus())
	systray.SetTooltip(message)
	showMessageBox("Workweek Status", message)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}
