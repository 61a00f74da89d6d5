// Package notification rings the bell and sends desktop notifications
// through the beeep library on macOS, Linux and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/calccraft/internal/logger"
)

// AppName is the title used for CalcCraft notifications.
const AppName = "CalcCraft"

var (
	notify = beeep.Notify
	beep   = beeep.Beep
)

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// SetBeeper replaces the function used to ring the bell.
func SetBeeper(fn func(freq float64, duration int) error) {
	beep = fn
}

// ResetNotifier restores the beeep implementations.
func ResetNotifier() {
	notify = beeep.Notify
	beep = beeep.Beep
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: title=%q message=%q", title, message)
	// empty icon lets beeep pick the platform default
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// Bell rings the default system beep, used when an evaluation fails.
func Bell() error {
	err := beep(beeep.DefaultFreq, beeep.DefaultDuration)
	if err != nil {
		logger.Debug("Notification: bell failed: %v", err)
	}
	return err
}

// ResultCopied tells the user a result landed on the clipboard.
func ResultCopied(result string) error {
	return Send(AppName, "Copied "+result)
}
