package watcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

const appName = "nichewatch"

// Host seams, swapped in tests.
var (
	goos       = runtime.GOOS
	lookPath   = exec.LookPath
	runCommand = func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}
)

// fallbackOut receives alerts no desktop notifier could show.
var fallbackOut io.Writer = os.Stderr

// Notify sends a desktop notification for the given alert. On macOS it uses
// osascript, on Linux it tries notify-send. If neither is available, or the
// notifier fails, it falls back to printing to stderr.
func Notify(alert Alert) error {
	var name string
	var args []string
	switch goos {
	case "darwin":
		name, args = "osascript", []string{"-e", macOSScript(alert)}
	case "linux":
		if _, err := lookPath("notify-send"); err != nil {
			return notifyFallback(alert)
		}
		name, args = "notify-send", notifySendArgs(alert)
	default:
		return notifyFallback(alert)
	}

	if err := runCommand(name, args...); err != nil {
		return notifyFallback(alert)
	}
	return nil
}

// macOSScript builds the AppleScript for one alert. The subtitle names the
// opportunity or insight the alert is about and is omitted when there is
// none.
func macOSScript(alert Alert) string {
	script := fmt.Sprintf("display notification %s with title %s",
		appleString(alert.Message), appleString(appName+": "+alert.Title))
	if alert.Subject != "" {
		script += " subtitle " + appleString(alert.Subject)
	}
	return script
}

// notifySendArgs maps the alert level onto a notify-send urgency so hot
// alerts stay on screen until dismissed.
func notifySendArgs(alert Alert) []string {
	summary := alert.Title
	if alert.Subject != "" {
		summary += ": " + alert.Subject
	}
	return []string{"-u", urgency(alert.Level), "-a", appName, summary, alert.Message}
}

func urgency(level string) string {
	switch level {
	case "critical":
		return "critical"
	case "warning":
		return "normal"
	default:
		return "low"
	}
}

// appleString quotes s as an AppleScript string literal.
func appleString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// notifyFallback prints the alert when no desktop notification system is
// available.
func notifyFallback(alert Alert) error {
	subject := ""
	if alert.Subject != "" {
		subject = " (" + alert.Subject + ")"
	}
	_, err := fmt.Fprintf(fallbackOut, "[%s] %s%s: %s\n", alert.Level, alert.Title, subject, alert.Message)
	return err
}
