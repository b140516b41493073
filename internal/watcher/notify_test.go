package watcher

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

// fakeHost replaces the notifier seams for one test and records every
// command run.
type fakeHost struct {
	calls  [][]string
	runErr error
	stderr bytes.Buffer
}

func useFakeHost(t *testing.T, platform string, hasNotifySend bool) *fakeHost {
	t.Helper()
	h := &fakeHost{}

	origGOOS, origLook, origRun, origOut := goos, lookPath, runCommand, fallbackOut
	t.Cleanup(func() {
		goos, lookPath, runCommand, fallbackOut = origGOOS, origLook, origRun, origOut
	})

	goos = platform
	lookPath = func(file string) (string, error) {
		if hasNotifySend {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("not found")
	}
	runCommand = func(name string, args ...string) error {
		h.calls = append(h.calls, append([]string{name}, args...))
		return h.runErr
	}
	fallbackOut = &h.stderr
	return h
}

var hotAlert = Alert{
	Level:   "critical",
	Title:   "New hot insight",
	Subject: "Frigate NVR",
	Message: "Frigate NVR shows strong demand and rising momentum across all sources",
	Time:    time.Now(),
}

func TestNotify_LinuxUrgencyAndSubject(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"critical", "critical"},
		{"warning", "normal"},
		{"info", "low"},
		{"", "low"},
	}
	for _, tc := range tests {
		t.Run("level="+tc.level, func(t *testing.T) {
			h := useFakeHost(t, "linux", true)
			alert := hotAlert
			alert.Level = tc.level

			if err := Notify(alert); err != nil {
				t.Fatalf("Notify: %v", err)
			}
			want := [][]string{{
				"notify-send", "-u", tc.want, "-a", "nichewatch",
				"New hot insight: Frigate NVR", alert.Message,
			}}
			if !reflect.DeepEqual(h.calls, want) {
				t.Errorf("calls = %q, want %q", h.calls, want)
			}
		})
	}
}

func TestNotify_LinuxWithoutNotifySendFallsBack(t *testing.T) {
	h := useFakeHost(t, "linux", false)

	if err := Notify(hotAlert); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(h.calls) != 0 {
		t.Errorf("expected no commands, got %q", h.calls)
	}
	if got := h.stderr.String(); !strings.HasPrefix(got, "[critical] New hot insight (Frigate NVR): ") {
		t.Errorf("fallback output = %q", got)
	}
}

func TestNotify_MacOSSubtitle(t *testing.T) {
	h := useFakeHost(t, "darwin", false)

	if err := Notify(hotAlert); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(h.calls) != 1 || h.calls[0][0] != "osascript" || h.calls[0][1] != "-e" {
		t.Fatalf("calls = %q", h.calls)
	}
	want := `display notification "Frigate NVR shows strong demand and rising momentum across all sources" ` +
		`with title "nichewatch: New hot insight" subtitle "Frigate NVR"`
	if h.calls[0][2] != want {
		t.Errorf("script = %s\nwant     %s", h.calls[0][2], want)
	}
}

func TestMacOSScript_QuotesAndOmitsEmptySubtitle(t *testing.T) {
	got := macOSScript(Alert{Title: "Export changed", Message: `say "hi" \ bye`})
	want := `display notification "say \"hi\" \\ bye" with title "nichewatch: Export changed"`
	if got != want {
		t.Errorf("script = %s\nwant     %s", got, want)
	}
}

func TestNotify_CommandFailureFallsBack(t *testing.T) {
	h := useFakeHost(t, "darwin", false)
	h.runErr = errors.New("osascript: not allowed")

	if err := Notify(hotAlert); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if !strings.Contains(h.stderr.String(), "New hot insight") {
		t.Errorf("expected fallback output, got %q", h.stderr.String())
	}
}

func TestNotify_OtherOSFallsBack(t *testing.T) {
	h := useFakeHost(t, "windows", true)

	alert := Alert{Level: "info", Title: "Export changed", Message: "12 opportunities, previously 9"}
	if err := Notify(alert); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(h.calls) != 0 {
		t.Errorf("expected no commands, got %q", h.calls)
	}
	if got, want := h.stderr.String(), "[info] Export changed: 12 opportunities, previously 9\n"; got != want {
		t.Errorf("fallback output = %q, want %q", got, want)
	}
}
