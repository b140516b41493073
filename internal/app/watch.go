package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"time"

	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/blackwell-systems/nichewatch/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	watchInterval string
	watchQuiet    bool
	watchNotify   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-read the export periodically and alert on insight changes",
	Long: `Run a foreground monitor that re-reads the opportunity export at a fixed
interval and re-derives the command center. When insights appear or clear,
the highest-upside opportunity changes, or average demand shifts, alerts
are printed and optionally sent as desktop notifications.

Examples:
  nichewatch watch                     # check every 10 minutes (ctrl-c to stop)
  nichewatch watch --interval 1m       # check every minute
  nichewatch watch --notify --quiet    # desktop notifications only`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInterval, "interval", "10m", "Check interval as duration string (e.g. 1m, 1h)")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output")
	watchCmd.Flags().BoolVar(&watchNotify, "notify", false, "Send desktop notifications for alerts")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval, err := time.ParseDuration(watchInterval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", watchInterval, err)
	}
	if interval < 30*time.Second {
		return fmt.Errorf("interval must be at least 30s, got %s", interval)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
	defer stop()

	w := cmd.OutOrStdout()
	alertFn := func(a watcher.Alert) {
		s.log.Info("alert", slog.String("level", a.Level), slog.String("title", a.Title))
		if watchNotify {
			_ = watcher.Notify(a)
		}
		if !watchQuiet {
			printAlert(w, a)
		}
	}

	wt := watcher.New(s.snapshotFunc(), interval, alertFn)
	initial, err := wt.Prime(ctx)
	if err != nil {
		return err
	}
	if !watchQuiet {
		fmt.Fprintf(w, "nichewatch watching %s (checking every %s)\n", s.source, interval)
		fmt.Fprintf(w, "[%s] %s Baseline: %d opportunities, %d insights\n",
			initial.Timestamp.Format("15:04:05"), checkMark(), initial.KPIs.Total, len(initial.Insights))
	}

	err = wt.Run(ctx)
	if errors.Is(err, context.Canceled) {
		if !watchQuiet {
			fmt.Fprintln(w, "\nStopped.")
		}
		return nil
	}
	return err
}

// snapshotFunc re-reads the session's export paths on every call and derives
// the command center from the fresh records.
func (s *session) snapshotFunc() watcher.SnapshotFunc {
	load := s.loader()
	return func(ctx context.Context) (*watcher.State, error) {
		opps, err := load(ctx)
		if err != nil {
			return nil, err
		}
		cc := s.engine.CommandCenter(intel.SortByScore(opps), 0)
		return watcher.NewState(cc, time.Now()), nil
	}
}

// printAlert formats an alert for the terminal.
func printAlert(w io.Writer, a watcher.Alert) {
	title := a.Title
	if a.Subject != "" {
		title += ": " + a.Subject
	}
	fmt.Fprintf(w, "[%s] %s %s\n", a.Time.Format("15:04:05"), alertIcon(a.Level), title)
	if a.Message != "" {
		fmt.Fprintf(w, "         %s\n", a.Message)
	}
}

// alertIcon returns the terminal indicator for an alert level.
func alertIcon(level string) string {
	switch level {
	case "critical":
		return "\xf0\x9f\x94\xa5" // fire
	case "warning":
		return "\xe2\x9a\xa0\xef\xb8\x8f" // warning sign
	case "info":
		return "\xe2\x9c\x93" // check mark
	default:
		return " "
	}
}

// checkMark returns a terminal check mark indicator.
func checkMark() string {
	return "\xe2\x9c\x93"
}
