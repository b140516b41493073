// Package watcher re-derives the command center from an opportunity export at
// a regular interval and emits alerts when the insight feed or KPIs change.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/blackwell-systems/nichewatch/internal/intel"
)

// State captures the derived view of one export read.
type State struct {
	Timestamp time.Time
	KPIs      intel.KPIs
	Insights  []intel.Insight
	Names     map[string]string // opportunity ID to display name
}

// NewState builds a State from a derived command center. Names are taken
// from cc.Top, so callers wanting every record named should derive it with
// no top-N limit.
func NewState(cc intel.CommandCenter, at time.Time) *State {
	names := make(map[string]string, len(cc.Top))
	for _, o := range cc.Top {
		names[o.ID] = o.Name
	}
	return &State{Timestamp: at, KPIs: cc.KPIs, Insights: cc.Insights, Names: names}
}

// subject names the opportunity behind an insight, falling back to the
// insight type when the record is not in the state.
func (s *State) subject(in intel.Insight) string {
	if name := s.Names[in.OpportunityID]; name != "" {
		return name
	}
	return string(in.Type) + " insight"
}

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Subject string // opportunity or insight the alert is about; may be empty
	Message string
	Time    time.Time
}

// SnapshotFunc reads the export and derives its current state.
type SnapshotFunc func(ctx context.Context) (*State, error)

// Watcher polls a SnapshotFunc at a regular interval and emits alerts when
// notable changes are detected.
type Watcher struct {
	snapshot      SnapshotFunc
	interval      time.Duration
	previous      *State
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts
	now           func() time.Time
}

// New creates a Watcher over the given snapshot source.
func New(snapshot SnapshotFunc, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		snapshot:      snapshot,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
		now:           time.Now,
	}
}

// Prime takes the baseline snapshot without emitting alerts.
func (w *Watcher) Prime(ctx context.Context) (*State, error) {
	s, err := w.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = s
	return s, nil
}

// Run starts the watch loop. It primes the watcher if no baseline exists,
// then checks at every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.previous == nil {
		if _, err := w.Prime(ctx); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, a := range w.Check(ctx) {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single check cycle: takes a new snapshot, compares against
// the previous state, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check(ctx context.Context) []Alert {
	curr, err := w.snapshot(ctx)
	if err != nil {
		return []Alert{{
			Level:   "warning",
			Title:   "Snapshot failed",
			Message: fmt.Sprintf("Could not read opportunity data: %v", err),
			Time:    w.now(),
		}}
	}

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr, w.now())
	}

	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}
