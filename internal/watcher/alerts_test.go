package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

var at = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func makeState() *State {
	return &State{
		Timestamp: at,
		KPIs: intel.KPIs{
			Total:         3,
			AvgDemand:     70,
			TrendingCount: 1,
			Highest:       &intel.Highlight{ID: "a", Name: "Alpha", Score: 88},
		},
		Insights: []intel.Insight{
			{ID: "insight-a-hot", Type: intel.InsightHot, Text: "Alpha shows strong demand and rising momentum across all sources", OpportunityID: "a"},
		},
		Names: map[string]string{"a": "Alpha"},
	}
}

func TestCompare_NoChanges(t *testing.T) {
	alerts := Compare(makeState(), makeState(), at)
	if len(alerts) != 0 {
		t.Errorf("expected no alerts, got %d: %+v", len(alerts), alerts)
	}
}

func TestCompare_NewInsight(t *testing.T) {
	prev := makeState()
	curr := makeState()
	curr.Insights = append(curr.Insights, intel.Insight{
		ID: "insight-b-rising", Type: intel.InsightRising, Text: "Beta is gaining momentum with steady demand growth",
	})

	alerts := Compare(prev, curr, at)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d: %+v", len(alerts), alerts)
	}
	if alerts[0].Level != "warning" || alerts[0].Title != "New rising insight" {
		t.Errorf("unexpected alert: %+v", alerts[0])
	}
	// Beta is not in Names, so the subject falls back to the insight type.
	if alerts[0].Subject != "rising insight" {
		t.Errorf("subject = %q, want %q", alerts[0].Subject, "rising insight")
	}
	if !alerts[0].Time.Equal(at) {
		t.Errorf("alert time = %v, want %v", alerts[0].Time, at)
	}
}

func TestCompare_NewHotInsightIsCritical(t *testing.T) {
	prev := makeState()
	prev.Insights = nil
	curr := makeState()

	alerts := Compare(prev, curr, at)
	if len(alerts) != 1 || alerts[0].Level != "critical" {
		t.Fatalf("expected one critical alert, got %+v", alerts)
	}
	if alerts[0].Subject != "Alpha" {
		t.Errorf("subject = %q, want Alpha", alerts[0].Subject)
	}
}

func TestCompare_InsightCleared(t *testing.T) {
	prev := makeState()
	curr := makeState()
	curr.Insights = nil

	alerts := Compare(prev, curr, at)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Title != "Insight cleared" || alerts[0].Level != "info" || alerts[0].Subject != "Alpha" {
		t.Errorf("unexpected alert: %+v", alerts[0])
	}
}

func TestDiffInsights(t *testing.T) {
	a := intel.Insight{ID: "insight-a-hot"}
	b := intel.Insight{ID: "insight-b-rising"}
	c := intel.Insight{ID: "insight-c-warning"}

	added, cleared := DiffInsights([]intel.Insight{a, b}, []intel.Insight{b, c})
	if len(added) != 1 || added[0].ID != c.ID {
		t.Errorf("added = %+v, want [%s]", added, c.ID)
	}
	if len(cleared) != 1 || cleared[0].ID != a.ID {
		t.Errorf("cleared = %+v, want [%s]", cleared, a.ID)
	}

	added, cleared = DiffInsights(nil, nil)
	if added != nil || cleared != nil {
		t.Errorf("expected no changes, got %+v / %+v", added, cleared)
	}
}

func TestCompare_NewHighestUpside(t *testing.T) {
	prev := makeState()
	curr := makeState()
	curr.KPIs.Highest = &intel.Highlight{ID: "b", Name: "Beta", Score: 91}

	alerts := Compare(prev, curr, at)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Message != "Beta now leads with 91.0" || alerts[0].Subject != "Beta" {
		t.Errorf("unexpected alert: %+v", alerts[0])
	}
}

func TestCompare_DemandShift(t *testing.T) {
	tests := []struct {
		name   string
		avg    float64
		alerts int
	}{
		{"small rise", 74.9, 0},
		{"threshold rise", 75, 1},
		{"large fall", 60, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			curr := makeState()
			curr.KPIs.AvgDemand = tc.avg
			alerts := Compare(makeState(), curr, at)
			if len(alerts) != tc.alerts {
				t.Errorf("expected %d alerts, got %+v", tc.alerts, alerts)
			}
		})
	}
}

func TestCompare_DemandShiftIgnoredFromEmpty(t *testing.T) {
	prev := &State{}
	curr := makeState()
	curr.Insights = nil

	for _, a := range Compare(prev, curr, at) {
		if a.Title == "Average demand shift" {
			t.Errorf("demand shift should not fire from an empty export: %+v", a)
		}
	}
}

func TestCompare_OrderedBySeverity(t *testing.T) {
	prev := makeState()
	prev.Insights = nil
	curr := makeState()
	curr.KPIs.Total = 4
	curr.KPIs.Highest = &intel.Highlight{ID: "c", Name: "Gamma", Score: 95}

	alerts := Compare(prev, curr, at)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %+v", alerts)
	}
	want := []string{"critical", "warning", "info"}
	for i, a := range alerts {
		if a.Level != want[i] {
			t.Errorf("alerts[%d].Level = %q, want %q", i, a.Level, want[i])
		}
	}
}

func TestWatcher_CheckDeduplicates(t *testing.T) {
	states := []*State{makeState(), makeState(), makeState()}
	states[1].KPIs.Total = 5
	states[2].KPIs.Total = 5
	i := 0
	snap := func(context.Context) (*State, error) {
		s := states[i]
		if i < len(states)-1 {
			i++
		}
		return s, nil
	}

	w := New(snap, time.Minute, nil)
	w.now = func() time.Time { return at }
	if _, err := w.Prime(context.Background()); err != nil {
		t.Fatalf("prime: %v", err)
	}

	if got := w.Check(context.Background()); len(got) != 1 {
		t.Fatalf("first check: expected 1 alert, got %+v", got)
	}
	// Third state equals the second, so nothing changed.
	if got := w.Check(context.Background()); len(got) != 0 {
		t.Errorf("second check: expected no alerts, got %+v", got)
	}
}

func TestWatcher_CheckSnapshotError(t *testing.T) {
	w := New(func(context.Context) (*State, error) {
		return nil, errors.New("boom")
	}, time.Minute, nil)

	alerts := w.Check(context.Background())
	if len(alerts) != 1 || alerts[0].Title != "Snapshot failed" {
		t.Fatalf("expected snapshot failure alert, got %+v", alerts)
	}
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New(func(context.Context) (*State, error) { return makeState(), nil }, time.Hour, nil)
	if err := w.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestWatcher_RunPrimeError(t *testing.T) {
	w := New(func(context.Context) (*State, error) {
		return nil, errors.New("missing export")
	}, time.Hour, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Error("expected error when the initial snapshot fails")
	}
}

func TestNewState(t *testing.T) {
	cc := intel.CommandCenter{
		KPIs:     intel.KPIs{Total: 2},
		Insights: []intel.Insight{{ID: "x"}},
		Top:      []opportunity.Opportunity{{ID: "op-1", Name: "Frigate NVR"}},
	}
	s := NewState(cc, at)
	if s.KPIs.Total != 2 || len(s.Insights) != 1 || !s.Timestamp.Equal(at) {
		t.Errorf("unexpected state: %+v", s)
	}
	if s.Names["op-1"] != "Frigate NVR" {
		t.Errorf("Names = %v", s.Names)
	}
}
