package watcher

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/nichewatch/internal/intel"
)

// demandShift is the change in average demand, in points, worth reporting.
const demandShift = 5.0

// Compare detects notable changes between two states and returns alerts,
// most severe first.
func Compare(prev, curr *State, now time.Time) []Alert {
	var alerts []Alert

	alerts = append(alerts, compareInsights(prev, curr, now)...)
	alerts = append(alerts, compareKPIs(prev, curr, now)...)

	order := map[string]int{"critical": 0, "warning": 1, "info": 2}
	sort.SliceStable(alerts, func(i, j int) bool {
		return order[alerts[i].Level] < order[alerts[j].Level]
	})
	return alerts
}

// DiffInsights returns the insights present in curr but not prev, and those
// present in prev but not curr, each in input order. Insights are keyed by
// ID, which encodes the opportunity and rule kind.
func DiffInsights(prev, curr []intel.Insight) (added, cleared []intel.Insight) {
	before := indexInsights(prev)
	after := indexInsights(curr)

	for _, in := range curr {
		if _, ok := before[in.ID]; !ok {
			added = append(added, in)
		}
	}
	for _, in := range prev {
		if _, ok := after[in.ID]; !ok {
			cleared = append(cleared, in)
		}
	}
	return added, cleared
}

// compareInsights reports insights that appeared or cleared between states.
func compareInsights(prev, curr *State, now time.Time) []Alert {
	var alerts []Alert

	added, cleared := DiffInsights(prev.Insights, curr.Insights)
	for _, in := range added {
		alerts = append(alerts, Alert{
			Level:   insightLevel(in.Type),
			Title:   fmt.Sprintf("New %s insight", in.Type),
			Subject: curr.subject(in),
			Message: in.Text,
			Time:    now,
		})
	}
	for _, in := range cleared {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Insight cleared",
			Subject: prev.subject(in),
			Message: in.Text,
			Time:    now,
		})
	}
	return alerts
}

// compareKPIs reports shifts in the aggregate metrics.
func compareKPIs(prev, curr *State, now time.Time) []Alert {
	var alerts []Alert
	p, c := prev.KPIs, curr.KPIs

	if c.Highest != nil && (p.Highest == nil || p.Highest.ID != c.Highest.ID) {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "New highest upside",
			Subject: c.Highest.Name,
			Message: fmt.Sprintf("%s now leads with %.1f", c.Highest.Name, c.Highest.Score),
			Time:    now,
		})
	}

	if d := c.AvgDemand - p.AvgDemand; p.Total > 0 && c.Total > 0 && math.Abs(d) >= demandShift {
		dir := "rose"
		if d < 0 {
			dir = "fell"
		}
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Average demand shift",
			Message: fmt.Sprintf("Average demand %s from %.1f to %.1f", dir, p.AvgDemand, c.AvgDemand),
			Time:    now,
		})
	}

	if c.TrendingCount > p.TrendingCount {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "More trending opportunities",
			Message: fmt.Sprintf("%d trending, up from %d", c.TrendingCount, p.TrendingCount),
			Time:    now,
		})
	}

	if c.Total != p.Total {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Export changed",
			Message: fmt.Sprintf("%d opportunities, previously %d", c.Total, p.Total),
			Time:    now,
		})
	}
	return alerts
}

func insightLevel(t intel.InsightType) string {
	switch t {
	case intel.InsightHot:
		return "critical"
	case intel.InsightWarning, intel.InsightRising:
		return "warning"
	default:
		return "info"
	}
}

func indexInsights(ins []intel.Insight) map[string]struct{} {
	m := make(map[string]struct{}, len(ins))
	for _, in := range ins {
		m[in.ID] = struct{}{}
	}
	return m
}
