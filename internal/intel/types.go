// Package intel derives human-readable intelligence from scored
// opportunities: signal levels, summaries, ranking reasons, builder Q&A,
// command-center KPIs and the insight feed.
//
// Every function in this package is pure. Inputs are never mutated and no
// state survives between calls, so callers may invoke them concurrently and
// cache results keyed on input.
package intel

import (
	"fmt"
	"strings"
)

// Level is an ordinal classification of a 0-100 score.
type Level string

// Demand levels.
const (
	DemandHigh Level = "High"
	DemandMed  Level = "Med"
	DemandLow  Level = "Low"
)

// Momentum levels, keyed on the trend score.
const (
	MomentumRising Level = "Rising"
	MomentumStable Level = "Stable"
	MomentumFading Level = "Fading"
)

// Buildability levels, keyed on the feasibility score.
const (
	BuildSoloFriendly Level = "Solo-friendly"
	BuildComplex      Level = "Complex"
	BuildHard         Level = "Hard"
)

// Signals is the classified view of one opportunity's scoring.
type Signals struct {
	Demand       Level `json:"demand"`
	Momentum     Level `json:"momentum"`
	Buildability Level `json:"buildability"`
}

// InsightType tags an insight for presentation.
type InsightType string

// Insight types.
const (
	InsightHot     InsightType = "hot"
	InsightRising  InsightType = "rising"
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

// InsightTypes lists every insight type in feed priority order.
var InsightTypes = []InsightType{InsightHot, InsightRising, InsightWarning, InsightInfo}

// ParseInsightType validates a user-supplied insight type.
func ParseInsightType(s string) (InsightType, error) {
	for _, t := range InsightTypes {
		if string(t) == strings.ToLower(strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown insight type %q (want one of hot, rising, warning, info)", s)
}

// Insight is one entry of the command-center narrative feed.
type Insight struct {
	ID            string      `json:"id"`
	Icon          string      `json:"icon"`
	Text          string      `json:"text"`
	OpportunityID string      `json:"opportunity_id"`
	Type          InsightType `json:"type"`
}

// Highlight identifies the top-scoring opportunity in a collection.
type Highlight struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// KPIs are the command-center summary statistics.
type KPIs struct {
	Total         int        `json:"total"`
	AvgDemand     float64    `json:"avg_demand"`
	TrendingCount int        `json:"trending_count"`
	Highest       *Highlight `json:"highest"`
}

// QA is one builder question with its answer and the evidence behind it.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Why      string `json:"why"`
}
