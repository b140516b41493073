package intel

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

// Insight feed bounds. Only the first InsightCandidates records are
// examined, in caller order, and at most MaxInsights are returned.
const (
	InsightCandidates = 5
	MaxInsights       = 6
)

// InsightRule turns the signals of one opportunity into an insight. Rules are
// evaluated as a cascade: the first match produces the only insight for that
// opportunity.
type InsightRule struct {
	Kind  string
	Icon  string
	Type  InsightType
	Match func(s Signals) bool
	Text  func(name string, s Signals) string
}

// DefaultInsightRules is the built-in cascade, highest priority first.
var DefaultInsightRules = []InsightRule{
	{
		Kind:  "hot",
		Icon:  "🔥",
		Type:  InsightHot,
		Match: func(s Signals) bool { return s.Demand == DemandHigh && s.Momentum == MomentumRising },
		Text: func(name string, _ Signals) string {
			return fmt.Sprintf("%s shows strong demand and rising momentum across all sources", name)
		},
	},
	{
		Kind:  "stable",
		Icon:  "📈",
		Type:  InsightInfo,
		Match: func(s Signals) bool { return s.Demand == DemandHigh && s.Momentum == MomentumStable },
		Text: func(name string, _ Signals) string {
			return fmt.Sprintf("%s has high demand but trend momentum is flattening", name)
		},
	},
	{
		Kind:  "fading",
		Icon:  "⚠️",
		Type:  InsightWarning,
		Match: func(s Signals) bool { return s.Demand == DemandHigh && s.Momentum == MomentumFading },
		Text: func(name string, _ Signals) string {
			return fmt.Sprintf("%s has near-max demand but limited growth signals", name)
		},
	},
	{
		Kind:  "rising",
		Icon:  "⭐",
		Type:  InsightRising,
		Match: func(s Signals) bool { return s.Demand == DemandMed && s.Momentum == MomentumRising },
		Text: func(name string, _ Signals) string {
			return fmt.Sprintf("%s is gaining momentum with steady demand growth", name)
		},
	},
	{
		Kind:  "solo",
		Icon:  "🎯",
		Type:  InsightInfo,
		Match: func(s Signals) bool { return s.Buildability == BuildSoloFriendly && s.Demand != DemandLow },
		Text: func(name string, s Signals) string {
			return fmt.Sprintf("%s is highly feasible for solo builders with %s demand", name, strings.ToLower(string(s.Demand)))
		},
	},
}

// GenerateInsights builds the insight feed with the default rule cascade.
// The caller is responsible for ordering opps by rank; no sorting happens
// here.
func GenerateInsights(opps []opportunity.Opportunity) []Insight {
	return GenerateInsightsWith(DefaultInsightRules, opps)
}

// GenerateInsightsWith runs an explicit rule cascade over the leading
// candidates.
func GenerateInsightsWith(rules []InsightRule, opps []opportunity.Opportunity) []Insight {
	candidates := opps
	if len(candidates) > InsightCandidates {
		candidates = candidates[:InsightCandidates]
	}

	insights := make([]Insight, 0, len(candidates))
	for i := range candidates {
		o := &candidates[i]
		signals := Classify(o.Scoring)
		for _, r := range rules {
			if !r.Match(signals) {
				continue
			}
			insights = append(insights, Insight{
				ID:            fmt.Sprintf("insight-%s-%s", o.ID, r.Kind),
				Icon:          r.Icon,
				Text:          r.Text(o.Name, signals),
				OpportunityID: o.ID,
				Type:          r.Type,
			})
			break
		}
	}

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}
