package intel

import (
	"fmt"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

// MaxRankingReasons bounds the output of RankingReasons.
const MaxRankingReasons = 3

// LowCompetitionThreshold is the competition score at or below which an
// opportunity counts as uncontested.
const LowCompetitionThreshold = 40.0

// reasonRule appends a reason when its condition holds. Rules are listed in
// priority order.
type reasonRule struct {
	applies func(s opportunity.ScoringDetails) bool
	format  func(s opportunity.ScoringDetails) string
}

var reasonRules = []reasonRule{
	{
		applies: func(s opportunity.ScoringDetails) bool { return s.Demand >= StrongThreshold },
		format: func(s opportunity.ScoringDetails) string {
			return fmt.Sprintf("Strong demand signal (%.1f/100)", s.Demand)
		},
	},
	{
		applies: func(s opportunity.ScoringDetails) bool { return s.Feasibility >= StrongThreshold },
		format: func(s opportunity.ScoringDetails) string {
			return fmt.Sprintf("High feasibility for solo builder (%.1f/100)", s.Feasibility)
		},
	},
	{
		applies: func(s opportunity.ScoringDetails) bool { return s.Competition <= LowCompetitionThreshold },
		format: func(s opportunity.ScoringDetails) string {
			return fmt.Sprintf("Low competition (%.1f/100)", s.Competition)
		},
	},
	{
		applies: func(s opportunity.ScoringDetails) bool { return s.Trend >= StrongThreshold },
		format: func(s opportunity.ScoringDetails) string {
			return fmt.Sprintf("Rising trend (%.1f/100)", s.Trend)
		},
	},
}

// RankingReasons explains why an opportunity ranks where it does. The result
// always holds between one and MaxRankingReasons entries.
func RankingReasons(o *opportunity.Opportunity) []string {
	s := o.Scoring
	reasons := make([]string, 0, MaxRankingReasons)
	for _, r := range reasonRules {
		if len(reasons) == MaxRankingReasons {
			break
		}
		if r.applies(s) {
			reasons = append(reasons, r.format(s))
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("Balanced opportunity with composite score of %.1f/100", s.Composite))
	}
	return reasons
}
