package intel

import "github.com/blackwell-systems/nichewatch/internal/opportunity"

// ComputeKPIs aggregates the command-center statistics over every record.
// An empty collection yields all zeros and a nil Highest.
func ComputeKPIs(opps []opportunity.Opportunity) KPIs {
	if len(opps) == 0 {
		return KPIs{}
	}

	var demandSum float64
	trending := 0
	best := 0
	for i := range opps {
		demandSum += opps[i].Scoring.Demand
		if opps[i].Scoring.Trend >= StrongThreshold {
			trending++
		}
		// Strict comparison keeps the first record on ties.
		if opps[i].Score > opps[best].Score {
			best = i
		}
	}

	return KPIs{
		Total:         len(opps),
		AvgDemand:     demandSum / float64(len(opps)),
		TrendingCount: trending,
		Highest: &Highlight{
			ID:    opps[best].ID,
			Name:  opps[best].Name,
			Score: opps[best].Score,
		},
	}
}
