package intel

import (
	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

func scored(name string, demand, feasibility, competition, trend, composite float64) opportunity.Opportunity {
	return opportunity.Opportunity{
		ID:       "id-" + name,
		Name:     name,
		Category: "smart_home_device",
		Score:    composite,
		Scoring: opportunity.ScoringDetails{
			Demand:      demand,
			Feasibility: feasibility,
			Competition: competition,
			Trend:       trend,
			Composite:   composite,
		},
	}
}

func githubSource(meta opportunity.Metadata) opportunity.DataSource {
	return opportunity.DataSource{
		Name:       "github",
		SourceType: opportunity.SourceType{Kind: opportunity.KindGitHub},
		DataPoints: 1,
		Metadata:   meta,
	}
}
