package intel

import (
	"fmt"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

const (
	massMarketStars     = 1000
	maintenanceIssueCap = 20
)

// BuilderQuestions answers the six questions a solo builder asks before
// committing to an opportunity. The result always has six entries in a fixed
// order: pain, momentum, buildability, market size, upside, risk.
func BuilderQuestions(o *opportunity.Opportunity) []QA {
	gh := o.GitHub()
	stars := gh.Int("stars")
	openIssues := gh.Int("open_issues")
	s := o.Scoring

	market, appeal := "Niche", "focused"
	if stars > massMarketStars {
		market, appeal = "Mass market", "broad"
	}

	risk := "Manageable"
	if openIssues > maintenanceIssueCap {
		risk = "High maintenance burden"
	}

	return []QA{
		{
			Question: "What user pain does this solve?",
			Answer:   fmt.Sprintf("Integration for %s in Home Assistant ecosystem", o.Name),
			Why:      fmt.Sprintf("Based on %d GitHub stars and community interest", stars),
		},
		{
			Question: "Is momentum rising or fading?",
			Answer:   string(MomentumLevel(s.Trend)),
			Why:      fmt.Sprintf("Trend score: %.1f/100", s.Trend),
		},
		{
			Question: "Can I build this solo?",
			Answer:   string(BuildabilityLevel(s.Feasibility)),
			Why:      fmt.Sprintf("Feasibility score: %.1f/100", s.Feasibility),
		},
		{
			Question: "Is this a niche or mass market?",
			Answer:   market,
			Why:      fmt.Sprintf("%d stars indicates %s appeal", stars, appeal),
		},
		{
			Question: "What's the upside?",
			Answer:   fmt.Sprintf("Score: %.1f/100", o.Score),
			Why: fmt.Sprintf("Composite of demand (%.1f), feasibility (%.1f), competition (%.1f)",
				s.Demand, s.Feasibility, s.Competition),
		},
		{
			Question: "What's the risk?",
			Answer:   risk,
			Why:      fmt.Sprintf("%d open issues", openIssues),
		},
	}
}
