package intel

import (
	"fmt"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

const (
	maintenanceOpportunityIssues = 10
	monetizableStars             = 500
)

// Action is one suggested path forward for a builder.
type Action struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// Actions returns the three paths forward for o, in fixed order: contribute,
// differentiate, monetize. Only the descriptions depend on the record.
func Actions(o *opportunity.Opportunity) []Action {
	gh := o.GitHub()
	openIssues := gh.Int("open_issues")
	stars := gh.Int("stars")

	contribute := "Stable project with room for enhancements"
	if openIssues > maintenanceOpportunityIssues {
		contribute = fmt.Sprintf("%d open issues suggest maintenance opportunities", openIssues)
	}

	monetize := "Niche opportunity for specialized services"
	if stars > monetizableStars {
		monetize = "Significant user base suggests monetization potential"
	}

	return []Action{
		{
			Title:       "Contribute / Maintain",
			Description: contribute,
			Steps: []string{
				"Review open issues and PRs",
				"Identify quick wins or documentation gaps",
				"Submit quality contributions to build reputation",
			},
		},
		{
			Title:       "Differentiate / Extend",
			Description: "Build complementary tools or enhanced versions",
			Steps: []string{
				"Analyze feature gaps in existing solution",
				"Survey user feedback and feature requests",
				"Build focused extension or alternative approach",
			},
		},
		{
			Title:       "Monetize",
			Description: monetize,
			Steps: []string{
				"Offer premium support or consulting",
				"Create training content or courses",
				"Build SaaS wrapper for non-technical users",
			},
		},
	}
}
