package intel

import (
	"sort"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

// CommandCenter is the collection-level report shown on the overview.
type CommandCenter struct {
	KPIs     KPIs                      `json:"kpis"`
	Insights []Insight                 `json:"insights"`
	Top      []opportunity.Opportunity `json:"top"`
}

// Detail is the per-opportunity report shown when a record is opened.
type Detail struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Score     float64  `json:"score"`
	Signals   Signals  `json:"signals"`
	Summary   string   `json:"summary"`
	Reasons   []string `json:"reasons"`
	Questions []QA     `json:"questions"`
	Evidence  Evidence `json:"evidence"`
	Actions   []Action `json:"actions"`
}

// Engine bundles the configurable parts of derivation. The zero value is not
// usable; construct one with NewEngine.
type Engine struct {
	summarizer Summarizer
}

// NewEngine creates an engine using the given summarizer. A nil summarizer
// selects the catalog summarizer over DefaultCatalog.
func NewEngine(s Summarizer) *Engine {
	if s == nil {
		s = &CatalogSummarizer{Catalog: DefaultCatalog}
	}
	return &Engine{summarizer: s}
}

// CommandCenter derives KPIs and insights from opps, which must already be in
// rank order. topN limits the Top slice; zero or negative keeps every record.
func (e *Engine) CommandCenter(opps []opportunity.Opportunity, topN int) CommandCenter {
	cc := CommandCenter{
		KPIs:     ComputeKPIs(opps),
		Insights: GenerateInsights(opps),
		Top:      opps,
	}
	if topN > 0 && len(cc.Top) > topN {
		cc.Top = cc.Top[:topN]
	}
	return cc
}

// Explain derives the full detail report for one opportunity.
func (e *Engine) Explain(o *opportunity.Opportunity) Detail {
	return Detail{
		ID:        o.ID,
		Name:      o.Name,
		Category:  o.Category,
		Score:     o.Score,
		Signals:   Classify(o.Scoring),
		Summary:   e.summarizer.Summarize(o),
		Reasons:   RankingReasons(o),
		Questions: BuilderQuestions(o),
		Evidence:  CollectEvidence(o),
		Actions:   Actions(o),
	}
}

// SortByScore returns a copy of opps ordered by Score, highest first. Equal
// scores keep their input order. The input slice is left untouched.
func SortByScore(opps []opportunity.Opportunity) []opportunity.Opportunity {
	sorted := make([]opportunity.Opportunity, len(opps))
	copy(sorted, opps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}
