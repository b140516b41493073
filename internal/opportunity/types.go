// Package opportunity defines the scored opportunity records emitted by the
// NicheFinder pipeline, along with total accessors for their open-ended
// metadata and loaders for API exports.
package opportunity

// Opportunity is a single scored integration opportunity as returned by the
// pipeline's /api/opportunities endpoint.
type Opportunity struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Score        float64        `json:"score"`
	Scoring      ScoringDetails `json:"scoring_details"`
	DataSources  []DataSource   `json:"data_sources"`
	DiscoveredAt Timestamp      `json:"discovered_at"`
	Metadata     Metadata       `json:"metadata"`
}

// ScoringDetails is the component score breakdown. Scores are nominally in
// [0, 100] but are not validated.
type ScoringDetails struct {
	Demand      float64 `json:"demand"`
	Feasibility float64 `json:"feasibility"`
	Competition float64 `json:"competition"`
	Trend       float64 `json:"trend"`
	Composite   float64 `json:"composite"`
	Weights     Weights `json:"weights"`
}

// Weights records the weights the pipeline used to build the composite.
// Informational only.
type Weights struct {
	Demand      float64 `json:"demand"`
	Feasibility float64 `json:"feasibility"`
	Competition float64 `json:"competition"`
	Trend       float64 `json:"trend"`
}

// DataSource describes one collector's contribution to an opportunity.
type DataSource struct {
	Name        string     `json:"name"`
	SourceType  SourceType `json:"source_type"`
	CollectedAt Timestamp  `json:"collected_at"`
	DataPoints  int        `json:"data_points"`
	Metadata    Metadata   `json:"metadata"`
}

// FirstSource returns the first data source of the given kind, or nil.
func (o *Opportunity) FirstSource(kinds ...SourceKind) *DataSource {
	for i := range o.DataSources {
		for _, k := range kinds {
			if o.DataSources[i].SourceType.Kind == k {
				return &o.DataSources[i]
			}
		}
	}
	return nil
}

// GitHub returns the metadata of the first GitHub source. A missing source
// yields an empty Metadata, so every accessor falls back to its zero value.
func (o *Opportunity) GitHub() Metadata {
	if ds := o.FirstSource(KindGitHub); ds != nil {
		return ds.Metadata
	}
	return nil
}

// HACS returns the metadata of the first HACS source, or empty metadata.
func (o *Opportunity) HACS() Metadata {
	if ds := o.FirstSource(KindHACS); ds != nil {
		return ds.Metadata
	}
	return nil
}
