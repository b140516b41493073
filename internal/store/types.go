// Package store provides SQLite access for nichewatch KPI snapshots.
package store

import "time"

// Snapshot is one recorded run of the track command.
type Snapshot struct {
	ID      int64     `json:"id"`
	RunID   string    `json:"run_id"`
	TakenAt time.Time `json:"taken_at"`
	Version string    `json:"version"`
	Source  string    `json:"source"`
}

// KPIRow holds the command-center KPIs captured in a snapshot.
type KPIRow struct {
	SnapshotID    int64   `json:"snapshot_id"`
	Total         int     `json:"total"`
	AvgDemand     float64 `json:"avg_demand"`
	TrendingCount int     `json:"trending_count"`
	HighestID     string  `json:"highest_id,omitempty"`
	HighestName   string  `json:"highest_name,omitempty"`
	HighestScore  float64 `json:"highest_score"`
}

// InsightRow is one insight recorded alongside a snapshot.
type InsightRow struct {
	SnapshotID    int64  `json:"snapshot_id"`
	InsightID     string `json:"insight_id"`
	OpportunityID string `json:"opportunity_id"`
	Type          string `json:"type"`
	Text          string `json:"text"`
}

// SnapshotKPIs pairs a snapshot with its KPIs for history listings.
type SnapshotKPIs struct {
	Snapshot Snapshot `json:"snapshot"`
	KPIs     KPIRow   `json:"kpis"`
}
