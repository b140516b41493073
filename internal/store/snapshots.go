package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SaveRun records a snapshot with its KPIs and insights in one transaction
// and returns the stored snapshot.
func (db *DB) SaveRun(version, source string, takenAt time.Time, kpis KPIRow, insights []InsightRow) (*Snapshot, error) {
	snap := &Snapshot{
		RunID:   uuid.NewString(),
		TakenAt: takenAt.UTC().Truncate(time.Second),
		Version: version,
		Source:  source,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		"INSERT INTO snapshots (run_id, taken_at, version, source) VALUES (?, ?, ?, ?)",
		snap.RunID, snap.TakenAt.Format(time.RFC3339), snap.Version, snap.Source,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting snapshot: %w", err)
	}
	if snap.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		`INSERT INTO kpi_snapshots
		(snapshot_id, total, avg_demand, trending_count, highest_id, highest_name, highest_score)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, kpis.Total, kpis.AvgDemand, kpis.TrendingCount,
		nullString(kpis.HighestID), nullString(kpis.HighestName), kpis.HighestScore,
	); err != nil {
		return nil, fmt.Errorf("inserting kpis: %w", err)
	}

	for _, in := range insights {
		if _, err := tx.Exec(
			"INSERT INTO insight_log (snapshot_id, insight_id, opportunity_id, type, text) VALUES (?, ?, ?, ?, ?)",
			snap.ID, in.InsightID, in.OpportunityID, in.Type, in.Text,
		); err != nil {
			return nil, fmt.Errorf("inserting insight %s: %w", in.InsightID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest), or nil if
// there are fewer than n snapshots.
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	if n < 1 {
		return nil, fmt.Errorf("snapshot offset must be at least 1, got %d", n)
	}
	row := db.conn.QueryRow(
		"SELECT id, run_id, taken_at, version, source FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

// GetKPIs returns the KPIs recorded for a snapshot, or nil.
func (db *DB) GetKPIs(snapshotID int64) (*KPIRow, error) {
	row := db.conn.QueryRow(
		`SELECT snapshot_id, total, avg_demand, trending_count, highest_id, highest_name, highest_score
		FROM kpi_snapshots WHERE snapshot_id = ?`, snapshotID,
	)
	var k KPIRow
	var highestID, highestName sql.NullString
	err := row.Scan(&k.SnapshotID, &k.Total, &k.AvgDemand, &k.TrendingCount, &highestID, &highestName, &k.HighestScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	k.HighestID = highestID.String
	k.HighestName = highestName.String
	return &k, nil
}

// GetInsights returns the insights recorded for a snapshot in feed order.
func (db *DB) GetInsights(snapshotID int64) ([]InsightRow, error) {
	rows, err := db.conn.Query(
		"SELECT snapshot_id, insight_id, opportunity_id, type, text FROM insight_log WHERE snapshot_id = ? ORDER BY id",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []InsightRow
	for rows.Next() {
		var in InsightRow
		if err := rows.Scan(&in.SnapshotID, &in.InsightID, &in.OpportunityID, &in.Type, &in.Text); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// History returns up to limit snapshots with their KPIs, newest first.
func (db *DB) History(limit int) ([]SnapshotKPIs, error) {
	rows, err := db.conn.Query(
		`SELECT s.id, s.run_id, s.taken_at, s.version, s.source,
		        k.total, k.avg_demand, k.trending_count, k.highest_id, k.highest_name, k.highest_score
		FROM snapshots s JOIN kpi_snapshots k ON k.snapshot_id = s.id
		ORDER BY s.id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []SnapshotKPIs
	for rows.Next() {
		var h SnapshotKPIs
		var takenAt string
		var highestID, highestName sql.NullString
		if err := rows.Scan(
			&h.Snapshot.ID, &h.Snapshot.RunID, &takenAt, &h.Snapshot.Version, &h.Snapshot.Source,
			&h.KPIs.Total, &h.KPIs.AvgDemand, &h.KPIs.TrendingCount, &highestID, &highestName, &h.KPIs.HighestScore,
		); err != nil {
			return nil, err
		}
		h.Snapshot.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		h.KPIs.SnapshotID = h.Snapshot.ID
		h.KPIs.HighestID = highestID.String
		h.KPIs.HighestName = highestName.String
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &s.RunID, &takenAt, &s.Version, &s.Source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
