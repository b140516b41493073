package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/blackwell-systems/nichewatch/internal/config"
	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/blackwell-systems/nichewatch/internal/output"
	"github.com/blackwell-systems/nichewatch/internal/store"
	"github.com/blackwell-systems/nichewatch/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	trackCompare int
	trackHistory int
	trackDB      string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot KPIs and compare them over time",
	Long: `Derive KPIs and insights from the current export, store them as a new
snapshot, and compare against a previous snapshot with trend arrows.
With --history, list KPI trends across recent snapshots instead.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "Show KPI trends across N most recent snapshots")
	trackCmd.Flags().StringVar(&trackDB, "db", "", "Snapshot database path (default: ~/.config/nichewatch/nichewatch.db)")
	rootCmd.AddCommand(trackCmd)
}

// trackResult is the JSON shape of a track run. The insight lists are
// relative to the baseline snapshot and absent on the first run.
type trackResult struct {
	Snapshot        *store.Snapshot `json:"snapshot"`
	KPIs            store.KPIRow    `json:"kpis"`
	Previous        *store.KPIRow   `json:"previous,omitempty"`
	InsightsAdded   []intel.Insight `json:"insights_added,omitempty"`
	InsightsCleared []intel.Insight `json:"insights_cleared,omitempty"`
}

func runTrack(cmd *cobra.Command, args []string) error {
	dbPath := trackDB
	if dbPath == "" {
		dbPath = config.DBPath()
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	w := cmd.OutOrStdout()

	if trackHistory > 0 {
		hist, err := db.History(trackHistory)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}
		if flagJSON {
			return writeJSON(w, hist)
		}
		renderHistory(w, hist)
		return nil
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if trackCompare < 1 {
		return fmt.Errorf("--compare must be at least 1, got %d", trackCompare)
	}
	// Look up the baseline before inserting so that N counts prior runs.
	prevSnap, err := db.GetSnapshotN(trackCompare)
	if err != nil {
		return fmt.Errorf("reading previous snapshot: %w", err)
	}
	var prev *store.KPIRow
	var prevInsights []intel.Insight
	if prevSnap != nil {
		if prev, err = db.GetKPIs(prevSnap.ID); err != nil {
			return fmt.Errorf("reading previous kpis: %w", err)
		}
		rows, err := db.GetInsights(prevSnap.ID)
		if err != nil {
			return fmt.Errorf("reading previous insights: %w", err)
		}
		prevInsights = insightsFromRows(rows)
	}

	cc := s.engine.CommandCenter(s.opps, 0)
	row := kpiRow(cc.KPIs)
	snap, err := db.SaveRun(appVersion, s.source, time.Now(), row, insightRows(cc.Insights))
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	row.SnapshotID = snap.ID
	s.log.Info("snapshot saved", slog.String("run_id", snap.RunID), slog.Int64("id", snap.ID))

	res := trackResult{Snapshot: snap, KPIs: row, Previous: prev}
	if prevSnap != nil {
		res.InsightsAdded, res.InsightsCleared = watcher.DiffInsights(prevInsights, cc.Insights)
	}

	if flagJSON {
		return writeJSON(w, res)
	}
	renderComparison(w, row, prev)
	if prevSnap != nil {
		renderInsightChanges(w, res.InsightsAdded, res.InsightsCleared)
	}
	return nil
}

func kpiRow(k intel.KPIs) store.KPIRow {
	row := store.KPIRow{
		Total:         k.Total,
		AvgDemand:     k.AvgDemand,
		TrendingCount: k.TrendingCount,
	}
	if k.Highest != nil {
		row.HighestID = k.Highest.ID
		row.HighestName = k.Highest.Name
		row.HighestScore = k.Highest.Score
	}
	return row
}

func insightRows(insights []intel.Insight) []store.InsightRow {
	rows := make([]store.InsightRow, len(insights))
	for i, in := range insights {
		rows[i] = store.InsightRow{
			InsightID:     in.ID,
			OpportunityID: in.OpportunityID,
			Type:          string(in.Type),
			Text:          in.Text,
		}
	}
	return rows
}

// insightsFromRows restores logged insights. Icons are not logged, so the
// restored insights carry none.
func insightsFromRows(rows []store.InsightRow) []intel.Insight {
	insights := make([]intel.Insight, len(rows))
	for i, r := range rows {
		insights[i] = intel.Insight{
			ID:            r.InsightID,
			OpportunityID: r.OpportunityID,
			Type:          intel.InsightType(r.Type),
			Text:          r.Text,
		}
	}
	return insights
}

func renderInsightChanges(w io.Writer, added, cleared []intel.Insight) {
	fmt.Fprintln(w, output.Section("Insight Changes"))
	fmt.Fprintln(w)
	if len(added) == 0 && len(cleared) == 0 {
		fmt.Fprintln(w, " No insights appeared or cleared since the baseline.")
		return
	}
	for _, in := range added {
		fmt.Fprintf(w, " %s %s %s\n", output.StyleSuccess.Render("+"), output.Badge(string(in.Type), insightStyle(in.Type)), in.Text)
	}
	for _, in := range cleared {
		fmt.Fprintf(w, " %s %s %s\n", output.StyleMuted.Render("-"), output.Badge(string(in.Type), insightStyle(in.Type)), output.StyleMuted.Render(in.Text))
	}
}

func renderComparison(w io.Writer, cur store.KPIRow, prev *store.KPIRow) {
	fmt.Fprintln(w, output.Section("KPI Snapshot"))
	fmt.Fprintln(w)

	if prev == nil {
		fmt.Fprintf(w, " %s %d\n", output.StyleLabel.Render("Total Opportunities"), cur.Total)
		fmt.Fprintf(w, " %s %.1f\n", output.StyleLabel.Render("Avg Demand Score"), cur.AvgDemand)
		fmt.Fprintf(w, " %s %d\n", output.StyleLabel.Render("Trending Opportunities"), cur.TrendingCount)
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleMuted.Render(" First snapshot recorded; nothing to compare yet."))
		return
	}

	tbl := output.NewTable("Metric", "Previous", "Current", "Change")
	tbl.AddRow("Total Opportunities",
		fmt.Sprintf("%d", prev.Total), fmt.Sprintf("%d", cur.Total),
		output.TrendArrow(float64(cur.Total-prev.Total), true))
	tbl.AddRow("Avg Demand Score",
		fmt.Sprintf("%.1f", prev.AvgDemand), fmt.Sprintf("%.1f", cur.AvgDemand),
		output.TrendArrow(cur.AvgDemand-prev.AvgDemand, true))
	tbl.AddRow("Trending Opportunities",
		fmt.Sprintf("%d", prev.TrendingCount), fmt.Sprintf("%d", cur.TrendingCount),
		output.TrendArrow(float64(cur.TrendingCount-prev.TrendingCount), true))
	tbl.AddRow("Highest Upside",
		orNA(prev.HighestName), orNA(cur.HighestName),
		output.TrendArrow(cur.HighestScore-prev.HighestScore, true))
	fmt.Fprint(w, indent(tbl.Render()))
}

func renderHistory(w io.Writer, hist []store.SnapshotKPIs) {
	fmt.Fprintln(w, output.Section("KPI History"))
	fmt.Fprintln(w)
	if len(hist) == 0 {
		fmt.Fprintln(w, " No snapshots recorded. Run 'nichewatch track' first.")
		return
	}

	tbl := output.NewTable("Taken", "Total", "Avg Demand", "Trending", "Highest Upside")
	for _, h := range hist {
		tbl.AddRow(
			h.Snapshot.TakenAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", h.KPIs.Total),
			fmt.Sprintf("%.1f", h.KPIs.AvgDemand),
			fmt.Sprintf("%d", h.KPIs.TrendingCount),
			orNA(h.KPIs.HighestName),
		)
	}
	fmt.Fprint(w, indent(tbl.Render()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
