package app

import (
	"github.com/spf13/cobra"
)

var overviewTop int

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show KPIs, top opportunities and the insight feed",
	Long: `Show the command center: aggregate KPIs over every loaded opportunity,
the top-ranked opportunities with their signal levels, and insights derived
from the five highest-ranked records.`,
	RunE: runOverview,
}

func init() {
	overviewCmd.Flags().IntVar(&overviewTop, "top", 0, "Number of opportunities to list (default: top_n from config)")
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	top := s.cfg.TopN
	if overviewTop > 0 {
		top = overviewTop
	}
	cc := s.engine.CommandCenter(s.opps, top)
	s.log.Debug("command center derived", "insights", len(cc.Insights), "top", len(cc.Top))

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, cc)
	}

	renderKPIs(w, cc.KPIs)
	renderTop(w, cc.Top)
	renderInsights(w, cc.Insights)
	return nil
}
