package app

import (
	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/spf13/cobra"
)

var insightsType string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show the insight feed for the top-ranked opportunities",
	RunE:  runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&insightsType, "type", "", "Filter by insight type (hot, rising, warning, info)")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	var filter intel.InsightType
	if insightsType != "" {
		t, err := intel.ParseInsightType(insightsType)
		if err != nil {
			return err
		}
		filter = t
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	insights := intel.GenerateInsights(s.opps)
	if filter != "" {
		insights = filterInsights(insights, filter)
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, insights)
	}
	renderInsights(w, insights)
	return nil
}

func filterInsights(insights []intel.Insight, t intel.InsightType) []intel.Insight {
	filtered := make([]intel.Insight, 0, len(insights))
	for _, in := range insights {
		if in.Type == t {
			filtered = append(filtered, in)
		}
	}
	return filtered
}
