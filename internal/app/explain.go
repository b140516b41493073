package app

import (
	"github.com/blackwell-systems/nichewatch/internal/opportunity"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <id|name>",
	Short: "Explain a single opportunity",
	Long: `Show the detail report for one opportunity: signal levels, summary,
why it ranks highly, and answers to the six builder questions. The argument
may be an ID, a full name (case-insensitive) or a unique name prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	o, err := opportunity.Find(s.opps, args[0])
	if err != nil {
		return err
	}
	d := s.engine.Explain(o)

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, d)
	}
	renderDetail(w, d)
	return nil
}
