package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/blackwell-systems/nichewatch/internal/opportunity"
	"github.com/blackwell-systems/nichewatch/internal/output"
	"github.com/charmbracelet/lipgloss"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// displayCategory renders pipeline categories like "smart_home_device" as
// "smart home device".
func displayCategory(c string) string {
	return strings.ReplaceAll(c, "_", " ")
}

func levelStyle(l intel.Level) lipgloss.Style {
	switch l {
	case intel.DemandHigh, intel.MomentumRising, intel.BuildSoloFriendly:
		return output.StyleSuccess
	case intel.DemandMed, intel.MomentumStable, intel.BuildComplex:
		return output.StyleWarning
	default:
		return output.StyleError
	}
}

func insightStyle(t intel.InsightType) lipgloss.Style {
	switch t {
	case intel.InsightHot:
		return output.StyleHot
	case intel.InsightRising:
		return output.StyleSuccess
	case intel.InsightWarning:
		return output.StyleWarning
	default:
		return output.StyleMuted
	}
}

func renderKPIs(w io.Writer, k intel.KPIs) {
	fmt.Fprintln(w, output.Section("Command Center"))
	fmt.Fprintln(w)

	highest := "N/A"
	if k.Highest != nil {
		highest = fmt.Sprintf("%s (%.1f)", k.Highest.Name, k.Highest.Score)
	}

	avg := fmt.Sprintf("%.1f", k.AvgDemand)
	if k.Total > 0 {
		avg = output.ScoreStyle(k.AvgDemand).Render(avg)
	}

	rows := [][2]string{
		{"Total Opportunities", fmt.Sprintf("%d", k.Total)},
		{"Avg Demand Score", avg},
		{"Trending Opportunities", fmt.Sprintf("%d", k.TrendingCount)},
		{"Highest Upside", highest},
	}
	for _, r := range rows {
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render(r[0]), output.StyleValue.Render(r[1]))
	}
}

func renderTop(w io.Writer, top []opportunity.Opportunity) {
	fmt.Fprintln(w, output.Section("Top Opportunities"))
	fmt.Fprintln(w)
	if len(top) == 0 {
		fmt.Fprintln(w, " No opportunities loaded.")
		return
	}

	tbl := output.NewTable("#", "Opportunity", "Category", "Score", "Demand", "Momentum", "Buildability")
	for i := range top {
		o := &top[i]
		s := intel.Classify(o.Scoring)
		tbl.AddRow(
			fmt.Sprintf("%d", i+1),
			o.Name,
			displayCategory(o.Category),
			output.ScoreStyle(o.Score).Render(fmt.Sprintf("%.1f", o.Score)),
			levelStyle(s.Demand).Render(string(s.Demand)),
			levelStyle(s.Momentum).Render(string(s.Momentum)),
			levelStyle(s.Buildability).Render(string(s.Buildability)),
		)
	}
	fmt.Fprint(w, indent(tbl.Render()))
}

func renderInsights(w io.Writer, insights []intel.Insight) {
	fmt.Fprintln(w, output.Section("Insights"))
	fmt.Fprintln(w)
	if len(insights) == 0 {
		fmt.Fprintln(w, " No notable signals among the top opportunities.")
		return
	}
	for _, in := range insights {
		fmt.Fprintf(w, " %s %s %s\n", in.Icon, output.Badge(string(in.Type), insightStyle(in.Type)), in.Text)
	}
}

func renderDetail(w io.Writer, d intel.Detail) {
	fmt.Fprintln(w, output.Section(d.Name))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Category"), displayCategory(d.Category))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Score"), output.ScoreBar(d.Score, 20))
	fmt.Fprintf(w, " %s %s  %s  %s\n", output.StyleLabel.Render("Signals"),
		output.Badge("Demand: "+string(d.Signals.Demand), levelStyle(d.Signals.Demand)),
		output.Badge("Momentum: "+string(d.Signals.Momentum), levelStyle(d.Signals.Momentum)),
		output.Badge("Build: "+string(d.Signals.Buildability), levelStyle(d.Signals.Buildability)),
	)
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s\n", d.Summary)

	fmt.Fprintln(w, output.Section("Why this ranks highly"))
	fmt.Fprintln(w)
	for _, r := range d.Reasons {
		fmt.Fprintf(w, "  • %s\n", r)
	}

	fmt.Fprintln(w, output.Section("Builder Q&A"))
	fmt.Fprintln(w)
	for _, q := range d.Questions {
		fmt.Fprintf(w, " %s\n", output.StyleBold.Render(q.Question))
		fmt.Fprintf(w, "    %s\n", q.Answer)
		fmt.Fprintf(w, "    %s\n", output.StyleMuted.Render(q.Why))
	}

	renderEvidence(w, d.Evidence)
	renderActions(w, d.Actions)
}

func renderEvidence(w io.Writer, ev intel.Evidence) {
	fmt.Fprintln(w, output.Section("Evidence"))
	fmt.Fprintln(w)

	field := func(label, value string) {
		fmt.Fprintf(w, "   %s %s\n", output.StyleLabel.Render(label), value)
	}
	if gh := ev.GitHub; gh != nil {
		fmt.Fprintf(w, " %s\n", output.StyleBold.Render("GitHub"))
		field("Repository", orNA(gh.FullName))
		field("Stars", countOrNA(gh.Stars))
		field("Forks", countOrNA(gh.Forks))
		field("Open Issues", countOrNA(gh.OpenIssues))
	}
	if h := ev.HACS; h != nil {
		fmt.Fprintf(w, " %s\n", output.StyleBold.Render("HACS"))
		field("Domain", orNA(h.Domain))
		field("Downloads", countOrNA(h.Downloads))
		field("Data Points", fmt.Sprintf("%d", h.DataPoints))
	}
	if c := ev.Community; c != nil {
		fmt.Fprintf(w, " %s\n", output.StyleBold.Render("Community ("+c.Source+")"))
		field("Data Points", fmt.Sprintf("%d", c.Mentions))
		field("Match Type", orNA(c.MatchType))
		if c.Note != "" {
			field("Note", c.Note)
		}
	}

	if len(ev.Sources) == 0 {
		fmt.Fprintln(w, " No data sources recorded.")
		return
	}
	fmt.Fprintf(w, " %s\n", output.StyleBold.Render("Sources"))
	for _, src := range ev.Sources {
		fmt.Fprintf(w, "  • %s %s %s\n", src.Name,
			output.StyleMuted.Render("("+src.Type+")"),
			output.StyleMuted.Render(fmt.Sprintf("%d data points", src.DataPoints)))
	}
}

func renderActions(w io.Writer, actions []intel.Action) {
	fmt.Fprintln(w, output.Section("Paths forward"))
	fmt.Fprintln(w)
	for _, a := range actions {
		fmt.Fprintf(w, " %s\n", output.StyleBold.Render(a.Title))
		fmt.Fprintf(w, "    %s\n", a.Description)
		for i, step := range a.Steps {
			fmt.Fprintf(w, "    %d. %s\n", i+1, step)
		}
	}
}

func countOrNA(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *n)
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
