package intel

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

// Summary modes accepted by NewSummarizer.
const (
	SummaryModeCatalog = "catalog"
	SummaryModeSignals = "signals"
)

// DefaultRecentDays is the window within which a GitHub push counts as
// recent activity for the signals summarizer.
const DefaultRecentDays = 90

// Summarizer produces a one-paragraph description of an opportunity.
// Implementations never return an empty string.
type Summarizer interface {
	Summarize(o *opportunity.Opportunity) string
}

// NewSummarizer returns the summarizer for mode. An unknown mode falls back
// to the catalog summarizer.
func NewSummarizer(mode string, catalog Catalog, recentDays int, now func() time.Time) Summarizer {
	if mode == SummaryModeSignals {
		return &SignalSummarizer{RecentDays: recentDays, Now: now}
	}
	return &CatalogSummarizer{Catalog: catalog}
}

// CatalogSummarizer is the canonical summarizer. It resolves a curated
// description through an ordered fallback chain:
//
//  1. the category, lower-cased with underscores read as spaces, equals a key
//  2. the first entry whose key is contained in the lower-cased name, or whose
//     key (spaces as underscores) contains the name
//  3. a sentence built from up to three metadata topics
//  4. a sentence built from the name
type CatalogSummarizer struct {
	Catalog Catalog
}

// Summarize implements Summarizer.
func (s *CatalogSummarizer) Summarize(o *opportunity.Opportunity) string {
	category := strings.ReplaceAll(strings.ToLower(o.Category), "_", " ")
	if e, ok := s.Catalog.exact(category); ok && e.Description != "" {
		return e.Description
	}

	if e, ok := s.Catalog.fuzzy(strings.ToLower(o.Name)); ok && e.Description != "" {
		return e.Description
	}

	if topics := o.Metadata.Strings("topics"); len(topics) > 0 {
		if len(topics) > 3 {
			topics = topics[:3]
		}
		parts := make([]string, len(topics))
		for i, t := range topics {
			parts[i] = strings.ReplaceAll(t, "-", " ")
		}
		return fmt.Sprintf("Home Assistant integration for %s.", strings.Join(parts, ", "))
	}

	return fmt.Sprintf("Home Assistant integration for %s.", o.Name)
}

// SignalSummarizer composes a summary from collected signals rather than
// curated text. It is an alternate mode and its output is not comparable to
// CatalogSummarizer's.
type SignalSummarizer struct {
	RecentDays int
	Now        func() time.Time
}

// Summarize implements Summarizer.
func (s *SignalSummarizer) Summarize(o *opportunity.Opportunity) string {
	var parts []string

	base := o.Metadata.String("description")
	if base == "" {
		base = o.Name
	}
	if base != "" {
		parts = append(parts, base)
	}

	gh := o.GitHub()
	if pushed := gh.String("pushed_at"); pushed != "" {
		if opportunity.DaysSince(pushed, s.now()) <= s.recentDays() {
			parts = append(parts, "Active recently")
		}
	}

	if gh.Int("stars") > 500 || o.HACS().Int("downloads") > 1000 {
		parts = append(parts, "Popular")
	}

	if ds := o.FirstSource(opportunity.KindYouTube, opportunity.KindOther); ds != nil && ds.DataPoints > 0 {
		parts = append(parts, "Community attention")
	}

	if len(parts) == 0 {
		return "Home Assistant integration."
	}
	return strings.Join(parts, ". ") + "."
}

func (s *SignalSummarizer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *SignalSummarizer) recentDays() int {
	if s.RecentDays <= 0 {
		return DefaultRecentDays
	}
	return s.RecentDays
}
