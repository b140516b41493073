package intel

import "github.com/blackwell-systems/nichewatch/internal/opportunity"

// Evidence is the per-source backing for an opportunity's scores. Cards are
// nil when the record has no source of that kind.
type Evidence struct {
	GitHub    *GitHubEvidence    `json:"github,omitempty"`
	HACS      *HACSEvidence      `json:"hacs,omitempty"`
	Community *CommunityEvidence `json:"community,omitempty"`
	Sources   []SourceEvidence   `json:"sources"`
}

// GitHubEvidence summarizes the first GitHub source. Counts are nil when the
// collector did not report them, which is distinct from a reported zero.
type GitHubEvidence struct {
	FullName   string `json:"full_name,omitempty"`
	Stars      *int   `json:"stars,omitempty"`
	Forks      *int   `json:"forks,omitempty"`
	OpenIssues *int   `json:"open_issues,omitempty"`
}

// HACSEvidence summarizes the first HACS source.
type HACSEvidence struct {
	Domain     string `json:"domain,omitempty"`
	Downloads  *int   `json:"downloads,omitempty"`
	DataPoints int    `json:"data_points"`
}

// CommunityEvidence summarizes the first YouTube or free-form source.
type CommunityEvidence struct {
	Source    string `json:"source"`
	Mentions  int    `json:"mentions"`
	MatchType string `json:"match_type,omitempty"`
	Note      string `json:"note,omitempty"`
}

// SourceEvidence is one line of the source list.
type SourceEvidence struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	DataPoints int    `json:"data_points"`
}

// CollectEvidence gathers the evidence cards and the source list for o.
func CollectEvidence(o *opportunity.Opportunity) Evidence {
	ev := Evidence{Sources: make([]SourceEvidence, 0, len(o.DataSources))}

	if ds := o.FirstSource(opportunity.KindGitHub); ds != nil {
		m := ds.Metadata
		ev.GitHub = &GitHubEvidence{
			FullName:   m.String("full_name"),
			Stars:      optInt(m, "stars"),
			Forks:      optInt(m, "forks"),
			OpenIssues: optInt(m, "open_issues"),
		}
	}

	if ds := o.FirstSource(opportunity.KindHACS); ds != nil {
		ev.HACS = &HACSEvidence{
			Domain:     ds.Metadata.String("domain"),
			Downloads:  optInt(ds.Metadata, "downloads"),
			DataPoints: ds.DataPoints,
		}
	}

	if ds := o.FirstSource(opportunity.KindYouTube, opportunity.KindOther); ds != nil {
		ev.Community = &CommunityEvidence{
			Source:    ds.SourceType.String(),
			Mentions:  ds.DataPoints,
			MatchType: ds.Metadata.String("match_type"),
			Note:      ds.Metadata.String("note"),
		}
	}

	for _, ds := range o.DataSources {
		ev.Sources = append(ev.Sources, SourceEvidence{
			Name:       ds.Name,
			Type:       ds.SourceType.String(),
			DataPoints: ds.DataPoints,
		})
	}
	return ev
}

func optInt(m opportunity.Metadata, key string) *int {
	if !m.Has(key) {
		return nil
	}
	v := m.Int(key)
	return &v
}
