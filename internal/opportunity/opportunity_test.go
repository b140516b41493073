package opportunity

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleExport = `{
  "opportunities": [
    {
      "id": "a1",
      "name": "Zigbee2MQTT Bridge",
      "category": "smart_home_device",
      "score": 78.5,
      "scoring_details": {
        "demand": 85, "feasibility": 72, "competition": 30, "trend": 74, "composite": 76.2,
        "weights": {"demand": 0.4, "feasibility": 0.3, "competition": 0.2, "trend": 0.1}
      },
      "data_sources": [
        {"name": "github", "source_type": "git_hub", "collected_at": "2026-09-01T00:00:00Z", "data_points": 12,
         "metadata": {"stars": 1450, "forks": 80, "open_issues": 31, "pushed_at": "2026-09-20T10:00:00Z", "full_name": "acme/z2m"}},
        {"name": "hacs", "source_type": "hacs", "collected_at": "2026-09-01T00:00:00Z", "data_points": 1,
         "metadata": {"domain": "z2m", "downloads": 2200}},
        {"name": "forum", "source_type": {"other": "community_forum"}, "collected_at": "2026-09-01T00:00:00Z", "data_points": 4,
         "metadata": {"match_type": "fuzzy", "note": "thread"}}
      ],
      "discovered_at": "2026-09-02T08:00:00Z",
      "metadata": {"description": "Bridge for zigbee devices", "topics": ["zigbee", "mqtt-bridge"]}
    }
  ]
}`

// --- Load ---

func TestLoad_Envelope(t *testing.T) {
	opps, err := Load(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(opps) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(opps))
	}
	o := opps[0]
	if o.Name != "Zigbee2MQTT Bridge" {
		t.Errorf("unexpected name %q", o.Name)
	}
	if o.Scoring.Demand != 85 || o.Scoring.Composite != 76.2 {
		t.Errorf("unexpected scoring %+v", o.Scoring)
	}
	if len(o.DataSources) != 3 {
		t.Fatalf("expected 3 data sources, got %d", len(o.DataSources))
	}
	if o.DataSources[2].SourceType.Kind != KindOther || o.DataSources[2].SourceType.Label != "community_forum" {
		t.Errorf("unexpected wrapped source type %+v", o.DataSources[2].SourceType)
	}
}

func TestLoad_BareArray(t *testing.T) {
	opps, err := Load(strings.NewReader(`[{"id":"x","name":"X"},{"id":"y","name":"Y"}]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(opps) != 2 || opps[0].ID != "x" || opps[1].ID != "y" {
		t.Fatalf("unexpected result %+v", opps)
	}
}

func TestLoad_Empty(t *testing.T) {
	opps, err := Load(strings.NewReader("  \n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(opps) != 0 {
		t.Errorf("expected no opportunities, got %d", len(opps))
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"opportunities": [`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestLoadFiles_PreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	if err := os.WriteFile(first, []byte(`[{"id":"1"},{"id":"2"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte(`{"opportunities":[{"id":"3"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opps, err := LoadFiles(context.Background(), []string{second, first})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	var ids []string
	for _, o := range opps {
		ids = append(ids, o.ID)
	}
	if strings.Join(ids, ",") != "3,1,2" {
		t.Errorf("expected order 3,1,2, got %v", ids)
	}
}

func TestLoadFiles_MissingFile(t *testing.T) {
	_, err := LoadFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// --- SourceType ---

func TestSourceType_RoundTrip(t *testing.T) {
	cases := []string{`"git_hub"`, `"hacs"`, `"youtube"`, `"some_new_kind"`, `{"other":"discord"}`}
	for _, c := range cases {
		var st SourceType
		if err := json.Unmarshal([]byte(c), &st); err != nil {
			t.Fatalf("unmarshal %s: %v", c, err)
		}
		out, err := json.Marshal(st)
		if err != nil {
			t.Fatalf("marshal %s: %v", c, err)
		}
		if string(out) != c {
			t.Errorf("round trip %s produced %s", c, out)
		}
	}
}

func TestSourceType_RejectsUnknownObject(t *testing.T) {
	var st SourceType
	if err := json.Unmarshal([]byte(`{"weird":"x"}`), &st); err == nil {
		t.Error("expected error for unknown wrapper")
	}
}

// --- Metadata ---

func TestMetadata_DefaultsOnMissingOrMistyped(t *testing.T) {
	m := Metadata{"stars": "not a number", "topics": "zigbee"}
	if got := m.Int("stars"); got != 0 {
		t.Errorf("Int on non-numeric string = %d, want 0", got)
	}
	if got := m.Float("missing"); got != 0 {
		t.Errorf("Float on missing key = %f, want 0", got)
	}
	if got := m.Strings("topics"); got != nil {
		t.Errorf("Strings on scalar = %v, want nil", got)
	}
	var nilMeta Metadata
	if nilMeta.String("description") != "" || nilMeta.Int("open_issues") != 0 {
		t.Error("nil metadata should yield zero values")
	}
}

func TestMetadata_NumericForms(t *testing.T) {
	m := Metadata{"a": float64(12), "b": 7, "c": json.Number("3.5"), "d": "42"}
	if m.Int("a") != 12 || m.Int("b") != 7 || m.Float("c") != 3.5 || m.Int("d") != 42 {
		t.Errorf("unexpected numeric conversions: %v %v %v %v", m.Int("a"), m.Int("b"), m.Float("c"), m.Int("d"))
	}
}

func TestMetadata_StringsSkipsNonStrings(t *testing.T) {
	m := Metadata{"topics": []any{"zigbee", 3, "mqtt"}}
	got := m.Strings("topics")
	if len(got) != 2 || got[0] != "zigbee" || got[1] != "mqtt" {
		t.Errorf("unexpected topics %v", got)
	}
}

// --- DaysSince ---

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want int
	}{
		{"2026-10-04T12:00:00Z", 10},
		{"2026-10-14", 0},
		{"2026-10-11T12:00:00", 3},
		{"", Infinite},
		{"yesterday", Infinite},
	}
	for _, tt := range tests {
		if got := DaysSince(tt.in, now); got != tt.want {
			t.Errorf("DaysSince(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// --- Timestamp ---

func TestLoad_LenientTimestamps(t *testing.T) {
	data := `[
	  {"id": "naive", "discovered_at": "2024-01-01T00:00:00",
	   "data_sources": [{"name": "gh", "source_type": "git_hub", "collected_at": ""}]},
	  {"id": "date", "discovered_at": "2024-03-05",
	   "data_sources": [{"name": "gh", "source_type": "git_hub", "collected_at": null}]},
	  {"id": "garbage", "discovered_at": "last tuesday",
	   "data_sources": [{"name": "gh", "source_type": "git_hub", "collected_at": 17}]}
	]`
	opps, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Load rejected lenient timestamps: %v", err)
	}
	if len(opps) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(opps))
	}

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !opps[0].DiscoveredAt.Equal(want) {
		t.Errorf("naive discovered_at = %v, want %v", opps[0].DiscoveredAt, want)
	}
	if !opps[1].DiscoveredAt.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date-only discovered_at = %v", opps[1].DiscoveredAt)
	}
	if !opps[2].DiscoveredAt.IsZero() {
		t.Errorf("unparseable discovered_at should be zero, got %v", opps[2].DiscoveredAt)
	}
	for i, o := range opps {
		if !o.DataSources[0].CollectedAt.IsZero() {
			t.Errorf("opps[%d] collected_at should be zero, got %v", i, o.DataSources[0].CollectedAt)
		}
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)}
	got, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `"2026-09-02T08:00:00Z"` {
		t.Errorf("Marshal = %s", got)
	}

	zero, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("Marshal zero: %v", err)
	}
	if string(zero) != "null" {
		t.Errorf("zero Marshal = %s, want null", zero)
	}

	var back Timestamp
	if err := json.Unmarshal(got, &back); err != nil || !back.Equal(ts.Time) {
		t.Errorf("round trip = %v, %v", back, err)
	}
}

// --- FirstSource ---

func TestFirstSource_FirstSeenWins(t *testing.T) {
	o := Opportunity{DataSources: []DataSource{
		{Name: "gh-a", SourceType: SourceType{Kind: KindGitHub}, Metadata: Metadata{"stars": float64(5)}},
		{Name: "gh-b", SourceType: SourceType{Kind: KindGitHub}, Metadata: Metadata{"stars": float64(900)}},
	}}
	if got := o.GitHub().Int("stars"); got != 5 {
		t.Errorf("expected first GitHub source, got stars=%d", got)
	}
	if o.FirstSource(KindYouTube) != nil {
		t.Error("expected nil for absent kind")
	}
	if o.HACS().Int("downloads") != 0 {
		t.Error("expected zero downloads without HACS source")
	}
}
