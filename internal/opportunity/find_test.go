package opportunity

import (
	"strings"
	"testing"
)

func findFixture() []Opportunity {
	return []Opportunity{
		{ID: "op-1", Name: "Frigate NVR"},
		{ID: "op-2", Name: "Frient Sensor"},
		{ID: "op-3", Name: "Nuki Lock"},
	}
}

func TestFind(t *testing.T) {
	opps := findFixture()

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"by id", "op-3", "Nuki Lock"},
		{"by name case-insensitive", "frigate nvr", "Frigate NVR"},
		{"by unique prefix", "nuk", "Nuki Lock"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Find(opps, tc.ref)
			if err != nil {
				t.Fatalf("Find(%q): %v", tc.ref, err)
			}
			if o.Name != tc.want {
				t.Errorf("Find(%q) = %q, want %q", tc.ref, o.Name, tc.want)
			}
		})
	}
}

func TestFind_Errors(t *testing.T) {
	opps := findFixture()

	tests := []struct {
		ref     string
		opps    []Opportunity
		wantErr string
	}{
		{"fri", opps, "ambiguous"},
		{"tesla", opps, "no opportunity matches"},
		{"op-1", nil, "no opportunity matches"},
	}
	for _, tc := range tests {
		_, err := Find(tc.opps, tc.ref)
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("Find(%q) error = %v, want it to mention %q", tc.ref, err, tc.wantErr)
		}
	}
}

func TestFind_ReturnsElementPointer(t *testing.T) {
	opps := findFixture()
	o, err := Find(opps, "op-2")
	if err != nil {
		t.Fatal(err)
	}
	if o != &opps[1] {
		t.Error("expected a pointer into the input slice")
	}
}
