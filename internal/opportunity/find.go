package opportunity

import (
	"fmt"
	"strings"
)

// Find resolves a reference by exact ID, then case-insensitive name, then
// unique name prefix. The returned pointer addresses an element of opps.
func Find(opps []Opportunity, ref string) (*Opportunity, error) {
	for i := range opps {
		if opps[i].ID == ref {
			return &opps[i], nil
		}
	}
	for i := range opps {
		if strings.EqualFold(opps[i].Name, ref) {
			return &opps[i], nil
		}
	}

	lower := strings.ToLower(ref)
	var match *Opportunity
	for i := range opps {
		if strings.HasPrefix(strings.ToLower(opps[i].Name), lower) {
			if match != nil {
				return nil, fmt.Errorf("%q is ambiguous: matches %q and %q", ref, match.Name, opps[i].Name)
			}
			match = &opps[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no opportunity matches %q", ref)
	}
	return match, nil
}
