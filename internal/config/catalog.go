package config

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/nichewatch/internal/intel"
	"gopkg.in/yaml.v3"
)

// LoadCatalog reads an ordered YAML list of curated descriptions, one
// mapping with key and description fields per entry. An empty path returns intel.DefaultCatalog. Keys are kept verbatim, so
// they should be lower-case to match.
func LoadCatalog(path string) (intel.Catalog, error) {
	if path == "" {
		return intel.DefaultCatalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var catalog intel.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	for i, e := range catalog {
		if e.Key == "" {
			return nil, fmt.Errorf("catalog %s: entry %d has no key", path, i)
		}
	}
	return catalog, nil
}
