// Package config provides configuration loading and defaults for nichewatch.
package config

import "github.com/blackwell-systems/nichewatch/internal/intel"

// DefaultConfigDir is the default location for nichewatch configuration.
const DefaultConfigDir = "~/.config/nichewatch"

// DefaultDBName is the filename for the snapshot database.
const DefaultDBName = "nichewatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultDataFile is the opportunity export read when --data is not given.
const DefaultDataFile = "~/.config/nichewatch/opportunities.json"

// DefaultTopN is the number of opportunities shown on the overview.
const DefaultTopN = 9

// EnvPrefix prefixes environment overrides, e.g. NICHEWATCH_SUMMARY_MODE.
const EnvPrefix = "NICHEWATCH"

// DefaultSummary holds the default summary settings.
var DefaultSummary = Summary{
	Mode:       intel.SummaryModeCatalog,
	RecentDays: intel.DefaultRecentDays,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultLogging holds the default logging settings.
var DefaultLogging = Logging{
	Level:  "warn",
	Format: "text",
}
