package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/spf13/viper"
)

// Config is the top-level nichewatch configuration.
type Config struct {
	DataFile string  `mapstructure:"data_file"`
	TopN     int     `mapstructure:"top_n"`
	Summary  Summary `mapstructure:"summary"`
	Output   Output  `mapstructure:"output"`
	Logging  Logging `mapstructure:"logging"`
}

// Summary selects and tunes the summary generator.
type Summary struct {
	// Mode is "catalog" (curated descriptions) or "signals" (composed from
	// collected signals).
	Mode        string `mapstructure:"mode"`
	CatalogFile string `mapstructure:"catalog_file"`
	RecentDays  int    `mapstructure:"recent_days"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Logging defines diagnostic log settings.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a validated Config with all defaults applied. A missing config
// file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_file", DefaultDataFile)
	v.SetDefault("top_n", DefaultTopN)
	v.SetDefault("summary.mode", DefaultSummary.Mode)
	v.SetDefault("summary.catalog_file", DefaultSummary.CatalogFile)
	v.SetDefault("summary.recent_days", DefaultSummary.RecentDays)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("logging.level", DefaultLogging.Level)
	v.SetDefault("logging.format", DefaultLogging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataFile = expandPath(cfg.DataFile)
	cfg.Summary.CatalogFile = expandPath(cfg.Summary.CatalogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Summary.Mode {
	case intel.SummaryModeCatalog, intel.SummaryModeSignals:
	default:
		return fmt.Errorf("summary.mode must be %q or %q, got %q",
			intel.SummaryModeCatalog, intel.SummaryModeSignals, c.Summary.Mode)
	}
	if c.Summary.RecentDays <= 0 {
		return fmt.Errorf("summary.recent_days must be positive, got %d", c.Summary.RecentDays)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	return nil
}

// DBPath returns the full path to the SQLite snapshot database.
func DBPath() string {
	return filepath.Join(ConfigDir(), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
