package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/blackwell-systems/nichewatch/internal/config"
	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/blackwell-systems/nichewatch/internal/opportunity"
	"github.com/blackwell-systems/nichewatch/internal/output"
	"github.com/spf13/cobra"
)

// session is the per-invocation state shared by every subcommand.
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	engine *intel.Engine
	opps   []opportunity.Opportunity
	paths  []string
	source string
}

// newSession loads configuration, prepares output and logging, builds the
// engine and reads the opportunity export. Records are ranked by score
// before being handed to the engine.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(cfg.Output.Color && !flagNoColor)
	output.SetWidth(cfg.Output.Width)

	log := newLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format, flagVerbose)

	engine, err := buildEngine(cfg, time.Now)
	if err != nil {
		return nil, err
	}

	paths := flagData
	if len(paths) == 0 {
		paths = []string{cfg.DataFile}
	}
	log.Debug("loading opportunities", slog.Any("paths", paths))

	opps, err := opportunity.LoadFiles(cmd.Context(), paths)
	if err != nil {
		return nil, fmt.Errorf("loading opportunities: %w", err)
	}
	log.Info("opportunities loaded", slog.Int("count", len(opps)), slog.Int("files", len(paths)))

	return &session{
		cfg:    cfg,
		log:    log,
		engine: engine,
		opps:   intel.SortByScore(opps),
		paths:  paths,
		source: strings.Join(paths, ","),
	}, nil
}

// buildEngine wires the configured summary mode and catalog into an engine.
func buildEngine(cfg *config.Config, now func() time.Time) (*intel.Engine, error) {
	catalog, err := config.LoadCatalog(cfg.Summary.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	s := intel.NewSummarizer(cfg.Summary.Mode, catalog, cfg.Summary.RecentDays, now)
	return intel.NewEngine(s), nil
}
