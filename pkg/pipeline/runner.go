package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/blueprint"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/catalog"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/fallback"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/placer"
)

// Runner encapsulates run execution against a fallback store.
//
// The Runner is stateless except for the store and logger - it doesn't hold
// run results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Store  fallback.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given fallback store.
// If store is nil, each run builds the store its configuration selects.
func NewRunner(store fallback.Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Store:  store,
		Logger: logger,
	}
}

// Execute runs the complete load → place → fill → export flow. Failures are
// reported in the result rather than returned, so the caller always gets a
// Result to record.
func (r *Runner) Execute(ctx context.Context, opts Options) *Result {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return failure(opts.RunID, fmt.Errorf("invalid options: %w", err))
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	// Stage 1: Load
	cfg, err := catalog.Load(opts.ConfigPath)
	if err != nil {
		return failure(opts.RunID, fmt.Errorf("load config: %w", err))
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.MaxRetries != 0 {
		cfg.MaxRetries = opts.MaxRetries
	}
	if opts.OutputDir != "" {
		cfg.Output.Dir = opts.OutputDir
	}
	cat := cfg.Catalog()

	// An injected store wins; otherwise the config's [fallback] section
	// selects one. A store that cannot be built degrades the run rather
	// than failing it.
	store := r.Store
	if store == nil {
		store, err = StoreFromConfig(cfg.Fallback)
		if err != nil {
			logger.Warn("fallback store unavailable", "error", err)
			store = nil
		}
	}

	logger.Info("starting generation run",
		"run_id", opts.RunID,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Columns, cfg.Grid.Rows),
		"components", cat.RequiredInstances(),
		"estimated_cells", cat.EstimatedCells(),
		"capacity", cfg.Grid.Columns*cfg.Grid.Rows,
		"max_retries", cfg.MaxRetries)

	// Stage 2: Place
	placeStart := time.Now()
	rng := placer.NewRNG(cfg.Seed)
	orch := placer.New(cfg.MaxRetries, store, logger, rng)
	gen := orch.Generate(ctx, cat, cfg.Grid.Columns, cfg.Grid.Rows)

	result := &Result{
		Success: true,
		RunID:   opts.RunID,
		Source:  gen.Source,
	}
	result.Stats.Attempts = gen.Attempts

	// Stage 3: Fill. Fallback layouts are exported as stored: their fills
	// were already applied when the record was saved.
	if gen.Source == placer.SourceFresh {
		if cfg.Stocks.Enabled {
			result.Stats.StocksPlaced = placer.FillStocks(gen.Grid, cfg.Stocks.MaxCount)
		}
		if cfg.DayNumber.Enabled {
			result.Stats.DayPlaced = placer.FillDayNumber(gen.Grid)
		}
		if cfg.Bits.Enabled {
			result.Stats.BitsPlaced = placer.FillBits(gen.Grid, rng)
		}
	}
	result.Stats.PlaceTime = time.Since(placeStart)

	logger.Info("layout ready",
		"source", gen.Source,
		"attempts", gen.Attempts,
		"stocks", result.Stats.StocksPlaced,
		"bits", result.Stats.BitsPlaced,
		"efficiency", gen.Grid.Efficiency())

	// Stage 4: Export
	exportStart := time.Now()
	bp := blueprint.FromGrid(gen.Grid, cfg.Grid.CellSize, time.Now().UTC())
	result.TotalComponents = bp.Metadata.TotalComponents
	result.Efficiency = bp.Metadata.Efficiency

	if opts.DryRun {
		result.Stats.ExportTime = time.Since(exportStart)
		logger.Info("dry run, skipping export", "run_id", opts.RunID)
		return result
	}

	path := filepath.Join(cfg.Output.Dir, outputFilename(cfg.Output.FilenameTemplate, bp.Metadata.GeneratedAt))
	if err := blueprint.WriteFile(bp, path); err != nil {
		return failure(opts.RunID, fmt.Errorf("write blueprint: %w", err))
	}
	result.BlueprintFile = path

	// A fresh layout becomes the next run's fallback. Losing the refresh is
	// tolerable, so a store error is logged rather than failing the run.
	if gen.Source == placer.SourceFresh && store != nil {
		if err := store.Save(ctx, bp); err != nil {
			logger.Warn("fallback record not refreshed", "error", err)
		}
	}
	result.Stats.ExportTime = time.Since(exportStart)

	logger.Info("blueprint exported",
		"run_id", opts.RunID,
		"file", path,
		"components", result.TotalComponents,
		"efficiency", result.Efficiency)

	return result
}

// outputFilename substitutes the generation timestamp into the configured
// filename template.
func outputFilename(template string, ts time.Time) string {
	return strings.ReplaceAll(template, "{timestamp}", ts.Format(TimestampLayout))
}
