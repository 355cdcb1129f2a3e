// Package pipeline provides the end-to-end blueprint generation run for
// Bit-by-Bit.
//
// This package implements the complete load → place → fill → export flow that
// can be used by CLI and scheduled worker entry points. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// A run consists of four stages:
//
//  1. Load: Read and validate the layout configuration (grid dimensions,
//     component catalog, fill settings).
//  2. Place: Run the randomized retry search until a layout converges, or
//     degrade to the fallback chain.
//  3. Fill: Consume leftover space with stocks, the day counter, and bits
//     (fresh layouts only).
//  4. Export: Serialize the grid into a blueprint, write it to the output
//     directory, and refresh the fallback record.
//
// # Usage
//
// Create a Runner and execute a run:
//
//	runner := pipeline.NewRunner(store, logger)
//	opts := pipeline.Options{ConfigPath: "gridding.toml"}
//	result := runner.Execute(ctx, opts)
//	if !result.Success {
//	    log.Error("run failed", "error", result.Error)
//	}
package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/placer"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// TimestampLayout formats the timestamp substituted into output
	// filenames.
	TimestampLayout = "20060102_150405"

	// RunIDEnv names the environment variable that pins the run identifier,
	// used when an external scheduler owns run bookkeeping.
	RunIDEnv = "BITBYBIT_RUN_ID"
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a generation run.
// This struct supports JSON serialization for worker payloads.
type Options struct {
	// ConfigPath locates the TOML layout configuration. Required.
	ConfigPath string `json:"config_path"`

	// Seed overrides the configured random seed when non-zero.
	Seed uint64 `json:"seed,omitempty"`

	// MaxRetries overrides the configured attempt budget when non-zero.
	MaxRetries int `json:"max_retries,omitempty"`

	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string `json:"output_dir,omitempty"`

	// DryRun skips writing the blueprint file and updating the fallback
	// record.
	DryRun bool `json:"dry_run,omitempty"`

	// RunID identifies the run in logs and the result. Defaults to the
	// BITBYBIT_RUN_ID environment variable, then to a fresh UUID.
	RunID string `json:"run_id,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ConfigPath == "" {
		return fmt.Errorf("config_path is required")
	}
	if o.RunID == "" {
		if id := os.Getenv(RunIDEnv); id != "" {
			o.RunID = id
		} else {
			o.RunID = uuid.NewString()
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result - Run Outcome
// =============================================================================

// Result contains the outcome of a generation run. I/O and configuration
// failures surface here as Success=false with a message rather than as a
// returned error, so schedulers can record the outcome uniformly.
type Result struct {
	// Success reports whether a blueprint was produced and exported.
	Success bool `json:"success"`

	// Error holds the failure message when Success is false.
	Error string `json:"error,omitempty"`

	// RunID identifies the run.
	RunID string `json:"run_id"`

	// BlueprintFile is the path the blueprint was written to. Empty for dry
	// runs and failures.
	BlueprintFile string `json:"blueprint_file,omitempty"`

	// Source records where the layout came from.
	Source placer.Source `json:"source,omitempty"`

	// TotalComponents counts every exported placement, fills included.
	TotalComponents int `json:"total_components,omitempty"`

	// Efficiency is the occupied-cell percentage of the exported grid.
	Efficiency float64 `json:"efficiency,omitempty"`

	// Stats contains timing and fill information.
	Stats Stats `json:"stats,omitempty"`
}

// Stats contains run execution statistics.
type Stats struct {
	Attempts     int           `json:"attempts"`
	StocksPlaced int           `json:"stocks_placed"`
	DayPlaced    bool          `json:"day_placed"`
	BitsPlaced   int           `json:"bits_placed"`
	PlaceTime    time.Duration `json:"place_time"`
	ExportTime   time.Duration `json:"export_time"`
}

// failure builds a failed result carrying the run identifier.
func failure(runID string, err error) *Result {
	return &Result{
		Success: false,
		Error:   err.Error(),
		RunID:   runID,
	}
}
