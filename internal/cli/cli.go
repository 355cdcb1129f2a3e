// Package cli implements the bitbybit command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/buildinfo"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/catalog"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/fallback"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "bitbybit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Bit-by-Bit generates newsletter grid blueprints",
		Long:         `Bit-by-Bit packs newsletter components onto a fixed grid using a randomized retry search and exports the resulting layout as a JSON blueprint for downstream rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.fallbackCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The store is resolved per
// run from the configuration.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(nil, c.Logger)
}

// newStore builds the fallback store a configuration selects.
func newStore(configPath string) (fallback.Store, error) {
	cfg, err := catalog.Load(configPath)
	if err != nil {
		return nil, err
	}
	return pipeline.StoreFromConfig(cfg.Fallback)
}
