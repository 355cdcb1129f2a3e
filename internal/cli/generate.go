package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/pipeline"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/placer"
)

// generateCommand creates the generate command, the main entry point for
// producing blueprints.
func (c *CLI) generateCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [config.toml]",
		Short: "Generate a grid blueprint from a layout configuration",
		Long: `Generate a grid blueprint from a layout configuration.

The generate command loads the TOML configuration, runs the randomized
placement search until a layout converges (or the retry budget is spent and
the fallback record takes over), fills leftover space with stocks, the day
counter, and bits, and writes the blueprint JSON to the output directory.

A successful fresh layout also refreshes the fallback record so future
exhausted runs have something recent to serve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = args[0]
			opts.Logger = c.Logger

			spinner := newSpinnerWithContext(cmd.Context(), "Searching for a layout...")
			spinner.Start()

			res := c.newRunner().Execute(cmd.Context(), opts)
			if !res.Success {
				spinner.StopWithError("Generation failed")
				return fmt.Errorf("generate: %s", res.Error)
			}
			spinner.Stop()

			if res.Source == placer.SourceFresh {
				printSuccess("Blueprint generated in %d attempt(s)", res.Stats.Attempts)
			} else {
				printWarning("Search exhausted, exported %s layout", res.Source)
			}
			printStats(res.TotalComponents, res.Efficiency, res.Source)
			if res.BlueprintFile != "" {
				printFile(res.BlueprintFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "output directory (overrides config)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducible layouts (overrides config)")
	cmd.Flags().IntVar(&opts.MaxRetries, "max-retries", 0, "placement attempt budget (overrides config)")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "run identifier for logs and results")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "run the search without writing the blueprint or fallback record")

	return cmd
}
