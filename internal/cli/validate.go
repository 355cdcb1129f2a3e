package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/blueprint"
)

// validateCommand creates the validate command for checking blueprint files.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [blueprint.json]",
		Short: "Check a blueprint file for structural problems",
		Long: `Check a blueprint file for structural problems.

Validation verifies grid dimensions, placement bounds, overlap freedom, and
that the recorded component count and efficiency match the placements.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, err := blueprint.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load blueprint %s: %w", args[0], err)
			}

			problems := bp.Validate()
			if len(problems) == 0 {
				printSuccess("Blueprint is valid")
				printStats(bp.Metadata.TotalComponents, bp.Metadata.Efficiency, "")
				return nil
			}

			printError("Blueprint has %d problem(s)", len(problems))
			for _, p := range problems {
				fmt.Println("  " + StyleDim.Render(iconArrow) + " " + p.Error())
			}
			return fmt.Errorf("validate: %d problem(s) found", len(problems))
		},
	}

	return cmd
}
