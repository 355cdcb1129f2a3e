package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/fallback"
)

// fallbackCommand creates the fallback command group for inspecting and
// clearing the last-known-good record.
func (c *CLI) fallbackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fallback",
		Short: "Inspect or clear the fallback blueprint record",
	}

	cmd.AddCommand(c.fallbackShowCommand())
	cmd.AddCommand(c.fallbackClearCommand())

	return cmd
}

// fallbackShowCommand creates the fallback show subcommand.
func (c *CLI) fallbackShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [config.toml]",
		Short: "Show the stored fallback blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(args[0])
			if err != nil {
				return fmt.Errorf("open fallback store: %w", err)
			}

			bp, err := store.Load(cmd.Context())
			if errors.Is(err, fallback.ErrNotFound) {
				printInfo("No fallback record saved yet")
				return nil
			}
			if err != nil {
				return fmt.Errorf("load fallback record: %w", err)
			}

			printKeyValue("generated", bp.Metadata.GeneratedAt.Format(time.RFC3339))
			printKeyValue("grid", fmt.Sprintf("%dx%d",
				bp.Metadata.GridConfig.Columns, bp.Metadata.GridConfig.Rows))
			printKeyValue("components", fmt.Sprintf("%d", bp.Metadata.TotalComponents))
			printKeyValue("efficiency", fmt.Sprintf("%.1f%%", bp.Metadata.Efficiency))
			return nil
		},
	}

	return cmd
}

// fallbackClearCommand creates the fallback clear subcommand.
func (c *CLI) fallbackClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear [config.toml]",
		Short: "Delete the stored fallback blueprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(args[0])
			if err != nil {
				return fmt.Errorf("open fallback store: %w", err)
			}

			clearer, ok := store.(fallback.Clearer)
			if !ok {
				return fmt.Errorf("fallback store does not support clearing")
			}
			if err := clearer.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear fallback record: %w", err)
			}
			printSuccess("Fallback record cleared")
			return nil
		},
	}

	return cmd
}
