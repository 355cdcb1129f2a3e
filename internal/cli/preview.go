package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/blueprint"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

// previewCommand creates the preview command for rendering a blueprint in
// the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [blueprint.json]",
		Short: "Render a blueprint as a terminal grid",
		Long: `Render a blueprint as a terminal grid.

Each cell is drawn as a single character keyed by component type, so the
layout can be inspected without opening the downstream renderer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, err := blueprint.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load blueprint %s: %w", args[0], err)
			}
			fmt.Print(renderPreview(bp))
			return nil
		},
	}

	return cmd
}

// renderPreview draws the blueprint as a character grid with a legend.
func renderPreview(bp *blueprint.Blueprint) string {
	cols := bp.Metadata.GridConfig.Columns
	rows := bp.Metadata.GridConfig.Rows

	cells := make([]grid.Type, cols*rows)
	seen := map[grid.Type]bool{}
	for _, comp := range bp.Components {
		p := comp.Placement()
		seen[comp.Type] = true
		for y := p.Y; y < p.Y+p.Height && y < rows; y++ {
			for x := p.X; x < p.X+p.Width && x < cols; x++ {
				if x >= 0 && y >= 0 {
					cells[y*cols+x] = comp.Type
				}
			}
		}
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%dx%d grid", cols, rows)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d components · %.1f%% filled",
		bp.Metadata.TotalComponents, bp.Metadata.Efficiency)))
	b.WriteString("\n\n")

	for y := 0; y < rows; y++ {
		b.WriteString("  ")
		for x := 0; x < cols; x++ {
			t := cells[y*cols+x]
			if t == "" {
				b.WriteString(StyleDim.Render(".") + " ")
				continue
			}
			b.WriteString(typeGlyph(t) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, t := range []grid.Type{
		grid.TypeBranding, grid.TypeHeadline, grid.TypeGithubRepo,
		grid.TypeQuickLink, grid.TypeStock, grid.TypeDayNumber,
		grid.TypeBit, grid.TypeUnknown,
	} {
		if !seen[t] {
			continue
		}
		b.WriteString("  " + typeGlyph(t) + " " + StyleDim.Render(string(t)))
	}
	b.WriteString("\n")
	return b.String()
}
