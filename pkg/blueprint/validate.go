package blueprint

import (
	"math"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
)

// Validate checks the blueprint's structural invariants and returns every
// violation found rather than stopping at the first:
//
//   - grid configuration has positive dimensions
//   - every component lies fully inside the grid
//   - no two components overlap
//   - total_components matches the component list
//   - efficiency matches the recomputed occupancy percentage
func (b *Blueprint) Validate() []error {
	var problems []error

	columns := b.Metadata.GridConfig.Columns
	rows := b.Metadata.GridConfig.Rows
	if columns <= 0 || rows <= 0 {
		problems = append(problems, errors.New(errors.ErrCodeInvalidBlueprint,
			"grid dimensions must be positive, got %dx%d", columns, rows))
		return problems
	}

	occupied := 0
	claimed := make(map[int]string, columns*rows)
	for _, c := range b.Components {
		p := c.Placement()
		if p.X < 0 || p.Y < 0 || p.X+p.Width > columns || p.Y+p.Height > rows {
			problems = append(problems, errors.New(errors.ErrCodeInvalidBlueprint,
				"component %s out of bounds at row %d column %d (%dx%d)",
				c.ID, c.Position.Row, c.Position.Column, p.Width, p.Height))
			continue
		}
		reported := false
		for y := p.Y; y < p.Y+p.Height; y++ {
			for x := p.X; x < p.X+p.Width; x++ {
				cell := y*columns + x
				if other, taken := claimed[cell]; taken {
					if !reported {
						problems = append(problems, errors.New(errors.ErrCodeInvalidBlueprint,
							"component %s overlaps %s at row %d column %d", c.ID, other, y+1, x+1))
						reported = true
					}
				} else {
					claimed[cell] = c.ID
					occupied++
				}
			}
		}
	}

	if b.Metadata.TotalComponents != len(b.Components) {
		problems = append(problems, errors.New(errors.ErrCodeInvalidBlueprint,
			"metadata reports %d components, document has %d", b.Metadata.TotalComponents, len(b.Components)))
	}

	wantEfficiency := math.Round(float64(occupied)/float64(columns*rows)*1000) / 10
	if b.Metadata.Efficiency != wantEfficiency {
		problems = append(problems, errors.New(errors.ErrCodeInvalidBlueprint,
			"metadata reports %.1f%% efficiency, occupancy computes to %.1f%%", b.Metadata.Efficiency, wantEfficiency))
	}

	return problems
}
