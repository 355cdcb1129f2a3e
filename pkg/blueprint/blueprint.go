// Package blueprint defines the interchange document the placement engine
// emits and the downstream content filler consumes.
//
// A blueprint serializes the final placement list with 1-based row/column
// coordinates plus a metadata block (grid configuration, component count,
// occupancy efficiency, generation timestamp). The same document doubles as
// the fallback record: the last successful blueprint is persisted and
// reloaded when a later run cannot converge.
package blueprint

import (
	"time"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

// GridConfig echoes the run configuration's grid block. CellSize is
// cosmetic metadata for renderers; the algorithm never reads it.
type GridConfig struct {
	Columns  int `json:"columns"`
	Rows     int `json:"rows"`
	CellSize int `json:"cell_size"`
}

// Metadata describes the generation run that produced the blueprint.
type Metadata struct {
	GeneratedAt     time.Time  `json:"generated_at"`
	GridConfig      GridConfig `json:"grid_config"`
	TotalComponents int        `json:"total_components"`
	Efficiency      float64    `json:"efficiency"`
}

// Position locates a component on the grid. Row and Column are 1-based in
// this document; the in-memory grid uses 0-based coordinates.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Component is one placed rectangle. Data is an empty object for every type
// except filler bits until the downstream filler attaches real content.
type Component struct {
	ID       string         `json:"id"`
	Type     grid.Type      `json:"type"`
	Position Position       `json:"position"`
	Data     map[string]any `json:"data"`
}

// Blueprint is the complete interchange document.
type Blueprint struct {
	Metadata   Metadata    `json:"metadata"`
	Components []Component `json:"components"`
}

// FromGrid exports the grid's placement list into blueprint form, converting
// coordinates to 1-based and computing the occupancy efficiency.
func FromGrid(g *grid.Grid, cellSize int, now time.Time) *Blueprint {
	placements := g.Placements()
	components := make([]Component, 0, len(placements))
	for _, p := range placements {
		data := p.Data
		if data == nil {
			data = map[string]any{}
		}
		components = append(components, Component{
			ID:   p.ID,
			Type: p.Type,
			Position: Position{
				Row:    p.Y + 1,
				Column: p.X + 1,
				Width:  p.Width,
				Height: p.Height,
			},
			Data: data,
		})
	}
	return &Blueprint{
		Metadata: Metadata{
			GeneratedAt:     now,
			GridConfig:      GridConfig{Columns: g.Columns(), Rows: g.Rows(), CellSize: cellSize},
			TotalComponents: len(components),
			Efficiency:      g.Efficiency(),
		},
		Components: components,
	}
}

// Placement converts the component back into a 0-based grid placement.
func (c Component) Placement() grid.Placement {
	return grid.Placement{
		ID:     c.ID,
		X:      c.Position.Column - 1,
		Y:      c.Position.Row - 1,
		Width:  c.Position.Width,
		Height: c.Position.Height,
		Type:   c.Type,
		Data:   c.Data,
	}
}

// Grid reconstructs the occupancy grid and placement list the blueprint was
// exported from. It fails when the grid configuration is unusable or any
// component falls out of bounds or overlaps another.
func (b *Blueprint) Grid() (*grid.Grid, error) {
	g, err := grid.New(b.Metadata.GridConfig.Columns, b.Metadata.GridConfig.Rows)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBlueprint, err, "blueprint grid config is unusable")
	}
	for _, c := range b.Components {
		if !g.Place(c.Placement()) {
			return nil, errors.New(errors.ErrCodeInvalidBlueprint,
				"component %s does not fit at row %d column %d (%dx%d)",
				c.ID, c.Position.Row, c.Position.Column, c.Position.Width, c.Position.Height)
		}
	}
	return g, nil
}
