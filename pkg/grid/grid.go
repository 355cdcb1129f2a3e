// Package grid implements the occupancy map the placement engine works
// against: a bounded rectangular grid of cells plus the ordered list of
// rectangles placed on it.
//
// The grid offers three query primitives that drive the entire search:
//
//   - CanPlace: bounds plus collision check for one rectangle
//   - FreePositions: exhaustive row-major enumeration of fitting corners
//   - RandomPosition: uniform draw over FreePositions
//
// FreePositions is O(columns x rows) per call and is invoked many times per
// placement attempt. That is the dominant cost of the whole algorithm and is
// acceptable because newsletter grids stay in the tens of cells per dimension.
package grid

import (
	"math"
	"math/rand/v2"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
)

// Position is a 0-based top-left corner on the grid.
type Position struct {
	X int
	Y int
}

// Grid is a rectangular occupancy map. Dimensions are fixed at construction;
// cells flip from free to occupied as placements land. Every occupied cell
// belongs to exactly one placement in the ordered placement list.
//
// A Grid is not safe for concurrent use. Each placement attempt owns its own
// fresh Grid.
type Grid struct {
	columns int
	rows    int
	cells   []bool
	placed  []Placement
}

// New creates an empty grid with the given dimensions.
func New(columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "grid dimensions must be positive, got %dx%d", columns, rows)
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]bool, columns*rows),
	}, nil
}

// Columns returns the grid width in cells.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// TotalCells returns columns x rows.
func (g *Grid) TotalCells() int { return len(g.cells) }

// CanPlace reports whether a width x height rectangle fits at (x, y): fully
// inside the grid with every covered cell free. It is read-only; repeated
// calls with the same arguments return the same result until a Place lands.
func (g *Grid) CanPlace(x, y, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if x < 0 || y < 0 || x+width > g.columns || y+height > g.rows {
		return false
	}
	for cy := y; cy < y+height; cy++ {
		for cx := x; cx < x+width; cx++ {
			if g.cells[cy*g.columns+cx] {
				return false
			}
		}
	}
	return true
}

// Place claims the placement's rectangle on the grid and appends it to the
// placement list. It re-validates via CanPlace and returns false without any
// mutation when the rectangle is out of bounds or collides.
func (g *Grid) Place(p Placement) bool {
	if !g.CanPlace(p.X, p.Y, p.Width, p.Height) {
		return false
	}
	for cy := p.Y; cy < p.Y+p.Height; cy++ {
		for cx := p.X; cx < p.X+p.Width; cx++ {
			g.cells[cy*g.columns+cx] = true
		}
	}
	g.placed = append(g.placed, p)
	return true
}

// FreePositions returns every top-left corner where a width x height
// rectangle currently fits, in row-major order (top to bottom, left to
// right). The fill passes rely on this ordering.
func (g *Grid) FreePositions(width, height int) []Position {
	if width <= 0 || height <= 0 {
		return nil
	}
	var positions []Position
	for y := 0; y <= g.rows-height; y++ {
		for x := 0; x <= g.columns-width; x++ {
			if g.CanPlace(x, y, width, height) {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// RandomPosition draws one position uniformly from FreePositions. The second
// return value is false when no fitting position exists.
func (g *Grid) RandomPosition(width, height int, rng *rand.Rand) (Position, bool) {
	positions := g.FreePositions(width, height)
	if len(positions) == 0 {
		return Position{}, false
	}
	return positions[rng.IntN(len(positions))], true
}

// Placements returns the placements in the order they landed. The returned
// slice is owned by the grid and must not be modified.
func (g *Grid) Placements() []Placement {
	return g.placed
}

// OccupiedCells returns the number of cells currently claimed.
func (g *Grid) OccupiedCells() int {
	n := 0
	for _, occupied := range g.cells {
		if occupied {
			n++
		}
	}
	return n
}

// Efficiency returns the occupancy percentage rounded to one decimal place.
func (g *Grid) Efficiency() float64 {
	return math.Round(float64(g.OccupiedCells())/float64(len(g.cells))*1000) / 10
}
