package placer

import (
	"fmt"
	"math/rand/v2"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

// Fill pass shapes. Stocks take a 2x2 tile, the day counter a 2x1 tile, and
// bits soak up whatever single cells remain.
const (
	stockWidth  = 2
	stockHeight = 2
	dayWidth    = 2
	dayHeight   = 1
)

// FillStocks places up to maxCount 2x2 stock tiles, each at the first
// remaining free position in row-major order, and returns how many landed.
// The free set is re-queried after every placement so later tiles see the
// shrunken grid.
func FillStocks(g *grid.Grid, maxCount int) int {
	placed := 0
	for placed < maxCount {
		free := g.FreePositions(stockWidth, stockHeight)
		if len(free) == 0 {
			break
		}
		pos := free[0]
		ok := g.Place(grid.Placement{
			ID:     fmt.Sprintf("stock_%d", placed+1),
			X:      pos.X,
			Y:      pos.Y,
			Width:  stockWidth,
			Height: stockHeight,
			Type:   grid.TypeStock,
			Data:   map[string]any{},
		})
		if !ok {
			break
		}
		placed++
	}
	return placed
}

// FillDayNumber places a single 2x1 day counter at the first free row-major
// position, if one exists.
func FillDayNumber(g *grid.Grid) bool {
	free := g.FreePositions(dayWidth, dayHeight)
	if len(free) == 0 {
		return false
	}
	return g.Place(grid.Placement{
		ID:     "day_1",
		X:      free[0].X,
		Y:      free[0].Y,
		Width:  dayWidth,
		Height: dayHeight,
		Type:   grid.TypeDayNumber,
		Data:   map[string]any{},
	})
}

// FillBits saturates every remaining free cell with 1x1 bit components, each
// carrying a random binary value, and returns how many were placed. After
// this pass the grid has no free cells.
func FillBits(g *grid.Grid, rng *rand.Rand) int {
	placed := 0
	for {
		free := g.FreePositions(1, 1)
		if len(free) == 0 {
			return placed
		}
		for _, pos := range free {
			ok := g.Place(grid.Placement{
				ID:     fmt.Sprintf("bit_%d", placed+1),
				X:      pos.X,
				Y:      pos.Y,
				Width:  1,
				Height: 1,
				Type:   grid.TypeBit,
				Data:   map[string]any{"value": rng.IntN(2)},
			})
			if ok {
				placed++
			}
		}
	}
}
