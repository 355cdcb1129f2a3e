// Package placer implements the randomized retry-based placement search: one
// self-contained attempt that places the whole catalog or fails, an
// orchestrator that repeats attempts under a budget and degrades to the
// fallback layout, and the deterministic fill passes that consume leftover
// space.
package placer

import (
	"fmt"
	"math/rand/v2"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/catalog"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

// maxPositionDraws bounds how many random positions a single worklist item
// may try before the whole attempt is abandoned. Failing the attempt instead
// of just the item avoids local-optimum traps a greedy single-pass placer
// would get stuck in.
const maxPositionDraws = 10

// workItem is one component instance awaiting placement, with its shape
// already resolved (flexible instances pick a shape before entering the
// worklist).
type workItem struct {
	id     string
	width  int
	height int
	typ    grid.Type
}

// AttemptOnce runs a single placement attempt from scratch and reports
// whether it converged. The attempt owns a fresh grid; a failed attempt's
// state is discarded by the caller.
//
// Branding instances are placed first at uniform random free positions and
// must all land - this is a hard precondition, not a priority hint. Every
// remaining fixed instance, plus one randomly shaped instance per flexible
// requirement, then goes into a shuffled worklist where each item gets up to
// maxPositionDraws random positions before the attempt is declared failed.
//
// Given the same catalog, dimensions, and rng state the result is fully
// deterministic.
func AttemptOnce(cat catalog.Catalog, columns, rows int, rng *rand.Rand) (*grid.Grid, bool) {
	g, err := grid.New(columns, rows)
	if err != nil {
		return nil, false
	}

	var brandings, others []catalog.ComponentSpec
	for _, spec := range cat.Fixed {
		if spec.Type == grid.TypeBranding {
			brandings = append(brandings, spec)
		} else {
			others = append(others, spec)
		}
	}

	for _, spec := range brandings {
		for i := 1; i <= spec.Count; i++ {
			pos, ok := g.RandomPosition(spec.Width, spec.Height, rng)
			if !ok {
				return nil, false
			}
			placed := g.Place(grid.Placement{
				ID:     fmt.Sprintf("%s_%d", spec.Name, i),
				X:      pos.X,
				Y:      pos.Y,
				Width:  spec.Width,
				Height: spec.Height,
				Type:   spec.Type,
			})
			if !placed {
				return nil, false
			}
		}
	}

	var work []workItem
	for _, spec := range others {
		for i := 1; i <= spec.Count; i++ {
			work = append(work, workItem{
				id:     fmt.Sprintf("%s_%d", spec.Name, i),
				width:  spec.Width,
				height: spec.Height,
				typ:    spec.Type,
			})
		}
	}
	for _, spec := range cat.Flexible {
		for i := 1; i <= spec.TotalCount; i++ {
			shape := spec.Shapes[rng.IntN(len(spec.Shapes))]
			work = append(work, workItem{
				id:     fmt.Sprintf("%s_%d", spec.Name, i),
				width:  shape.Width,
				height: shape.Height,
				typ:    spec.Type,
			})
		}
	}
	rng.Shuffle(len(work), func(i, j int) { work[i], work[j] = work[j], work[i] })

	for _, item := range work {
		placed := false
		for range maxPositionDraws {
			pos, ok := g.RandomPosition(item.width, item.height, rng)
			if !ok {
				break
			}
			if g.Place(grid.Placement{
				ID:     item.id,
				X:      pos.X,
				Y:      pos.Y,
				Width:  item.width,
				Height: item.height,
				Type:   item.typ,
			}) {
				placed = true
				break
			}
		}
		if !placed {
			return nil, false
		}
	}

	return g, true
}
