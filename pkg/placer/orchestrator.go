package placer

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/catalog"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/fallback"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

// ============================================================================
// SOURCES
// ============================================================================

// Source records where a generated layout came from.
type Source string

const (
	// SourceFresh marks a layout produced by a successful placement attempt.
	SourceFresh Source = "fresh"

	// SourceFallback marks a layout restored from the fallback store.
	SourceFallback Source = "fallback"

	// SourceMinimal marks the built-in last-resort layout, used when the
	// search failed and no stored fallback exists.
	SourceMinimal Source = "minimal"
)

// ============================================================================
// ORCHESTRATOR
// ============================================================================

// Orchestrator drives the retry loop around AttemptOnce and degrades to the
// fallback chain when the search does not converge. The orchestrator never
// fails outright: if every attempt and the stored fallback are unavailable
// it falls back to a minimal built-in layout, so callers always get a grid.
type Orchestrator struct {
	maxRetries int
	store      fallback.Store
	logger     *log.Logger
	rng        *rand.Rand
}

// Result is the outcome of a generation run.
type Result struct {
	Grid     *grid.Grid
	Source   Source
	Attempts int
}

// New creates an orchestrator. The store may be nil, in which case the
// fallback chain skips straight to the minimal layout. A nil logger
// discards output and a nil rng falls back to a fresh entropy-seeded one.
func New(maxRetries int, store fallback.Store, logger *log.Logger, rng *rand.Rand) *Orchestrator {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if rng == nil {
		rng = NewRNG(0)
	}
	return &Orchestrator{
		maxRetries: maxRetries,
		store:      store,
		logger:     logger,
		rng:        rng,
	}
}

// Generate runs placement attempts until one converges or the retry budget
// is spent, then falls back. The context is consulted only for store access;
// the search itself is CPU-bound and short enough to run to completion.
func (o *Orchestrator) Generate(ctx context.Context, cat catalog.Catalog, columns, rows int) *Result {
	for attempt := 1; attempt <= o.maxRetries; attempt++ {
		g, ok := AttemptOnce(cat, columns, rows, o.rng)
		if ok {
			o.logger.Debug("placement converged", "attempt", attempt)
			return &Result{Grid: g, Source: SourceFresh, Attempts: attempt}
		}
	}

	o.logger.Warn("placement search exhausted, using fallback",
		"max_retries", o.maxRetries)

	g := o.loadFallback(ctx)
	if g != nil {
		return &Result{Grid: g, Source: SourceFallback, Attempts: o.maxRetries}
	}
	return &Result{Grid: minimalLayout(), Source: SourceMinimal, Attempts: o.maxRetries}
}

// loadFallback restores a grid from the store, or returns nil when no usable
// record exists.
func (o *Orchestrator) loadFallback(ctx context.Context) *grid.Grid {
	if o.store == nil {
		return nil
	}
	bp, err := o.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, fallback.ErrNotFound) {
			o.logger.Warn("fallback store unreadable", "error", err)
		}
		return nil
	}
	g, err := bp.Grid()
	if err != nil {
		o.logger.Warn("stored fallback blueprint invalid", "error", err)
		return nil
	}
	return g
}

// minimalLayout builds the hardcoded last-resort grid: a 12x16 board with
// just a branding tile, a headline, and a quick link.
func minimalLayout() *grid.Grid {
	g, err := grid.New(12, 16)
	if err != nil {
		panic(err)
	}
	placements := []grid.Placement{
		{ID: "branding_1", X: 0, Y: 0, Width: 2, Height: 2, Type: grid.TypeBranding},
		{ID: "headline_1", X: 2, Y: 0, Width: 5, Height: 4, Type: grid.TypeHeadline},
		{ID: "quick_link_1", X: 0, Y: 4, Width: 6, Height: 1, Type: grid.TypeQuickLink},
	}
	for _, p := range placements {
		if !g.Place(p) {
			panic("minimal layout placement failed: " + p.ID)
		}
	}
	return g
}
