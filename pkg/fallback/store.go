// Package fallback persists the last successfully generated blueprint so the
// orchestrator can serve a known-good layout when live placement cannot
// converge within its retry budget.
//
// The record is overwritten on every successful generation and read only on
// exhaustion. Backends:
//
//   - FileStore: a JSON file, for CLI and single-host use
//   - RedisStore: a single Redis key, for multi-instance deployments
//   - MemoryStore: an in-process double for tests
package fallback

import (
	"context"
	"errors"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/blueprint"
)

// ErrNotFound is returned by Load when no fallback record has been saved.
var ErrNotFound = errors.New("fallback record not found")

// Store is the interface for fallback-record persistence. Save overwrites
// the previous record unconditionally. Implementations must be safe for
// concurrent use: the record is shared mutable state overwritten on every
// successful run.
type Store interface {
	// Load retrieves the last saved blueprint.
	// Returns ErrNotFound when no record exists.
	Load(ctx context.Context) (*blueprint.Blueprint, error)

	// Save persists the blueprint as the new fallback record.
	Save(ctx context.Context, b *blueprint.Blueprint) error
}

// Clearer is implemented by stores that can delete their record. Clearing an
// absent record is not an error.
type Clearer interface {
	Clear(ctx context.Context) error
}
