package blueprint

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

func buildGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(12, 16)
	if err != nil {
		t.Fatal(err)
	}
	placements := []grid.Placement{
		{ID: "branding_1", X: 0, Y: 0, Width: 2, Height: 2, Type: grid.TypeBranding},
		{ID: "headline_1", X: 2, Y: 0, Width: 5, Height: 4, Type: grid.TypeHeadline},
		{ID: "quick_link_1", X: 0, Y: 4, Width: 6, Height: 1, Type: grid.TypeQuickLink},
		{ID: "bit_1", X: 0, Y: 15, Width: 1, Height: 1, Type: grid.TypeBit, Data: map[string]any{"value": 1}},
	}
	for _, p := range placements {
		if !g.Place(p) {
			t.Fatalf("setup placement %+v failed", p)
		}
	}
	return g
}

func TestFromGrid(t *testing.T) {
	g := buildGrid(t)
	now := time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC)
	b := FromGrid(g, 48, now)

	if b.Metadata.TotalComponents != 4 {
		t.Errorf("TotalComponents = %d, want 4", b.Metadata.TotalComponents)
	}
	if b.Metadata.GridConfig.Columns != 12 || b.Metadata.GridConfig.Rows != 16 || b.Metadata.GridConfig.CellSize != 48 {
		t.Errorf("GridConfig = %+v", b.Metadata.GridConfig)
	}
	if !b.Metadata.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", b.Metadata.GeneratedAt, now)
	}
	if b.Metadata.Efficiency != g.Efficiency() {
		t.Errorf("Efficiency = %v, want %v", b.Metadata.Efficiency, g.Efficiency())
	}

	// Coordinates are 1-based in the document.
	headline := b.Components[1]
	if headline.Position.Row != 1 || headline.Position.Column != 3 {
		t.Errorf("headline position = %+v, want row 1 column 3", headline.Position)
	}
	if headline.Type != grid.TypeHeadline {
		t.Errorf("headline type = %q", headline.Type)
	}

	// Placeholder components carry an empty, non-nil data object.
	if b.Components[0].Data == nil || len(b.Components[0].Data) != 0 {
		t.Errorf("branding data = %v, want empty object", b.Components[0].Data)
	}
	if v, ok := b.Components[3].Data["value"]; !ok || v != 1 {
		t.Errorf("bit data = %v, want value 1", b.Components[3].Data)
	}
}

func TestRoundTrip(t *testing.T) {
	g := buildGrid(t)
	b := FromGrid(g, 48, time.Now())

	restored, err := b.Grid()
	if err != nil {
		t.Fatalf("Grid(): %v", err)
	}

	original := g.Placements()
	got := restored.Placements()
	if len(got) != len(original) {
		t.Fatalf("restored %d placements, want %d", len(got), len(original))
	}
	for i := range original {
		if got[i].ID != original[i].ID ||
			got[i].X != original[i].X || got[i].Y != original[i].Y ||
			got[i].Width != original[i].Width || got[i].Height != original[i].Height ||
			got[i].Type != original[i].Type {
			t.Errorf("placement %d = %+v, want %+v", i, got[i], original[i])
		}
	}
	if restored.OccupiedCells() != g.OccupiedCells() {
		t.Errorf("restored occupancy = %d, want %d", restored.OccupiedCells(), g.OccupiedCells())
	}
}

func TestGridRejectsCorruptBlueprints(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Blueprint)
	}{
		{
			name:   "zero dimensions",
			mutate: func(b *Blueprint) { b.Metadata.GridConfig.Columns = 0 },
		},
		{
			name: "out of bounds component",
			mutate: func(b *Blueprint) {
				b.Components[0].Position.Column = 12
				b.Components[0].Position.Width = 3
			},
		},
		{
			name: "overlapping components",
			mutate: func(b *Blueprint) {
				b.Components[1].Position = b.Components[0].Position
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromGrid(buildGrid(t), 48, time.Now())
			tt.mutate(b)
			if _, err := b.Grid(); !errors.Is(err, errors.ErrCodeInvalidBlueprint) {
				t.Errorf("Grid() error = %v, want INVALID_BLUEPRINT", err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := FromGrid(buildGrid(t), 48, time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := Encode(b, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.Metadata.TotalComponents != b.Metadata.TotalComponents {
		t.Errorf("TotalComponents = %d, want %d", decoded.Metadata.TotalComponents, b.Metadata.TotalComponents)
	}
	if len(decoded.Components) != len(b.Components) {
		t.Fatalf("components = %d, want %d", len(decoded.Components), len(b.Components))
	}
	if decoded.Components[0].Type != grid.TypeBranding {
		t.Errorf("decoded type = %q, want %q", decoded.Components[0].Type, grid.TypeBranding)
	}
}

func TestWriteReadFile(t *testing.T) {
	b := FromGrid(buildGrid(t), 48, time.Now())
	path := filepath.Join(t.TempDir(), "out", "blueprint.json")

	if err := WriteFile(b, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if loaded.Metadata.TotalComponents != b.Metadata.TotalComponents {
		t.Errorf("loaded TotalComponents = %d, want %d", loaded.Metadata.TotalComponents, b.Metadata.TotalComponents)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile missing error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestValidate(t *testing.T) {
	t.Run("clean blueprint", func(t *testing.T) {
		b := FromGrid(buildGrid(t), 48, time.Now())
		if problems := b.Validate(); len(problems) != 0 {
			t.Errorf("Validate = %v, want none", problems)
		}
	})

	t.Run("reports every violation", func(t *testing.T) {
		b := FromGrid(buildGrid(t), 48, time.Now())
		b.Components[1].Position = b.Components[0].Position // overlap
		b.Metadata.TotalComponents = 99                     // count mismatch
		problems := b.Validate()
		if len(problems) < 2 {
			t.Errorf("Validate = %v, want overlap and count problems", problems)
		}
	})

	t.Run("efficiency mismatch", func(t *testing.T) {
		b := FromGrid(buildGrid(t), 48, time.Now())
		b.Metadata.Efficiency = 99.9
		problems := b.Validate()
		if len(problems) != 1 {
			t.Fatalf("Validate = %v, want one problem", problems)
		}
	})
}
