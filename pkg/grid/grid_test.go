package grid

import (
	"math/rand/v2"
	"testing"
)

func mustGrid(t *testing.T, columns, rows int) *Grid {
	t.Helper()
	g, err := New(columns, rows)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", columns, rows, err)
	}
	return g
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
	}{
		{"zero columns", 0, 16},
		{"zero rows", 12, 0},
		{"negative columns", -1, 16},
		{"negative rows", 12, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.columns, tt.rows); err == nil {
				t.Errorf("New(%d, %d) should fail", tt.columns, tt.rows)
			}
		})
	}
}

func TestCanPlace(t *testing.T) {
	g := mustGrid(t, 12, 16)
	if !g.Place(Placement{ID: "branding_1", X: 0, Y: 0, Width: 2, Height: 2, Type: TypeBranding}) {
		t.Fatal("initial placement should succeed")
	}

	tests := []struct {
		name       string
		x, y, w, h int
		want       bool
	}{
		{"free area", 4, 4, 2, 2, true},
		{"exact fit against right edge", 10, 0, 2, 2, true},
		{"exact fit against bottom edge", 0, 14, 2, 2, true},
		{"overlaps existing placement", 1, 1, 2, 2, false},
		{"touching is not overlapping", 2, 0, 2, 2, true},
		{"out of bounds right", 11, 0, 2, 2, false},
		{"out of bounds bottom", 0, 15, 1, 2, false},
		{"negative x", -1, 0, 2, 2, false},
		{"negative y", 0, -1, 2, 2, false},
		{"zero width", 4, 4, 0, 2, false},
		{"zero height", 4, 4, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CanPlace(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("CanPlace(%d, %d, %d, %d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestCanPlaceIdempotent(t *testing.T) {
	g := mustGrid(t, 6, 6)
	g.Place(Placement{ID: "branding_1", X: 2, Y: 2, Width: 2, Height: 2, Type: TypeBranding})

	first := g.CanPlace(3, 3, 2, 2)
	for range 5 {
		if got := g.CanPlace(3, 3, 2, 2); got != first {
			t.Fatal("CanPlace changed result without an intervening Place")
		}
	}
}

func TestPlaceFailureDoesNotMutate(t *testing.T) {
	g := mustGrid(t, 6, 6)
	g.Place(Placement{ID: "a", X: 0, Y: 0, Width: 3, Height: 3, Type: TypeHeadline})

	before := g.OccupiedCells()
	if g.Place(Placement{ID: "b", X: 2, Y: 2, Width: 3, Height: 3, Type: TypeHeadline}) {
		t.Fatal("overlapping placement should fail")
	}
	if g.OccupiedCells() != before {
		t.Error("failed Place mutated occupancy")
	}
	if len(g.Placements()) != 1 {
		t.Errorf("failed Place appended to placement list, got %d entries", len(g.Placements()))
	}
}

func TestFreePositionsRowMajor(t *testing.T) {
	g := mustGrid(t, 4, 3)
	g.Place(Placement{ID: "a", X: 0, Y: 0, Width: 2, Height: 2, Type: TypeBranding})

	got := g.FreePositions(2, 2)
	expected := []Position{{X: 2, Y: 0}, {X: 2, Y: 1}}
	if len(got) != len(expected) {
		t.Fatalf("FreePositions(2,2) = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("FreePositions[%d] = %v, want %v", i, got[i], expected[i])
		}
	}
}

func TestFreePositionsTooLarge(t *testing.T) {
	g := mustGrid(t, 4, 3)
	if got := g.FreePositions(5, 1); len(got) != 0 {
		t.Errorf("FreePositions wider than grid = %v, want empty", got)
	}
	if got := g.FreePositions(1, 4); len(got) != 0 {
		t.Errorf("FreePositions taller than grid = %v, want empty", got)
	}
}

func TestRandomPosition(t *testing.T) {
	g := mustGrid(t, 4, 4)
	rng := rand.New(rand.NewPCG(1, 2))

	pos, ok := g.RandomPosition(2, 2, rng)
	if !ok {
		t.Fatal("RandomPosition on empty grid should succeed")
	}
	if !g.CanPlace(pos.X, pos.Y, 2, 2) {
		t.Errorf("RandomPosition returned unusable position %v", pos)
	}

	// Saturate the grid and confirm no position remains.
	for _, p := range g.FreePositions(1, 1) {
		g.Place(Placement{ID: "fill", X: p.X, Y: p.Y, Width: 1, Height: 1, Type: TypeBit})
	}
	if _, ok := g.RandomPosition(1, 1, rng); ok {
		t.Error("RandomPosition on full grid should report no space")
	}
}

func TestNoOverlapInvariant(t *testing.T) {
	g := mustGrid(t, 12, 16)
	rng := rand.New(rand.NewPCG(7, 11))

	// Land a batch of random rectangles through the public API, then verify
	// pairwise disjointness of everything that was accepted.
	for i := 0; i < 200; i++ {
		w := 1 + rng.IntN(4)
		h := 1 + rng.IntN(4)
		x := rng.IntN(12)
		y := rng.IntN(16)
		g.Place(Placement{ID: "p", X: x, Y: y, Width: w, Height: h, Type: TypeUnknown})
	}

	placements := g.Placements()
	for i := range placements {
		for j := i + 1; j < len(placements); j++ {
			if placements[i].Intersects(placements[j]) {
				t.Fatalf("placements %d and %d overlap: %+v vs %+v", i, j, placements[i], placements[j])
			}
		}
	}

	// Occupancy must equal the sum of placement areas.
	total := 0
	for _, p := range placements {
		total += p.Cells()
	}
	if g.OccupiedCells() != total {
		t.Errorf("OccupiedCells = %d, want sum of areas %d", g.OccupiedCells(), total)
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		place         []Placement
		want          float64
	}{
		{
			name:    "empty grid",
			columns: 12, rows: 16,
			want: 0,
		},
		{
			name:    "half full",
			columns: 4, rows: 4,
			place: []Placement{{ID: "a", X: 0, Y: 0, Width: 4, Height: 2, Type: TypeHeadline}},
			want:  50.0,
		},
		{
			name:    "rounded to one decimal",
			columns: 12, rows: 16,
			place: []Placement{{ID: "a", X: 0, Y: 0, Width: 5, Height: 10, Type: TypeHeadline}},
			// 50 / 192 * 100 = 26.0416...
			want: 26.0,
		},
		{
			name:    "full grid",
			columns: 3, rows: 3,
			place: []Placement{{ID: "a", X: 0, Y: 0, Width: 3, Height: 3, Type: TypeBranding}},
			want:  100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.columns, tt.rows)
			for _, p := range tt.place {
				if !g.Place(p) {
					t.Fatalf("setup placement %+v failed", p)
				}
			}
			if got := g.Efficiency(); got != tt.want {
				t.Errorf("Efficiency() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"headline", TypeHeadline},
		{"github_repo", TypeGithubRepo},
		{"branding", TypeBranding},
		{"quick_link", TypeQuickLink},
		{"stock", TypeStock},
		{"day_number", TypeDayNumber},
		{"bit", TypeBit},
		{"weather_widget", TypeUnknown},
		{"", TypeUnknown},
	}

	for _, tt := range tests {
		if got := TypeFromName(tt.name); got != tt.want {
			t.Errorf("TypeFromName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
