package grid

// Type identifies the kind of content a placement will carry. The type is
// assigned when the placement is created and travels with it into the
// blueprint, so downstream consumers never have to guess from generated ids.
type Type string

// Placement types recognized by the blueprint schema.
const (
	TypeHeadline   Type = "headline"
	TypeGithubRepo Type = "github_repo"
	TypeBranding   Type = "branding"
	TypeQuickLink  Type = "quick_link"
	TypeStock      Type = "stock"
	TypeDayNumber  Type = "day_number"
	TypeBit        Type = "bit"
	TypeUnknown    Type = "unknown"
)

// TypeFromName resolves a catalog component name to its placement type.
// Names outside the known catalog vocabulary map to TypeUnknown.
func TypeFromName(name string) Type {
	switch name {
	case "headline":
		return TypeHeadline
	case "github_repo":
		return TypeGithubRepo
	case "branding":
		return TypeBranding
	case "quick_link":
		return TypeQuickLink
	case "stock":
		return TypeStock
	case "day_number":
		return TypeDayNumber
	case "bit":
		return TypeBit
	}
	return TypeUnknown
}

// Placement is one rectangle claimed on the grid. Coordinates are 0-based
// with (0,0) at the top-left corner; the rectangle covers
// [X, X+Width) x [Y, Y+Height).
//
// Data is an opaque payload. It is empty at placement time for everything
// except filler bits and is populated later by the downstream content filler.
type Placement struct {
	ID     string
	X      int
	Y      int
	Width  int
	Height int
	Type   Type
	Data   map[string]any
}

// Cells returns the number of grid cells the placement covers.
func (p Placement) Cells() int {
	return p.Width * p.Height
}

// Intersects reports whether two placements' rectangles overlap.
func (p Placement) Intersects(q Placement) bool {
	return p.X < q.X+q.Width && q.X < p.X+p.Width &&
		p.Y < q.Y+q.Height && q.Y < p.Y+p.Height
}
