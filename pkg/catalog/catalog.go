// Package catalog defines the component catalog the placement engine consumes
// and the TOML run configuration it is loaded from.
//
// A catalog declares two kinds of components:
//
//   - fixed components with a single width x height footprint and a required
//     instance count
//   - flexible components with a set of allowed shapes, one of which is chosen
//     randomly per instance on every placement attempt
//
// Specs are read once from configuration at the start of a generation run and
// are immutable afterwards.
package catalog

import (
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

// Shape is one allowed width x height footprint of a flexible component.
type Shape struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// ComponentSpec describes a fixed-size component.
//
// CanRotate and Priority are carried through from configuration for
// extension but are not consumed by the placement algorithm: width and height
// are applied as given, and placement order is randomized rather than
// priority-driven.
type ComponentSpec struct {
	Name      string
	Width     int
	Height    int
	Count     int
	CanRotate bool
	Priority  int
	Type      grid.Type
}

// FlexibleSpec describes a component whose instances may take any one of
// several pre-declared shapes, chosen independently per instance per attempt.
type FlexibleSpec struct {
	Name       string
	Shapes     []Shape
	TotalCount int
	CanRotate  bool
	Priority   int
	Type       grid.Type
}

// Catalog is the full set of required components for one generation run.
type Catalog struct {
	Fixed    []ComponentSpec
	Flexible []FlexibleSpec
}

// RequiredInstances returns the total number of instances the placer must
// land for an attempt to succeed.
func (c Catalog) RequiredInstances() int {
	n := 0
	for _, spec := range c.Fixed {
		n += spec.Count
	}
	for _, spec := range c.Flexible {
		n += spec.TotalCount
	}
	return n
}

// EstimatedCells returns the expected cell demand of the catalog. Fixed
// components contribute their exact area; flexible components contribute the
// mean area of their shape set, matching how the run log reports demand
// against grid capacity.
func (c Catalog) EstimatedCells() float64 {
	total := 0.0
	for _, spec := range c.Fixed {
		total += float64(spec.Width * spec.Height * spec.Count)
	}
	for _, spec := range c.Flexible {
		if len(spec.Shapes) == 0 {
			continue
		}
		area := 0
		for _, s := range spec.Shapes {
			area += s.Width * s.Height
		}
		total += float64(area) / float64(len(spec.Shapes)) * float64(spec.TotalCount)
	}
	return total
}
