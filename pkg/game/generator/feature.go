package generator

import (
	"fmt"
	"iter"
	"slices"

	"roomcarve/pkg/engine/world"
)

// Component is one cell of a feature
type Component struct {
	Loc     world.Location
	Terrain world.Terrain
}

// Feature is an arrangement of terrain. Components are relative until a
// FeatureBuilder translates them to a placement.
type Feature struct {
	components []Component
}

// NewFeature creates a feature from the given components
func NewFeature(components []Component) Feature {
	return Feature{components: slices.Clone(components)}
}

// Len returns the number of components
func (f Feature) Len() int {
	return len(f.components)
}

// Components returns a copy of the components in order
func (f Feature) Components() []Component {
	return slices.Clone(f.components)
}

// All yields each component's location and terrain in order
func (f Feature) All() iter.Seq2[world.Location, world.Terrain] {
	return func(yield func(world.Location, world.Terrain) bool) {
		for _, c := range f.components {
			if !yield(c.Loc, c.Terrain) {
				return
			}
		}
	}
}

// Width returns the horizontal extent of the feature, or 0 if it is empty
func (f Feature) Width() int {
	if len(f.components) == 0 {
		return 0
	}
	b := boundsOf(f.components)
	return b.maxX - b.minX + 1
}

// Height returns the vertical extent of the feature, or 0 if it is empty
func (f Feature) Height() int {
	if len(f.components) == 0 {
		return 0
	}
	b := boundsOf(f.components)
	return b.maxY - b.minY + 1
}

// Fits reports whether every component lies inside the grid
func (f Feature) Fits(g *world.Grid) bool {
	for _, c := range f.components {
		if !g.Contains(c.Loc) {
			return false
		}
	}
	return true
}

// Stamp writes the feature's terrain into the grid. It panics if any
// component is outside the grid; check Fits first for untrusted placements.
func (f Feature) Stamp(g *world.Grid) {
	if !f.Fits(g) {
		panic(fmt.Sprintf("feature %dx%d does not fit %dx%d grid", f.Width(), f.Height(), g.Width(), g.Height()))
	}
	for loc, terrain := range f.All() {
		g.SetTerrain(loc, terrain)
	}
}

// Rectangle returns the components of a filled width x height block with its
// top-left cell at (0, 0)
func Rectangle(width, height int, terrain world.Terrain) []Component {
	components := make([]Component, 0, max(width*height, 0))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			components = append(components, Component{Loc: world.NewLocation(x, y), Terrain: terrain})
		}
	}
	return components
}

type bounds struct {
	minX, maxX, minY, maxY int
}

// boundsOf expects at least one component
func boundsOf(components []Component) bounds {
	first := components[0].Loc
	b := bounds{minX: first.X, maxX: first.X, minY: first.Y, maxY: first.Y}
	for _, c := range components[1:] {
		b.minX = min(b.minX, c.Loc.X)
		b.maxX = max(b.maxX, c.Loc.X)
		b.minY = min(b.minY, c.Loc.Y)
		b.maxY = max(b.maxY, c.Loc.Y)
	}
	return b
}
