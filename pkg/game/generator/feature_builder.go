package generator

import (
	"slices"

	"roomcarve/pkg/engine/world"
)

// HorizontalAlignment picks which column of a feature lands on the placement location
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment picks which row of a feature lands on the placement location
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// FeatureBuilder places a raw feature shape at an absolute location. Every
// configuring method returns a new builder and leaves the receiver untouched.
type FeatureBuilder struct {
	components []Component
	location   world.Location
	horizontal HorizontalAlignment
	vertical   VerticalAlignment
}

// NewFeatureBuilder creates a builder centred on (0, 0). It panics if
// components is empty.
func NewFeatureBuilder(components []Component) FeatureBuilder {
	if len(components) == 0 {
		panic("feature builder needs at least one component")
	}
	return FeatureBuilder{
		components: slices.Clone(components),
		horizontal: AlignCenter,
		vertical:   AlignMiddle,
	}
}

// At sets the placement location
func (b FeatureBuilder) At(loc world.Location) FeatureBuilder {
	b.location = loc
	return b
}

// AlignHorizontal sets the horizontal alignment
func (b FeatureBuilder) AlignHorizontal(align HorizontalAlignment) FeatureBuilder {
	b.horizontal = align
	return b
}

// AlignVertical sets the vertical alignment
func (b FeatureBuilder) AlignVertical(align VerticalAlignment) FeatureBuilder {
	b.vertical = align
	return b
}

// Offset returns the translation Build applies to every component.
// Centering uses floor division, so odd spans lean toward the higher
// coordinate.
func (b FeatureBuilder) Offset() (dx, dy int) {
	bb := boundsOf(b.components)

	switch b.horizontal {
	case AlignLeft:
		dx = b.location.X - bb.minX
	case AlignRight:
		dx = b.location.X - bb.maxX
	default:
		dx = b.location.X - (bb.minX + (bb.maxX-bb.minX+1)/2)
	}

	switch b.vertical {
	case AlignTop:
		dy = b.location.Y - bb.minY
	case AlignBottom:
		dy = b.location.Y - bb.maxY
	default:
		dy = b.location.Y - (bb.minY + (bb.maxY-bb.minY+1)/2)
	}

	return dx, dy
}

// Build returns the feature translated to the configured placement
func (b FeatureBuilder) Build() Feature {
	dx, dy := b.Offset()
	out := make([]Component, len(b.components))
	for i, c := range b.components {
		out[i] = Component{Loc: c.Loc.Add(dx, dy), Terrain: c.Terrain}
	}
	return Feature{components: out}
}
