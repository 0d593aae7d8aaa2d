package devtools

import (
	"roomcarve/pkg/engine/world"
	"roomcarve/pkg/game/generator"
)

// showcaseSize is the side length of the feature showcase grid
const showcaseSize = 21

// FeatureShowcase builds a hand-made grid that places a 5x5 block at the
// centre and every corner using the matching alignment, plus a plus-shaped
// marker at each placement point. Used to eyeball alignment rules.
func FeatureShowcase() (*world.Grid, world.Location) {
	grid := world.NewGrid(showcaseSize, showcaseSize)
	last := showcaseSize - 1
	centre := world.NewLocation(showcaseSize/2, showcaseSize/2)

	block := generator.NewFeatureBuilder(generator.Rectangle(5, 5, world.Wall))

	placements := []struct {
		at    world.Location
		horiz generator.HorizontalAlignment
		vert  generator.VerticalAlignment
	}{
		{world.NewLocation(0, 0), generator.AlignLeft, generator.AlignTop},
		{world.NewLocation(last, 0), generator.AlignRight, generator.AlignTop},
		{world.NewLocation(0, last), generator.AlignLeft, generator.AlignBottom},
		{world.NewLocation(last, last), generator.AlignRight, generator.AlignBottom},
		{centre, generator.AlignCenter, generator.AlignMiddle},
	}

	for _, p := range placements {
		block.At(p.at).AlignHorizontal(p.horiz).AlignVertical(p.vert).Build().Stamp(grid)
	}

	for _, p := range placements {
		grid.SetTerrain(p.at, world.Debug)
	}
	plus(grid, centre)

	return grid, centre
}

// plus stamps floor on the four neighbours of at
func plus(grid *world.Grid, at world.Location) {
	arms := []generator.Component{
		{Loc: world.NewLocation(1, 0), Terrain: world.Floor},
		{Loc: world.NewLocation(0, 1), Terrain: world.Floor},
		{Loc: world.NewLocation(2, 1), Terrain: world.Floor},
		{Loc: world.NewLocation(1, 2), Terrain: world.Floor},
	}
	f := generator.NewFeatureBuilder(arms).At(at).Build()
	if f.Fits(grid) {
		f.Stamp(grid)
	}
}
