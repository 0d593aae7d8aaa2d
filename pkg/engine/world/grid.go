package world

import (
	"fmt"
	"iter"
)

// Grid is a dense, row-major buffer of tiles. Its dimensions are fixed at
// construction.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid of the given dimensions with every tile set to Nothing
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of tiles in the grid
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Contains checks if a location is within grid bounds
func (g *Grid) Contains(loc Location) bool {
	return loc.X >= 0 && loc.X < g.width && loc.Y >= 0 && loc.Y < g.height
}

func (g *Grid) index(loc Location) int {
	if !g.Contains(loc) {
		panic(fmt.Sprintf("location %v outside %dx%d grid", loc, g.width, g.height))
	}
	return loc.Y*g.width + loc.X
}

func (g *Grid) locationOf(index int) Location {
	return Location{X: index % g.width, Y: index / g.width}
}

// TileAt returns a copy of the tile at loc. It panics if loc is out of bounds.
func (g *Grid) TileAt(loc Location) Tile {
	return g.tiles[g.index(loc)].Clone()
}

// MutableTileAt returns the tile at loc for in-place changes. It panics if
// loc is out of bounds.
func (g *Grid) MutableTileAt(loc Location) *Tile {
	return &g.tiles[g.index(loc)]
}

// SetTerrain sets the terrain of the tile at loc
func (g *Grid) SetTerrain(loc Location, terrain Terrain) {
	g.tiles[g.index(loc)].Terrain = terrain
}

// TerrainAt returns the terrain of the tile at loc
func (g *Grid) TerrainAt(loc Location) Terrain {
	return g.tiles[g.index(loc)].Terrain
}

// Neighbors returns the in-bounds axis-aligned neighbours of loc.
// There is no wraparound and there are no diagonals.
func (g *Grid) Neighbors(loc Location) []Location {
	neighbors := make([]Location, 0, 4)
	for _, dir := range AllDirections() {
		adj := loc.Step(dir)
		if g.Contains(adj) {
			neighbors = append(neighbors, adj)
		}
	}
	return neighbors
}

// Tiles yields every tile with its location in row-major order. Each call
// starts a fresh pass from the first tile.
func (g *Grid) Tiles() iter.Seq2[*Tile, Location] {
	return func(yield func(*Tile, Location) bool) {
		for i := range g.tiles {
			if !yield(&g.tiles[i], g.locationOf(i)) {
				return
			}
		}
	}
}

// ForEachTile iterates over all tiles in the grid, calling the provided function for each
func (g *Grid) ForEachTile(fn func(loc Location, tile *Tile)) {
	for tile, loc := range g.Tiles() {
		fn(loc, tile)
	}
}

// CountTerrain returns how many tiles have the given terrain
func (g *Grid) CountTerrain(terrain Terrain) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Terrain == terrain {
			n++
		}
	}
	return n
}
