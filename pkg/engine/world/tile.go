// Package world provides the tile grid primitives the generator carves into.
package world

import "slices"

// Terrain is the material of a tile
type Terrain int

const (
	Nothing Terrain = iota // unexcavated space; the only terrain a carved path may cross
	Floor
	Wall
	Debug // marks a carved path
)

func (t Terrain) String() string {
	switch t {
	case Nothing:
		return "Nothing"
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case Debug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// EntityID references an entity standing on a tile
type EntityID uint64

// Tile is a single grid cell
type Tile struct {
	Terrain  Terrain
	Entities []EntityID
}

// NewTile creates a tile with the given terrain and no entities
func NewTile(terrain Terrain) Tile {
	return Tile{Terrain: terrain}
}

// Clone returns a copy that does not share the entity slice
func (t Tile) Clone() Tile {
	return Tile{Terrain: t.Terrain, Entities: slices.Clone(t.Entities)}
}

// Equal reports whether two tiles have the same terrain and entities
func (t Tile) Equal(other Tile) bool {
	return t.Terrain == other.Terrain && slices.Equal(t.Entities, other.Entities)
}
