package generator

import (
	"fmt"
	"iter"

	"roomcarve/pkg/engine/world"
)

// Room is an axis-aligned rectangle of cells. Border cells are walls and
// interior cells are floors.
type Room struct {
	x, y          int
	width, height int
	locs          []world.Location
}

// NewRoom creates a room with its origin at (x, y). It panics on a negative
// origin or a non-positive size.
func NewRoom(x, y, width, height int) Room {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid room %dx%d at (%d, %d)", width, height, x, y))
	}

	// column scan: x outer, y inner
	locs := make([]world.Location, 0, width*height)
	for i := x; i < x+width; i++ {
		for j := y; j < y+height; j++ {
			locs = append(locs, world.NewLocation(i, j))
		}
	}

	return Room{x: x, y: y, width: width, height: height, locs: locs}
}

func (r Room) X() int      { return r.x }
func (r Room) Y() int      { return r.y }
func (r Room) Width() int  { return r.width }
func (r Room) Height() int { return r.height }

// Overlaps reports whether the two rooms' bounds intersect. The right and
// bottom edges are taken one past the last cell and compared inclusively, so
// rooms that touch, or are separated by less than one free cell, overlap.
func (r Room) Overlaps(other Room) bool {
	xmax1, xmax2 := r.x+r.width, other.x+other.width
	ymax1, ymax2 := r.y+r.height, other.y+other.height
	return xmax1 >= other.x && xmax2 >= r.x && ymax1 >= other.y && ymax2 >= r.y
}

// Locations returns every cell the room covers in scan order
func (r Room) Locations() []world.Location {
	out := make([]world.Location, len(r.locs))
	copy(out, r.locs)
	return out
}

// Contains reports whether loc lies inside the room
func (r Room) Contains(loc world.Location) bool {
	return loc.X >= r.x && loc.X < r.x+r.width && loc.Y >= r.y && loc.Y < r.y+r.height
}

// IsWall reports whether loc is on the room's border
func (r Room) IsWall(loc world.Location) bool {
	if !r.Contains(loc) {
		return false
	}
	return loc.X == r.x || loc.Y == r.y || loc.X == r.x+r.width-1 || loc.Y == r.y+r.height-1
}

// Walls yields the border cells in scan order
func (r Room) Walls() iter.Seq[world.Location] {
	return r.filter(r.IsWall)
}

// Floors yields the interior cells in scan order
func (r Room) Floors() iter.Seq[world.Location] {
	return r.filter(func(loc world.Location) bool { return !r.IsWall(loc) })
}

func (r Room) filter(keep func(world.Location) bool) iter.Seq[world.Location] {
	return func(yield func(world.Location) bool) {
		for _, loc := range r.locs {
			if keep(loc) && !yield(loc) {
				return
			}
		}
	}
}

func (r Room) String() string {
	return fmt.Sprintf("%dx%d @ (%d, %d)", r.width, r.height, r.x, r.y)
}
