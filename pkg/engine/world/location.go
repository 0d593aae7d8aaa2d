package world

import "fmt"

// Location is an integer grid coordinate. It is comparable and can be used
// as a map key.
type Location struct {
	X int
	Y int
}

// NewLocation creates a location at (x, y)
func NewLocation(x, y int) Location {
	return Location{X: x, Y: y}
}

// Add returns the location offset by (dx, dy)
func (l Location) Add(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Step returns the adjacent location in the given direction
func (l Location) Step(dir Direction) Location {
	dx, dy := dir.Offset()
	return l.Add(dx, dy)
}

// Manhattan returns the taxicab distance between two locations
func (l Location) Manhattan(other Location) int {
	return abs(l.X-other.X) + abs(l.Y-other.Y)
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
