package world

// Direction is one of the four axis-aligned neighbour directions
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the directions in neighbour enumeration order
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// Offset returns the x/y step for this direction. Y grows downwards, so
// North is (0, -1).
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
