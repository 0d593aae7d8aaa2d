package generator

import (
	"roomcarve/pkg/engine/search"
	"roomcarve/pkg/engine/world"
)

// Connector exposes a grid as a search problem between two fixed locations.
// Only Nothing tiles can be entered, so a path never cuts through walls or
// floors that are already placed.
type Connector struct {
	grid  *world.Grid
	start world.Location
	end   world.Location
}

var _ search.Problem[world.Location] = (*Connector)(nil)

// NewConnector creates a search problem from start to end over grid
func NewConnector(grid *world.Grid, start, end world.Location) *Connector {
	return &Connector{grid: grid, start: start, end: end}
}

func (c *Connector) Start() world.Location {
	return c.start
}

func (c *Connector) IsGoal(loc world.Location) bool {
	return loc == c.end
}

// Heuristic is the Manhattan distance to the end, which is exact on an
// unobstructed 4-connected grid with unit costs
func (c *Connector) Heuristic(loc world.Location) int {
	return loc.Manhattan(c.end)
}

func (c *Connector) Neighbors(loc world.Location) []search.Edge[world.Location] {
	adjacent := c.grid.Neighbors(loc)
	edges := make([]search.Edge[world.Location], 0, len(adjacent))
	for _, adj := range adjacent {
		if c.grid.TerrainAt(adj) != world.Nothing {
			continue
		}
		edges = append(edges, search.Edge[world.Location]{To: adj, Cost: 1})
	}
	return edges
}

// Connect runs A* between start and end. The returned path includes both
// endpoints; ok is false when end cannot be reached.
func Connect(grid *world.Grid, start, end world.Location) (path []world.Location, ok bool) {
	res := search.AStar[world.Location](NewConnector(grid, start, end))
	return res.Path, res.Found
}
