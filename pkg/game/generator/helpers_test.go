package generator

import (
	"testing"

	"roomcarve/pkg/engine/world"
)

// scriptedRandom returns values from a fixed script. Each value must lie in
// the requested range.
type scriptedRandom struct {
	t      *testing.T
	values []int
}

func (s *scriptedRandom) IntRange(lo, hi int) int {
	s.t.Helper()
	if len(s.values) == 0 {
		s.t.Fatalf("scriptedRandom exhausted on IntRange(%d, %d)", lo, hi)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < lo || v >= hi {
		s.t.Fatalf("scripted value %d outside [%d, %d)", v, lo, hi)
	}
	return v
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func collect(seq func(func(world.Location) bool)) []world.Location {
	var out []world.Location
	for loc := range seq {
		out = append(out, loc)
	}
	return out
}

func featureShape(t world.Terrain) []Component {
	return []Component{
		{world.NewLocation(1, 1), t},
		{world.NewLocation(2, 1), t},
		{world.NewLocation(1, 2), t},
		{world.NewLocation(2, 2), t},
		{world.NewLocation(1, 3), t},
	}
}
