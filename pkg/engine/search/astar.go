// Package search implements A* over any graph exposed through Problem.
package search

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Edge is a neighbour reachable from a node at the given cost
type Edge[N comparable] struct {
	To   N
	Cost int
}

// Problem describes a graph search. Heuristic must never overestimate the
// remaining cost for AStar to return a cheapest path.
type Problem[N comparable] interface {
	Start() N
	IsGoal(n N) bool
	Heuristic(n N) int
	Neighbors(n N) []Edge[N]
}

// Result is the outcome of a search. Found is false when the goal cannot be
// reached; Path is nil in that case.
type Result[N comparable] struct {
	Path     []N
	Cost     int
	Expanded int
	Found    bool
}

type openNode[N comparable] struct {
	node N
	g    int
	f    int
	seq  int
}

func lessOpen[N comparable](a, b openNode[N]) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		// deeper nodes first on ties
		return a.g > b.g
	}
	return a.seq < b.seq
}

// AStar runs a best-first search from p.Start() until a goal node is popped.
// The returned path includes both the start and the goal.
func AStar[N comparable](p Problem[N]) Result[N] {
	start := p.Start()

	open := heap.New[openNode[N]](lessOpen[N])
	closed := mapset.New[N]()
	cameFrom := make(map[N]N)
	gScore := map[N]int{start: 0}

	seq := 0
	open.Push(openNode[N]{node: start, g: 0, f: p.Heuristic(start), seq: seq})

	expanded := 0
	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed.Has(current.node) {
			// stale entry superseded by a cheaper push
			continue
		}

		if p.IsGoal(current.node) {
			return Result[N]{
				Path:     reconstructPath(cameFrom, current.node),
				Cost:     current.g,
				Expanded: expanded,
				Found:    true,
			}
		}

		closed.Put(current.node)
		expanded++

		for _, edge := range p.Neighbors(current.node) {
			if closed.Has(edge.To) {
				continue
			}

			tentative := current.g + edge.Cost
			if best, seen := gScore[edge.To]; seen && tentative >= best {
				continue
			}

			cameFrom[edge.To] = current.node
			gScore[edge.To] = tentative
			seq++
			open.Push(openNode[N]{
				node: edge.To,
				g:    tentative,
				f:    tentative + p.Heuristic(edge.To),
				seq:  seq,
			})
		}
	}

	return Result[N]{Expanded: expanded}
}

// reconstructPath walks cameFrom back to the start and returns the path in
// start-to-goal order
func reconstructPath[N comparable](cameFrom map[N]N, current N) []N {
	path := []N{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
