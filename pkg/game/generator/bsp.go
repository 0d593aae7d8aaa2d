package generator

import (
	"github.com/sirupsen/logrus"
)

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Room
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	roomPadding = 2 // Room is at least this much smaller than its leaf
)

// partitionRooms splits the grid into leaves and places one room per leaf.
// A room never reaches its leaf's right or bottom edge, so rooms of
// neighbouring leaves are always at least one cell apart and never overlap.
func (g *Generator) partitionRooms(r Random, width, height int) []Room {
	root := &bspNode{x: 0, y: 0, width: width, height: height}

	minSize := max(minNodeSize, g.cfg.MinRoomSize+roomPadding)
	splitBSP(r, root, minSize)
	g.createRooms(r, root)

	rooms := collectRooms(root)
	g.log.WithFields(logrus.Fields{
		"rooms":     len(rooms),
		"leaf_size": minSize,
	}).Debug("Partitioned rooms")
	return rooms
}

// splitBSP recursively splits a BSP node
func splitBSP(r Random, node *bspNode, minSize int) {
	canSplitX := node.width >= minSize*2
	canSplitY := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case canSplitX && canSplitY:
		if node.width > node.height {
			splitHorizontal = false
		} else if node.height > node.width {
			splitHorizontal = true
		} else {
			splitHorizontal = r.IntRange(0, 2) == 0
		}
	case canSplitX:
		splitHorizontal = false
	case canSplitY:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + r.IntRange(0, node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + r.IntRange(0, node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(r, node.left, minSize)
	splitBSP(r, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func (g *Generator) createRooms(r Random, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRooms(r, node.left)
		}
		if node.right != nil {
			g.createRooms(r, node.right)
		}
		return
	}

	roomWidth, ok := g.leafRoomSize(r, node.width)
	if !ok {
		return
	}
	roomHeight, ok := g.leafRoomSize(r, node.height)
	if !ok {
		return
	}

	// sides are at most span-2, so the last column and row of the leaf stay empty
	room := NewRoom(
		node.x+r.IntRange(0, node.width-roomWidth),
		node.y+r.IntRange(0, node.height-roomHeight),
		roomWidth,
		roomHeight,
	)
	node.room = &room
}

// leafRoomSize draws a room side for a leaf side of length span, capped by
// both the configured maximum and the leaf padding
func (g *Generator) leafRoomSize(r Random, span int) (int, bool) {
	upper := min(g.cfg.MaxRoomSize, span-roomPadding+1)
	if upper <= g.cfg.MinRoomSize {
		return 0, false
	}
	return r.IntRange(g.cfg.MinRoomSize, upper), true
}

// collectRooms collects all rooms from the BSP tree in left-to-right leaf order
func collectRooms(node *bspNode) []Room {
	var rooms []Room

	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
