package generator

import (
	"github.com/sirupsen/logrus"

	"roomcarve/pkg/engine/world"
)

// scatterRooms proposes cfg.Attempts random rooms and keeps those that do
// not overlap an already accepted room. Every attempt is made, even after
// a long run of rejections.
func (g *Generator) scatterRooms(r Random, width, height int) []Room {
	var rooms []Room
	for attempt := 0; attempt < g.cfg.Attempts; attempt++ {
		roomWidth := r.IntRange(g.cfg.MinRoomSize, g.cfg.MaxRoomSize)
		roomHeight := r.IntRange(g.cfg.MinRoomSize, g.cfg.MaxRoomSize)

		// a room as wide as the grid has no valid origin
		if roomWidth >= width || roomHeight >= height {
			g.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"width":   roomWidth,
				"height":  roomHeight,
			}).Trace("Room too large for grid")
			continue
		}

		room := NewRoom(
			r.IntRange(0, width-roomWidth),
			r.IntRange(0, height-roomHeight),
			roomWidth,
			roomHeight,
		)

		if overlapsAny(room, rooms) {
			g.log.WithField("room", room.String()).Trace("Couldn't fit room")
			continue
		}

		g.log.WithField("room", room.String()).Debug("Room accepted")
		rooms = append(rooms, room)
	}
	return rooms
}

func overlapsAny(room Room, rooms []Room) bool {
	for _, chosen := range rooms {
		if chosen.Overlaps(room) {
			return true
		}
	}
	return false
}

// drawRooms stamps walls and floors in acceptance order
func drawRooms(grid *world.Grid, rooms []Room) {
	for _, room := range rooms {
		for wall := range room.Walls() {
			grid.SetTerrain(wall, world.Wall)
		}
		for floor := range room.Floors() {
			grid.SetTerrain(floor, world.Floor)
		}
	}
}

// connectRooms opens one wall in each of two randomly chosen rooms and
// carves a path between them through Nothing tiles. The same room may be
// chosen twice.
func (g *Generator) connectRooms(r Random, res *Result) {
	from := ChooseSeq(r, Choose(r, res.Rooms).Walls())
	to := ChooseSeq(r, Choose(r, res.Rooms).Walls())
	res.Doorways = [2]world.Location{from, to}

	res.Grid.SetTerrain(from, world.Nothing)
	res.Grid.SetTerrain(to, world.Nothing)

	log := g.log.WithFields(logrus.Fields{"from": from.String(), "to": to.String()})
	log.Info("Searching for path")

	path, ok := Connect(res.Grid, from, to)
	if !ok {
		log.Warn("Failed to find path")
		return
	}

	for _, loc := range path {
		res.Grid.SetTerrain(loc, world.Debug)
	}
	res.Path = path
	res.Connected = true
	log.WithField("length", len(path)-1).Debug("Path carved")
}
