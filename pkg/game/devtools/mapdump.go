// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"roomcarve/pkg/engine/world"
	"roomcarve/pkg/game/generator"
	"roomcarve/pkg/game/renderer/tui"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "map.txt"

// DumpMapToFile writes a full debug dump of res to path: metadata, legend,
// the map, the room list and the carved path. It returns the absolute path.
func DumpMapToFile(path string, res *generator.Result, seed int64) (string, error) {
	if res == nil || res.Grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}

	if err := WriteMapDump(f, res, seed); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteMapDump writes the dump sections to w
func WriteMapDump(w io.Writer, res *generator.Result, seed int64) error {
	grid := res.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, rooms, path) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "grid_width: %d\n", grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "room_count: %d\n", len(res.Rooms))
	fmt.Fprintf(w, "start: %d,%d\n", res.Start.X, res.Start.Y)
	fmt.Fprintf(w, "doorways: %d,%d %d,%d\n", res.Doorways[0].X, res.Doorways[0].Y, res.Doorways[1].X, res.Doorways[1].Y)
	fmt.Fprintf(w, "connected: %v\n", res.Connected)
	fmt.Fprintf(w, "path_length: %d\n", res.PathLength())
	fmt.Fprintf(w, "floor_tiles: %d\n", grid.CountTerrain(world.Floor))
	fmt.Fprintf(w, "wall_tiles: %d\n", grid.CountTerrain(world.Wall))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	fmt.Fprintf(w, "%q = nothing  %s = floor  %s = wall  %s = carved path  %s = start\n",
		tui.IconVoid, tui.IconFloor, tui.IconWall, tui.IconPath, tui.PlayerIcon)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	if err := tui.Render(w, grid, res.Start, tui.Options{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms (acceptance order) ---")
	for i, room := range res.Rooms {
		fmt.Fprintf(w, "  index: %d x: %d y: %d width: %d height: %d\n", i, room.X(), room.Y(), room.Width(), room.Height())
	}
	fmt.Fprintln(w, "")

	// --- Path ---
	fmt.Fprintln(w, "--- Path ---")
	if !res.Connected {
		fmt.Fprintln(w, "  none")
		return nil
	}
	for _, loc := range res.Path {
		fmt.Fprintf(w, "  %d,%d\n", loc.X, loc.Y)
	}
	return nil
}
