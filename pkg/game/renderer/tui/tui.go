// Package tui prints generated levels to a terminal.
package tui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"roomcarve/pkg/engine/world"
)

// Icon constants, one rune per tile
const (
	PlayerIcon = "@"
	IconVoid   = " "
	IconFloor  = "."
	IconWall   = "#"
	IconPath   = "*"
)

var (
	colorFloor  = color.Style{color.FgGray}
	colorWall   = color.Style{color.FgYellow}
	colorPath   = color.Style{color.FgCyan, color.OpBold}
	colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	colorTitle  = color.Style{color.FgMagenta, color.OpBold}
)

// Options controls rendering
type Options struct {
	Color  bool
	Legend bool
}

// Icon returns the icon for a terrain
func Icon(t world.Terrain) string {
	switch t {
	case world.Floor:
		return IconFloor
	case world.Wall:
		return IconWall
	case world.Debug:
		return IconPath
	default:
		return IconVoid
	}
}

func style(t world.Terrain) (color.Style, bool) {
	switch t {
	case world.Floor:
		return colorFloor, true
	case world.Wall:
		return colorWall, true
	case world.Debug:
		return colorPath, true
	default:
		return nil, false
	}
}

// RenderTile returns the string drawn for one tile
func RenderTile(t world.Terrain, isStart bool, useColor bool) string {
	if isStart {
		if useColor {
			return colorPlayer.Sprint(PlayerIcon)
		}
		return PlayerIcon
	}

	icon := Icon(t)
	if s, ok := style(t); ok && useColor {
		return s.Sprint(icon)
	}
	return icon
}

// Render writes the grid row by row, marking start with the player icon
func Render(w io.Writer, grid *world.Grid, start world.Location, opts Options) error {
	bw := bufio.NewWriter(w)

	for tile, loc := range grid.Tiles() {
		bw.WriteString(RenderTile(tile.Terrain, loc == start, opts.Color))
		if loc.X == grid.Width()-1 {
			bw.WriteByte('\n')
		}
	}

	if opts.Legend {
		bw.WriteString("\n")
		bw.WriteString(Legend(opts.Color))
	}

	return bw.Flush()
}

// Legend returns one line per symbol
func Legend(useColor bool) string {
	title := Translate(gotext.Get("LEGEND_TITLE"), "LEGEND_TITLE", "Legend")
	if useColor {
		title = colorTitle.Sprint(title)
	}

	out := title + "\n"
	entries := []struct {
		icon string
		text string
	}{
		{RenderTile(world.Floor, false, useColor), Translate(gotext.Get("LEGEND_FLOOR"), "LEGEND_FLOOR", "floor")},
		{RenderTile(world.Wall, false, useColor), Translate(gotext.Get("LEGEND_WALL"), "LEGEND_WALL", "wall")},
		{RenderTile(world.Debug, false, useColor), Translate(gotext.Get("LEGEND_PATH"), "LEGEND_PATH", "carved path")},
		{RenderTile(world.Nothing, true, useColor), Translate(gotext.Get("LEGEND_START"), "LEGEND_START", "start")},
	}
	for _, e := range entries {
		out += fmt.Sprintf("  %s  %s\n", e.icon, e.text)
	}
	return out
}

// Translate returns msg, the catalogue lookup of key, or fallback when no
// catalogue has a translation for key
func Translate(msg, key, fallback string) string {
	if msg == "" || msg == key {
		return fallback
	}
	return msg
}

// StripColor removes ANSI colour codes from s
func StripColor(s string) string {
	return color.ClearCode(s)
}
