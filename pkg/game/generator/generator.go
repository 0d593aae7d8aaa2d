package generator

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"roomcarve/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(r Random, width, height int) (*Result, error)
	Name() string
}

// Available generators
var (
	Scatter = New(DefaultConfig())
	BSP     = New(DefaultConfig().WithPlacement(PlacementBSP))
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Scatter

var (
	// ErrNoRooms is returned when room placement accepted nothing, leaving no
	// walls to connect and no floor to start on.
	ErrNoRooms = errors.New("no rooms could be placed")

	// ErrNoPath is reported by Result.ConnectionErr when the chosen doorways
	// could not be joined.
	ErrNoPath = errors.New("no path found between doorways")
)

// Placement selects how candidate rooms are laid out
type Placement string

const (
	// PlacementScatter proposes random rooms and rejects overlapping ones
	PlacementScatter Placement = "scatter"
	// PlacementBSP puts one room in each leaf of a binary space partition
	PlacementBSP Placement = "bsp"
)

// Config holds the tunable generation parameters. Room sizes are drawn from
// the half-open range [MinRoomSize, MaxRoomSize).
type Config struct {
	Attempts    int
	MinRoomSize int
	MaxRoomSize int
	Placement   Placement
}

// DefaultConfig returns 60 placement attempts with rooms from 3 to 14 cells a side
func DefaultConfig() Config {
	return Config{
		Attempts:    60,
		MinRoomSize: 3,
		MaxRoomSize: 15,
		Placement:   PlacementScatter,
	}
}

// WithPlacement returns a copy of the config using the given placement
func (c Config) WithPlacement(p Placement) Config {
	c.Placement = p
	return c
}

// Validate checks the config for values generation cannot run with
func (c Config) Validate() error {
	if c.Attempts <= 0 {
		return fmt.Errorf("attempts must be positive, got %d", c.Attempts)
	}
	// a room needs at least one interior cell to hold a floor
	if c.MinRoomSize < 3 {
		return fmt.Errorf("min room size must be at least 3, got %d", c.MinRoomSize)
	}
	if c.MaxRoomSize <= c.MinRoomSize {
		return fmt.Errorf("max room size %d must exceed min room size %d", c.MaxRoomSize, c.MinRoomSize)
	}
	switch c.Placement {
	case PlacementScatter, PlacementBSP:
	default:
		return fmt.Errorf("unknown placement %q", c.Placement)
	}
	return nil
}

// Result is a generated level
type Result struct {
	Grid  *world.Grid
	Start world.Location
	Rooms []Room

	// Doorways are the two wall cells opened for the connection
	Doorways [2]world.Location
	// Path runs from the first doorway to the second, both included. It is
	// nil when Connected is false.
	Path      []world.Location
	Connected bool
}

// ConnectionErr returns ErrNoPath if the doorways were not connected
func (r *Result) ConnectionErr() error {
	if r.Connected {
		return nil
	}
	return fmt.Errorf("%v to %v: %w", r.Doorways[0], r.Doorways[1], ErrNoPath)
}

// PathLength returns the number of steps on the carved path
func (r *Result) PathLength() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Generator places, draws and connects rooms. It holds no per-run state, so
// one Generator can serve concurrent runs given independent Random sources.
type Generator struct {
	cfg Config
	log logrus.FieldLogger
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger routes generation diagnostics to log
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New creates a generator. Diagnostics are discarded unless WithLogger is given.
func New(cfg Config, opts ...Option) *Generator {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	g := &Generator{cfg: cfg, log: silent}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the name of this generator
func (g *Generator) Name() string {
	switch g.cfg.Placement {
	case PlacementBSP:
		return "BSP Rooms"
	default:
		return "Scattered Rooms"
	}
}

// Config returns the generator's configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds a width x height level. It panics on non-positive
// dimensions. An unconnected level is still returned with a nil error; see
// Result.Connected.
func (g *Generator) Generate(r Random, width, height int) (*Result, error) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator config: %w", err)
	}

	grid := world.NewGrid(width, height)

	var rooms []Room
	switch g.cfg.Placement {
	case PlacementBSP:
		rooms = g.partitionRooms(r, width, height)
	default:
		rooms = g.scatterRooms(r, width, height)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%dx%d grid: %w", width, height, ErrNoRooms)
	}

	drawRooms(grid, rooms)

	res := &Result{Grid: grid, Rooms: rooms}
	g.connectRooms(r, res)

	// start on a random floor in a random room
	startRoom := Choose(r, rooms)
	res.Start = ChooseSeq(r, startRoom.Floors())

	g.log.WithFields(logrus.Fields{
		"generator": g.Name(),
		"rooms":     len(rooms),
		"connected": res.Connected,
		"start":     res.Start.String(),
	}).Debug("Level generated")

	return res, nil
}

// Generate builds a level with DefaultConfig and no logging
func Generate(r Random, width, height int) (*Result, error) {
	return New(DefaultConfig()).Generate(r, width, height)
}
