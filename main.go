package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"roomcarve/pkg/engine/terminal"
	"roomcarve/pkg/game/config"
	"roomcarve/pkg/game/devtools"
	"roomcarve/pkg/game/generator"
	"roomcarve/pkg/game/logger"
	"roomcarve/pkg/game/renderer/tui"
)

const (
	// rows kept free below a terminal-sized map for the legend and prompt
	terminalReserveRows = 8
	minMapSide          = 16
)

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

type options struct {
	configPath string
	seed       int64
	width      int
	height     int
	attempts   int
	placement  string
	retries    int
	dumpPath   string
	noColor    bool
	legend     bool
	showcase   bool
	locale     string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "roomcarve.yaml", "path to YAML config (missing file uses defaults)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.IntVar(&o.width, "width", -1, "map width (0 fits the terminal, -1 uses config)")
	flag.IntVar(&o.height, "height", -1, "map height (0 fits the terminal, -1 uses config)")
	flag.IntVar(&o.attempts, "attempts", 0, "room placement attempts (0 uses config)")
	flag.StringVar(&o.placement, "placement", "", "room placement: scatter or bsp (empty uses config)")
	flag.IntVar(&o.retries, "retries", 1, "generate up to this many levels until one is connected")
	flag.StringVar(&o.dumpPath, "dump", "", "also write a debug dump to this file")
	flag.BoolVar(&o.noColor, "no-color", false, "disable coloured output")
	flag.BoolVar(&o.legend, "legend", true, "print the legend under the map")
	flag.BoolVar(&o.showcase, "showcase", false, "print the feature alignment showcase instead of a level")
	flag.StringVar(&o.locale, "locale", "en_GB", "message catalogue under locales/")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	initGettext(opts.locale)
	useColor := !opts.noColor && terminal.IsTerminal()

	if opts.showcase {
		grid, centre := devtools.FeatureShowcase()
		if err := tui.Render(os.Stdout, grid, centre, tui.Options{Color: useColor, Legend: opts.legend}); err != nil {
			log.WithError(err).Fatal("Render failed")
		}
		return
	}

	applyFlags(&cfg, opts)

	width, height := cfg.Map.Width, cfg.Map.Height
	if width <= 0 || height <= 0 {
		tw, th := terminal.MapSize(terminalReserveRows, minMapSide)
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}

	seed := cfg.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generator.New(cfg.GeneratorConfig(), generator.WithLogger(log))
	res, usedSeed, err := generateLevel(gen, log, seed, width, height, opts.retries)
	if err != nil {
		log.WithError(err).Fatal("Generation failed")
	}

	fmt.Println(tui.Translate(gotext.Get("LEVEL_HEADER"), "LEVEL_HEADER", "Level")+":", fmt.Sprintf("%dx%d, %d rooms, seed %d", width, height, len(res.Rooms), usedSeed))
	if err := tui.Render(os.Stdout, res.Grid, res.Start, tui.Options{Color: useColor, Legend: opts.legend}); err != nil {
		log.WithError(err).Fatal("Render failed")
	}
	if !res.Connected {
		fmt.Println(tui.Translate(gotext.Get("NOT_CONNECTED"), "NOT_CONNECTED", "The rooms could not be connected."))
	}

	if opts.dumpPath != "" {
		path, err := devtools.DumpMapToFile(opts.dumpPath, res, usedSeed)
		if err != nil {
			log.WithError(err).Fatal("Map dump failed")
		}
		fmt.Println(tui.Translate(gotext.Get("MAP_WRITTEN"), "MAP_WRITTEN", "Map written to")+":", path)
	}
}

// applyFlags lets explicitly set flags win over the config file
func applyFlags(cfg *config.Config, opts options) {
	if opts.seed != 0 {
		cfg.Map.Seed = opts.seed
	}
	if opts.width >= 0 {
		cfg.Map.Width = opts.width
	}
	if opts.height >= 0 {
		cfg.Map.Height = opts.height
	}
	if opts.attempts > 0 {
		cfg.Generator.Attempts = opts.attempts
	}
	if opts.placement != "" {
		cfg.Generator.Placement = opts.placement
	}
}

// generateLevel runs the generator up to retries times with consecutive
// seeds and returns the first connected level. If none connects, the last
// level is returned anyway; it is still playable, just split.
func generateLevel(gen generator.GridGenerator, log logrus.FieldLogger, seed int64, width, height, retries int) (*generator.Result, int64, error) {
	retries = max(retries, 1)

	var last *generator.Result
	var lastSeed int64
	for i := 0; i < retries; i++ {
		runSeed := seed + int64(i)
		res, err := gen.Generate(generator.NewRandom(runSeed), width, height)
		if errors.Is(err, generator.ErrNoRooms) {
			log.WithField("seed", runSeed).Warn("No rooms placed, retrying")
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		last, lastSeed = res, runSeed
		if err := res.ConnectionErr(); err != nil {
			log.WithError(err).WithField("seed", runSeed).Warn("Level not connected")
			continue
		}
		return res, runSeed, nil
	}

	if last == nil {
		return nil, 0, fmt.Errorf("%d attempts on a %dx%d map: %w", retries, width, height, generator.ErrNoRooms)
	}
	return last, lastSeed, nil
}
