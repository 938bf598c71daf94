package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"boardmap/pkg/game/config"
	"boardmap/pkg/game/devtools"
	"boardmap/pkg/game/generator"
	"boardmap/pkg/game/locale"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/property"
	"boardmap/pkg/game/renderer"
	ebitenrenderer "boardmap/pkg/game/renderer/ebiten"
	"boardmap/pkg/game/renderer/tui"
	"boardmap/pkg/game/setup"
	"boardmap/pkg/game/state"
	"boardmap/pkg/game/walker"
)

// options are the command-line settings; non-empty values override the
// configuration file.
type options struct {
	configPath string
	mapFile    string
	generate   string
	renderer   string
	dump       string
	screenshot string
	level      int
	logLevel   string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "HCL configuration file")
	flag.StringVar(&o.mapFile, "map", "", "map description file (overrides map_file)")
	flag.StringVar(&o.generate, "generate", "", "generate the map instead of loading it: lattice, track, line-walker or dev")
	flag.StringVar(&o.renderer, "renderer", "", "ascii, tui or ebiten (overrides renderer)")
	flag.StringVar(&o.dump, "dump", "", "write a debug dump of the board to this file")
	flag.StringVar(&o.screenshot, "screenshot", "", "write an HTML screenshot of the board into this directory")
	flag.IntVar(&o.level, "level", 0, "starting level (for developer testing)")
	flag.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error (overrides log_level)")
	flag.Parse()
	return o
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(o options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.mapFile != "" {
		cfg.MapFile = o.mapFile
	}
	if o.renderer != "" {
		cfg.Renderer = o.renderer
	}
	if o.level != 0 {
		cfg.Level = o.level
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, cfg.Validate()
}

// buildMap loads the configured map file or runs the named generator. With
// neither set, the default generator builds the level.
func buildMap(cfg *config.Config, generate string, opts setup.Options) (*setup.Map, error) {
	if generate == "" && cfg.MapFile == "" {
		generate = generator.DefaultGenerator.Name()
	}
	if generate != "" {
		var gen generator.MapGenerator = devtools.DevMapGenerator{}
		if generate != gen.Name() {
			var ok bool
			if gen, ok = generator.ByName(generate); !ok {
				return nil, errors.Errorf("unknown generator %q", generate)
			}
		}
		opts.Logger.Debug("generating map", "generator", gen.Name(), "level", cfg.Level)
		return setup.FromDescription(gen.Generate(cfg.Level), opts)
	}
	return setup.LoadFile(cfg.MapFile, opts)
}

// statusLine summarizes the level and, once a game is running, the turn.
func statusLine(level int, game *state.Game) string {
	line := locale.Format("LEVEL_NUMBER", level)
	if game == nil {
		return line
	}
	return line + "  " + locale.Format("TURN_NUMBER", game.Turn) +
		"  " + locale.Format("MOVES_LEFT", game.Player.MoveableTimes)
}

func run(o options, logger *log.Logger) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)

	opts := setup.OptionsFromConfig(cfg, logger)
	var viewer *ebitenrenderer.Viewer
	if cfg.Renderer == config.RendererEbiten {
		// the window fills in as the board is materialized
		viewer = ebitenrenderer.New()
		opts.Sink = viewer
	}

	m, err := buildMap(cfg, o.generate, opts)
	if err != nil {
		return err
	}

	var player *materialize.Node
	game, err := state.NewGame(m.Board, state.FirstWalkable(m.Board), property.DefaultCatalog())
	if err != nil {
		logger.Warn("no starting cell, showing the board only", "err", err)
	} else {
		game.Level = cfg.Level
		player = game.Player.Node
	}
	frame := renderer.Frame{Board: m.Board, Player: player}

	if o.dump != "" {
		path, err := devtools.DumpToFile(m, player, o.dump)
		if err != nil {
			return err
		}
		logger.Info("board dumped", "path", path)
	}
	if o.screenshot != "" {
		title := locale.Format("LEVEL_NUMBER", cfg.Level)
		path, err := devtools.SaveScreenshotHTML(frame, title, o.screenshot)
		if err != nil {
			return err
		}
		logger.Info("screenshot saved", "path", path)
	}

	switch cfg.Renderer {
	case config.RendererEbiten:
		viewer.Title = locale.Format("LEVEL_NUMBER", cfg.Level)
		viewer.Init()
		viewer.SetStatus(statusLine(cfg.Level, game))
		if err := viewer.RenderFrame(nil, frame); err != nil {
			return err
		}
		return viewer.Run()
	case config.RendererTUI:
		if game == nil {
			return errors.New("map has no walkable cell to start on")
		}
		return walker.Run(walker.New(game, tui.New(), logger))
	default:
		r := tui.New()
		fmt.Println(r.StyleText(locale.Format("LEVEL_NUMBER", cfg.Level), renderer.StyleHeading))
		return r.RenderFrame(os.Stdout, frame)
	}
}

func main() {
	o := parseFlags()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "boardmap",
	})
	if err := run(o, logger); err != nil {
		logger.Fatal("board failed", "err", err)
	}
}
