package main

import (
	"flag"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelmap/config"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "app")

func main() {
	configPath := flag.String("config", "pixelmap.yaml", "path to the YAML config (missing file uses defaults)")
	cols := flag.String("cols", "", "initial column count, overrides config")
	rows := flag.String("rows", "", "initial row count, overrides config")
	picked := flag.String("color", "", "initial picked color as #RRGGBB, overrides config")
	outDir := flag.String("out", "", "directory Save JPG writes into, overrides config")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if *picked != "" {
		cfg.PickedColor = *picked
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid settings")
	}
	setLogLevel(cfg.LogLevel, *debug)

	initCols, initRows := strconv.Itoa(cfg.Columns), strconv.Itoa(cfg.Rows)
	if *cols != "" {
		initCols = *cols
	}
	if *rows != "" {
		initRows = *rows
	}

	game, err := NewGame(cfg, initCols, initRows)
	if err != nil {
		log.WithError(err).Fatal("start")
	}
	defer game.Close()
	game.debug = *debug

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(windowTitle(cfg.Title, false))

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("run")
	}
}

func setLogLevel(name string, debug bool) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, using info", name)
		level = logrus.InfoLevel
	}
	if debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
