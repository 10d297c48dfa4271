package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelmap/config"
	"github.com/milk9111/pixelmap/export"
	"github.com/milk9111/pixelmap/grid"
	"github.com/milk9111/pixelmap/paint"
	"github.com/milk9111/pixelmap/palette"
	"github.com/milk9111/pixelmap/pattern"
	"github.com/sirupsen/logrus"
)

const (
	baseWidth      = 1280
	baseHeight     = 800
	leftPanelWidth = 240
	canvasMargin   = 16

	patternTimeout = 2 * time.Second
)

// Game is the pixel map editor.
type Game struct {
	cfg      *config.Config
	palette  *palette.Palette
	ctrl     *paint.Controller
	layout   grid.Layout
	patterns *pattern.Library
	exporter *export.Exporter
	watcher  *config.Watcher
	clip     clipboardAccess

	ui    *ebitenui.UI
	panel *LeftPanelUI
	help  *ebitenui.UI

	pixel    *ebiten.Image
	hoverRow int
	hoverCol int
	hoverOK  bool
	showHelp bool
	debug    bool
	unsaved  bool
	status   string

	width, height int
}

func NewGame(cfg *config.Config, cols, rows string) (*Game, error) {
	pal, err := palette.New(cfg.DefaultColor, cfg.PickedColor)
	if err != nil {
		return nil, err
	}
	pal.SetSwatches(cfg.PaletteSwatches())

	lib, err := loadPatterns(cfg.PatternsDir)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		palette:  pal,
		ctrl:     paint.NewController(pal),
		patterns: lib,
		exporter: &export.Exporter{},
		clip:     newClipboard(),
		width:    baseWidth,
		height:   baseHeight,
	}
	g.applyConfig(cfg)
	g.ctrl.OnChange = func(grid.Cell) { g.setUnsaved(true) }

	g.ui, g.panel = BuildEditorUI(editorCallbacks{
		onCreate:       g.rebuild,
		onColorEntered: g.pickColor,
		onSwatch:       func(s palette.Swatch) { g.pickColor(palette.Hex(s.Color)) },
		onFill:         g.fill,
		onApplyPattern: g.applyPattern,
		onSave:         g.save,
	}, pal, lib.List(), cols, rows)
	g.help = NewHelpUI(func() { g.showHelp = false })

	g.rebuild(cols, rows)
	g.syncColor()
	g.startWatcher()
	return g, nil
}

// loadPatterns returns the embedded patterns overlaid with the ones in dir.
// A missing or broken directory only costs the overrides.
func loadPatterns(dir string) (*pattern.Library, error) {
	lib, err := pattern.NewLibrary()
	if err != nil {
		return nil, err
	}
	if err := lib.LoadDir(dir); err != nil {
		log.WithError(err).Warn("pattern overrides")
	}
	return lib, nil
}

// applyConfig pushes the settings that can change at runtime.
func (g *Game) applyConfig(cfg *config.Config) {
	g.cfg = cfg
	g.layout = grid.Layout{
		CellSize: cfg.CellSize,
		Gap:      cfg.Gap,
		OriginX:  leftPanelWidth + canvasMargin,
		OriginY:  canvasMargin,
	}
	g.palette.SetSwatches(cfg.PaletteSwatches())
	if def, err := palette.ParseHex(cfg.DefaultColor); err == nil {
		// Takes effect on the next Create Map.
		g.palette.SetDefault(def)
	}

	opts := export.RenderOptions{Layout: grid.Layout{CellSize: cfg.CellSize, Gap: cfg.Gap}}
	if cfg.Export.GridLines {
		opts.GridLines = true
		opts.GridLineColor = palette.MustParseHex(cfg.Export.GridLineColor)
	}
	if cfg.Export.Background != "" {
		bg := palette.MustParseHex(cfg.Export.Background)
		opts.Background = &bg
	}
	g.exporter.Filename = cfg.Export.Filename
	g.exporter.Quality = cfg.Export.Quality
	g.exporter.Render = opts
	g.exporter.Scale = cfg.Export.Scale
	g.exporter.Downloader = export.NewDownloader(cfg.Export.Dir)
}

func (g *Game) startWatcher() {
	var dirs []string
	for _, dir := range []string{g.cfg.PatternsDir, filepath.Dir(g.cfg.Path)} {
		if dir == "" || (dir == "." && g.cfg.Path == "") {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return
	}
	w, err := config.NewWatcher(reloadFilter(g.cfg.Path), dirs...)
	if err != nil {
		log.WithError(err).Info("hot reload disabled")
		return
	}
	g.watcher = w
}

// reloadFilter passes pattern scripts and the settings file at cfgPath.
func reloadFilter(cfgPath string) func(path string) bool {
	return func(path string) bool {
		if pattern.IsScriptFile(path) {
			return true
		}
		return cfgPath != "" && config.IsConfigFile(path) && config.SameFile(path, cfgPath)
	}
}

// Close stops the watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// rebuild replaces the grid. Bad dimensions leave an empty grid and the
// empty indicator.
func (g *Game) rebuild(cols, rows string) {
	gr, err := grid.Build(cols, rows, g.palette.Default())
	g.ctrl.Attach(gr)
	if err != nil {
		log.WithError(err).Warn("create map")
		g.panel.SetEmpty(true)
		g.setUnsaved(false)
		g.setStatus("Empty")
		return
	}
	g.panel.SetEmpty(false)
	g.setUnsaved(false)
	g.setStatus(fmt.Sprintf("%d x %d map", gr.Cols(), gr.Rows()))
	log.WithFields(logrus.Fields{"cols": gr.Cols(), "rows": gr.Rows()}).Info("created map")
}

// pickColor sets the picked color from user text. An empty value clears the
// pick so painting uses the default color.
func (g *Game) pickColor(hex string) {
	if err := g.palette.SetPicked(hex); err != nil {
		g.setStatus(fmt.Sprintf("Invalid color %q", hex))
		g.syncColor()
		return
	}
	g.syncColor()
}

func (g *Game) syncColor() {
	g.panel.SetSelectedColor(g.palette.Active())
}

func (g *Game) fill() {
	if g.ctrl.Grid().Empty() {
		g.setStatus("Empty")
		return
	}
	g.ctrl.Fill()
	g.setUnsaved(true)
	g.setStatus("Filled with " + palette.Hex(g.palette.Active()))
}

func (g *Game) applyPattern(name string) {
	p, ok := g.patterns.Get(name)
	if !ok {
		g.setStatus(fmt.Sprintf("Unknown pattern %q", name))
		return
	}
	gr := g.ctrl.Grid()
	if gr.Empty() {
		g.setStatus("Empty")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), patternTimeout)
	defer cancel()
	colors, err := p.Eval(ctx, gr, g.palette.Active(), gr.Default())
	if err != nil {
		log.WithError(err).WithField("pattern", name).Warn("apply pattern")
		g.setStatus("Pattern failed: " + name)
		return
	}
	n := g.ctrl.Apply(colors)
	g.setUnsaved(n > 0 || g.unsaved)
	g.setStatus(fmt.Sprintf("Applied %s to %d cells", name, n))
}

func (g *Game) save() {
	where, err := g.exporter.Export(context.Background(), g.ctrl.Grid())
	if err != nil {
		log.WithError(err).Error("save")
		g.setStatus("Save failed")
		return
	}
	g.setUnsaved(false)
	g.setStatus("Saved " + where)
}

// setUnsaved marks the window title while the map has changes not yet saved.
func (g *Game) setUnsaved(unsaved bool) {
	if g.unsaved == unsaved {
		return
	}
	g.unsaved = unsaved
	ebiten.SetWindowTitle(windowTitle(g.cfg.Title, unsaved))
}

func windowTitle(title string, unsaved bool) string {
	if unsaved {
		return title + " *"
	}
	return title
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.panel.SetStatus(s)
}

// drainReloads applies pending file changes without blocking the frame.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.WithError(err).Warn("watcher")
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if pattern.IsScriptFile(path) {
		lib, err := loadPatterns(g.cfg.PatternsDir)
		if err != nil {
			log.WithError(err).Error("reload patterns")
			return
		}
		g.patterns = lib
		g.panel.SetPatterns(lib.List())
		g.setStatus("Reloaded patterns")
		log.WithField("file", path).Info("reloaded patterns")
		return
	}

	cfg, err := config.Load(g.cfg.Path)
	if err != nil {
		log.WithError(err).Warn("reload config")
		g.setStatus("Config error, keeping previous settings")
		return
	}
	g.applyConfig(cfg)
	ebiten.SetWindowTitle(windowTitle(cfg.Title, g.unsaved))
	setLogLevel(cfg.LogLevel, g.debug)
	g.panel.SetSwatches(g.palette.Swatches())
	g.setStatus("Reloaded " + filepath.Base(path))
	log.WithField("file", path).Info("reloaded config")
}

func (g *Game) Update() error {
	g.drainReloads()
	g.handleHotkeys()

	if g.showHelp {
		g.help.Update()
		return nil
	}

	g.ui.Update()
	g.updateCanvas()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{60, 60, 64, 255})
	g.drawCanvas(screen)
	g.ui.Draw(screen)
	if g.showHelp {
		g.help.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
