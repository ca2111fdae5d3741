package main

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/config"
	"github.com/milk9111/tilepaint/grid"
	"github.com/milk9111/tilepaint/input"
	"github.com/milk9111/tilepaint/render"
	"github.com/milk9111/tilepaint/texture"
	"github.com/sirupsen/logrus"
)

const (
	margin     = 16
	statusBarH = 32
)

var (
	backgroundColor = color.RGBA{0x28, 0x28, 0x28, 0xff}
	hoverColor      = color.RGBA{0xff, 0xff, 0xff, 0x55}
	outlineColor    = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// Game owns the painter state: textures, the tile map, the selection and
// drawing flag (inside the controller), and the two drawing surfaces.
type Game struct {
	cfg    config.Config
	log    *logrus.Entry
	cancel context.CancelFunc

	pool    *texture.Pool
	watcher *texture.Watcher
	grid    *grid.Grid

	gridSurface     *render.EbitenSurface
	paletteSurface  *render.EbitenSurface
	gridRenderer    *render.GridRenderer
	paletteRenderer *render.PaletteRenderer

	ctrl    *input.Controller
	pointer *input.Pointer

	ui     *ebitenui.UI
	status *StatusBar

	ready     bool
	hoverImg  *ebiten.Image
	borderImg *ebiten.Image
}

func NewGame(cfg config.Config) (*Game, error) {
	log := logrus.WithField("component", "game")

	var src texture.Source = texture.FSSource{FS: assets.Tiles()}
	if cfg.TextureDir != "" {
		src = texture.DirSource{Dir: cfg.TextureDir}
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		cfg:    cfg,
		log:    log,
		cancel: cancel,
		pool:   texture.NewPool(src, cfg.Textures, logrus.WithField("component", "texture")),
		grid:   grid.New(cfg.GridSize, grid.WithLimit(len(cfg.Textures))),
	}

	registry := render.NewRegistry()
	g.gridSurface = render.NewEbitenSurface(cfg.GridWidth, cfg.GridHeight, registry)
	g.paletteSurface = render.NewEbitenSurface(cfg.PaletteWidth, cfg.PaletteHeight, registry)
	g.gridRenderer = render.NewGridRenderer(g.gridSurface, g.grid, g.pool)
	g.paletteRenderer = render.NewPaletteRenderer(g.paletteSurface, g.pool)

	g.ctrl = input.NewController(g.grid, g.gridRenderer, g.paletteRenderer, g.pool.Len(), g.gridRenderer.Redraw, logrus.WithField("component", "input"))
	gridRect, paletteRect := g.surfaceRects()
	g.pointer = &input.Pointer{Grid: gridRect, Palette: paletteRect}

	g.hoverImg = ebiten.NewImage(1, 1)
	g.hoverImg.Fill(hoverColor)
	g.borderImg = ebiten.NewImage(1, 1)
	g.borderImg.Fill(outlineColor)

	g.ui, g.status = NewStatusUI()

	if cfg.Watch {
		w, err := texture.NewWatcher(texture.DirSource{Dir: cfg.TextureDir}, logrus.WithField("component", "texture"))
		if err != nil {
			cancel()
			return nil, fmt.Errorf("game: watch %s: %w", cfg.TextureDir, err)
		}
		g.watcher = w
		log.WithField("dir", cfg.TextureDir).Info("watching textures")
	}

	g.pool.OnReload(g.onTextureReloaded)
	if err := g.pool.Load(ctx, g.onTexturesReady); err != nil {
		g.Close()
		return nil, fmt.Errorf("game: load textures: %w", err)
	}
	return g, nil
}

// Close stops pending texture loads and the file watcher.
func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.WithError(err).Warn("close watcher")
		}
	}
}

// surfaceRects lays out the grid on the left and the palette to its right.
func (g *Game) surfaceRects() (gridRect, paletteRect image.Rectangle) {
	gridRect = image.Rect(0, 0, g.cfg.GridWidth, g.cfg.GridHeight).Add(image.Pt(margin, margin))
	paletteRect = image.Rect(0, 0, g.cfg.PaletteWidth, g.cfg.PaletteHeight).Add(image.Pt(gridRect.Max.X+margin, margin))
	return gridRect, paletteRect
}

// WindowSize returns the window size that fits both surfaces and the status bar.
func (g *Game) WindowSize() (int, int) {
	gridRect, paletteRect := g.surfaceRects()
	h := max(gridRect.Max.Y, paletteRect.Max.Y) + margin + statusBarH
	return paletteRect.Max.X + margin, h
}

func (g *Game) onTexturesReady() {
	g.ready = true
	g.gridRenderer.Redraw()
	g.paletteRenderer.Draw()
	g.log.Info("painter ready")
}

func (g *Game) onTextureReloaded(index int) {
	if !g.ready {
		return
	}
	g.paletteRenderer.Draw()
	g.gridRenderer.Redraw()
	g.log.WithField("index", index).Debug("surfaces redrawn after reload")
}

func (g *Game) Update() error {
	if err := g.pool.Poll(); err != nil {
		return fmt.Errorf("tilepaint: %w", err)
	}
	g.pollWatcher()
	g.ui.Update()

	if !g.ready {
		g.status.SetLoading(g.pool.Loaded(), g.pool.Len())
		return nil
	}

	g.pointer.Feed(g.ctrl, input.Poll())
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.grid.Fill(g.ctrl.Selection()) {
			g.gridRenderer.Redraw()
		}
	}

	tex, _ := g.pool.Texture(g.ctrl.Selection())
	g.status.SetSelection(tex.Index, assets.CleanPath(tex.Path), g.ctrl.Drawing())
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	if queued := g.watcher.Reload(g.pool); len(queued) > 0 {
		g.log.WithField("slots", queued).Debug("texture reload queued")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.ui.Draw(screen)
	if !g.ready {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.pointer.Grid.Min.X), float64(g.pointer.Grid.Min.Y))
	screen.DrawImage(g.gridSurface.Image, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.pointer.Palette.Min.X), float64(g.pointer.Palette.Min.Y))
	screen.DrawImage(g.paletteSurface.Image, op)

	// Hover highlight over the cell under the cursor.
	mx, my := ebiten.CursorPosition()
	if col, row, ok := g.gridRenderer.CellAt(mx-g.pointer.Grid.Min.X, my-g.pointer.Grid.Min.Y); ok {
		g.fillRect(screen, g.hoverImg, g.gridRenderer.CellRect(col, row).Add(g.pointer.Grid.Min))
	}

	// Outline the selected swatch.
	sel := g.paletteRenderer.SwatchRect(g.ctrl.Selection()).Add(g.pointer.Palette.Min)
	g.fillRect(screen, g.borderImg, image.Rect(sel.Min.X, sel.Min.Y, sel.Max.X, sel.Min.Y+2))
	g.fillRect(screen, g.borderImg, image.Rect(sel.Min.X, sel.Max.Y-2, sel.Max.X, sel.Max.Y))
	g.fillRect(screen, g.borderImg, image.Rect(sel.Min.X, sel.Min.Y, sel.Min.X+2, sel.Max.Y))
	g.fillRect(screen, g.borderImg, image.Rect(sel.Max.X-2, sel.Min.Y, sel.Max.X, sel.Max.Y))
}

// fillRect stretches a 1×1 image over r.
func (g *Game) fillRect(screen, img *ebiten.Image, r image.Rectangle) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(img, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
