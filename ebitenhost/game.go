// Package ebitenhost runs a parallax.Tracker inside an Ebitengine window: the
// mouse wheel and keyboard scroll a parallax.Page, window layout changes are
// forwarded as resize events, and the page's boxes are drawn with their
// current view-state class and parallax translation.
package ebitenhost

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/parallax"
)

const (
	defaultWheelSpeed = 60
	homeScrollSeconds = 0.6
)

// RunConfig configures the window and input of a hosted tracker.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// WheelSpeed is the scroll distance, in pixels, of one wheel notch.
	WheelSpeed float64
	// ShowHUD draws FPS, scroll offset and item counts in the corner.
	ShowHUD bool
	// InViewClass is the class that tints boxes; defaults to "--in-view".
	InViewClass string
	// ExitWhenScriptDone ends the game once the tracker's script finishes.
	ExitWhenScriptDone bool
	Script             *parallax.ScriptRunner
}

// Game implements ebiten.Game around a tracker and the page it watches.
type Game struct {
	tracker *parallax.Tracker
	page    *parallax.Page
	cfg     RunConfig

	lastW, lastH int
	hud          *hud
}

// NewGame wires a game. The tracker must have been built over page.
func NewGame(t *parallax.Tracker, page *parallax.Page, cfg RunConfig) *Game {
	if cfg.WheelSpeed == 0 {
		cfg.WheelSpeed = defaultWheelSpeed
	}
	if cfg.InViewClass == "" {
		cfg.InViewClass = parallax.DefaultConfig().InViewClass
	}
	w, h := page.InnerSize()
	g := &Game{
		tracker: t,
		page:    page,
		cfg:     cfg,
		lastW:   int(w),
		lastH:   int(h),
	}
	if cfg.ShowHUD {
		g.hud = newHUD()
	}
	if cfg.Script != nil {
		t.SetScript(cfg.Script)
	}
	return g
}

// Update reads input, then advances the tracker by one tick.
func (g *Game) Update() error {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scrollBy(-dy * g.cfg.WheelSpeed)
	}
	_, h := g.page.InnerSize()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.scrollBy(h * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scrollBy(-h * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.tracker.Scroll.ScrollTo(0, homeScrollSeconds, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.tracker.Scroll.ScrollTo(g.page.MaxScroll(), homeScrollSeconds, ease.OutCubic)
	}

	g.tracker.Frame(frameDuration(ebiten.TPS()))

	if g.hud != nil {
		g.hud.update(frameDuration(ebiten.TPS()), g.stats())
	}
	if g.cfg.ExitWhenScriptDone && g.cfg.Script != nil && g.cfg.Script.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) scrollBy(dy float64) {
	g.page.ScrollBy(dy)
	g.tracker.Scroll.HandleScroll()
}

// Draw paints every attached box at its scrolled, translated position.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1e, G: 0x1e, B: 0x28, A: 0xff})
	scrollY := g.page.ScrollY()
	w, h := g.page.InnerSize()
	view := parallax.NewRect(0, 0, w, h)
	for _, b := range g.page.Boxes() {
		if !b.Attached() {
			continue
		}
		r := screenRect(b, scrollY)
		if !r.Intersects(view) {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height),
			boxColor(b, g.cfg.InViewClass), false)
	}
	if g.hud != nil {
		g.hud.draw(screen)
	}
}

// Layout forwards window size changes to the page and the viewport sampler.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW, g.lastH = outsideWidth, outsideHeight
		g.tracker.InjectResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) stats() hudStats {
	s := hudStats{scrollY: g.page.ScrollY(), items: g.tracker.Registry.Len()}
	for _, b := range g.page.Boxes() {
		if b.HasClass(g.cfg.InViewClass) {
			s.inView++
		}
	}
	return s
}

// Run opens a window and runs the game until it is closed.
func Run(t *parallax.Tracker, page *parallax.Page, cfg RunConfig) error {
	g := NewGame(t, page, cfg)
	ebiten.SetWindowSize(g.lastW, g.lastH)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// screenRect returns where a box is drawn: its layout moved by its
// translation and by the scroll offset.
func screenRect(b *parallax.Box, scrollY float64) parallax.Rect {
	t := b.Translation()
	return b.Layout.Translate(t.X, t.Y-scrollY)
}

var (
	colorIdle   = color.RGBA{R: 0x50, G: 0x5a, B: 0x6e, A: 0xff}
	colorInView = color.RGBA{R: 0x50, G: 0xb4, B: 0xff, A: 0xff}
)

// boxColor tints boxes carrying the in-view class.
func boxColor(b *parallax.Box, inViewClass string) color.RGBA {
	if b.HasClass(inViewClass) {
		return colorInView
	}
	return colorIdle
}

func frameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
