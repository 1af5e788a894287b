package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const hudRefresh = 500 * time.Millisecond

type hudStats struct {
	scrollY float64
	items   int
	inView  int
}

// hud displays FPS/TPS and tracker stats. The text is refreshed every
// ~0.5 seconds into its own image.
type hud struct {
	img     *ebiten.Image
	elapsed time.Duration
	dirty   bool
}

func newHUD() *hud {
	// 180x64 fits four lines of debug text.
	return &hud{img: ebiten.NewImage(180, 64), dirty: true}
}

func (h *hud) update(dt time.Duration, stats hudStats) {
	h.elapsed += dt
	if h.elapsed < hudRefresh && !h.dirty {
		return
	}
	h.elapsed = 0
	h.dirty = false

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), stats))
}

func (h *hud) draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}

func hudText(fps, tps float64, s hudStats) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nScroll: %.0f\nIn view: %d/%d", fps, tps, s.scrollY, s.inView, s.items)
}
