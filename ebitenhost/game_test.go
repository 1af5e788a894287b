package ebitenhost

import (
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/parallax"
)

func newTestGame(t *testing.T) (*Game, *parallax.Tracker, *parallax.Page) {
	t.Helper()
	page := parallax.NewPage(640, 480)
	page.NewBox("content", 0, 0, 640, 3000)
	tr := parallax.New(page, page.Root(), parallax.DefaultConfig())
	tr.Initialize()
	return NewGame(tr, page, RunConfig{}), tr, page
}

func TestNewGameDefaults(t *testing.T) {
	g, _, _ := newTestGame(t)
	if g.cfg.WheelSpeed != defaultWheelSpeed {
		t.Errorf("WheelSpeed = %v, want %v", g.cfg.WheelSpeed, defaultWheelSpeed)
	}
	if g.cfg.InViewClass != "--in-view" {
		t.Errorf("InViewClass = %q", g.cfg.InViewClass)
	}
	if g.lastW != 640 || g.lastH != 480 {
		t.Errorf("initial layout = %dx%d, want 640x480", g.lastW, g.lastH)
	}
	if g.hud != nil {
		t.Error("HUD created without ShowHUD")
	}
}

func TestLayoutForwardsResize(t *testing.T) {
	g, tr, page := newTestGame(t)

	w, h := g.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	if tr.View.Resizing() {
		t.Fatal("unchanged layout reported as a resize")
	}

	g.Layout(800, 600)
	if pw, ph := page.InnerSize(); pw != 800 || ph != 600 {
		t.Errorf("page size = %vx%v, want 800x600", pw, ph)
	}
	if !tr.View.Resizing() {
		t.Error("resize not forwarded to the viewport")
	}
	tr.Settle(time.Second/60, 600)
	if tr.View.Height.Get() != 600 {
		t.Errorf("published height = %v, want 600", tr.View.Height.Get())
	}
}

func TestScrollBy(t *testing.T) {
	g, tr, page := newTestGame(t)
	g.scrollBy(120)
	if page.ScrollY() != 120 || tr.Scroll.ScrollTop.Get() != 120 {
		t.Errorf("ScrollY = %v, published %v, want 120", page.ScrollY(), tr.Scroll.ScrollTop.Get())
	}
}

func TestScreenRect(t *testing.T) {
	page := parallax.NewPage(640, 480)
	b := page.NewBox("b", 10, 500, 100, 50)
	parallax.ApplyTransform(b, parallax.Vec2{X: 2, Y: -30})

	got := screenRect(b, 200)
	want := parallax.NewRect(12, 270, 100, 50)
	if got != want {
		t.Errorf("screenRect = %+v, want %+v", got, want)
	}
}

func TestBoxColor(t *testing.T) {
	page := parallax.NewPage(640, 480)
	b := page.NewBox("b", 0, 0, 1, 1)
	if boxColor(b, "--in-view") != colorIdle {
		t.Error("idle box tinted")
	}
	b.AddClass("--in-view")
	if boxColor(b, "--in-view") != colorInView {
		t.Error("in-view box not tinted")
	}
}

func TestStats(t *testing.T) {
	g, tr, page := newTestGame(t)
	a := page.NewBox("a", 0, 100, 10, 10)
	tr.Detect.Add(a, parallax.ItemOptions{})
	tr.Settle(time.Second/60, 600)

	s := g.stats()
	if s.items != 1 || s.inView != 1 {
		t.Errorf("stats = %+v, want 1 item in view", s)
	}
}

func TestHUDText(t *testing.T) {
	got := hudText(59.94, 60, hudStats{scrollY: 120.4, items: 8, inView: 3})
	for _, want := range []string{"FPS: 59.9", "TPS: 60.0", "Scroll: 120", "In view: 3/8"} {
		if !strings.Contains(got, want) {
			t.Errorf("hudText = %q, missing %q", got, want)
		}
	}
}

func TestFrameDuration(t *testing.T) {
	if got := frameDuration(60); got != time.Second/60 {
		t.Errorf("frameDuration(60) = %v", got)
	}
	if got := frameDuration(0); got != time.Second/60 {
		t.Errorf("frameDuration(0) = %v, want the default TPS", got)
	}
}
