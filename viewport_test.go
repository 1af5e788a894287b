package parallax

import "testing"

func TestViewportSettlesResizeBursts(t *testing.T) {
	p := NewPage(800, 600)
	c := NewClock()
	cfg := DefaultConfig()
	v := NewViewport(p, p.Root(), c, cfg)

	v.HandleResize()
	if v.Resizing() {
		t.Fatal("resize handled before Initialize")
	}

	v.Initialize()
	if v.Width.Get() != 800 || v.Height.Get() != 600 {
		t.Fatalf("initial size = %vx%v", v.Width.Get(), v.Height.Get())
	}

	published := 0
	v.Height.Watch(func(float64) { published++ })

	p.Resize(1024, 700)
	v.HandleResize()
	if !v.Resizing() || !p.Root().HasClass(resizingClass) {
		t.Fatal("resizing class not set")
	}
	c.Advance(cfg.ViewportDelay / 2)
	p.Resize(1024, 768)
	v.HandleResize()
	c.Advance(cfg.ViewportDelay / 2)
	if published != 0 {
		t.Fatal("size published during the burst")
	}

	c.Advance(cfg.ViewportDelay)
	if published != 1 {
		t.Errorf("published = %d, want 1", published)
	}
	if v.Width.Get() != 1024 || v.Height.Get() != 768 {
		t.Errorf("size = %vx%v, want 1024x768", v.Width.Get(), v.Height.Get())
	}
	if v.Resizing() || p.Root().HasClass(resizingClass) {
		t.Error("resizing class left after settling")
	}
}

func TestViewportDestroyUndamps(t *testing.T) {
	p := NewPage(800, 600)
	c := NewClock()
	v := NewViewport(p, p.Root(), c, DefaultConfig())
	v.Initialize()
	v.HandleResize()
	v.Destroy()
	if p.Root().HasClass(resizingClass) {
		t.Error("resizing class left after Destroy")
	}
	if c.Pending() != 0 {
		t.Errorf("pending timers = %d after Destroy", c.Pending())
	}
}

func TestViewportNilRoot(t *testing.T) {
	p := NewPage(800, 600)
	c := NewClock()
	v := NewViewport(p, nil, c, DefaultConfig())
	v.Initialize()
	v.HandleResize()
	c.Advance(DefaultConfig().ViewportDelay)
	if v.Resizing() {
		t.Error("still resizing")
	}
}
