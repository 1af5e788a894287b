package parallax

import (
	"testing"
	"time"
)

const testFrame = 16 * time.Millisecond

// rig wires a registry over a Page with hand-driven published values, so
// tests control exactly when scroll and size notifications fire.
type rig struct {
	page   *Page
	clock  *Clock
	batch  *Batch
	scroll *Value[float64]
	width  *Value[float64]
	height *Value[float64]
	host   Host
	cfg    Config
	reg    *Registry
}

func newRig(t *testing.T, width, height float64) *rig {
	t.Helper()
	r := &rig{
		page:   NewPage(width, height),
		clock:  NewClock(),
		batch:  NewBatch(),
		scroll: NewValue(0.0),
		width:  NewValue(width),
		height: NewValue(height),
		cfg:    DefaultConfig(),
	}
	r.host = Host{
		Clock:     r.clock,
		Scheduler: r.batch,
		ScrollTop: r.scroll,
		Width:     r.width,
		Height:    r.height,
	}
	// Tall untracked filler so the page can scroll.
	r.page.NewBox("filler", 0, 0, 10, 5000)
	r.reg = NewRegistry(r.host, r.cfg)
	return r
}

// scrollTo moves the page and publishes the new offset.
func (r *rig) scrollTo(y float64) {
	r.page.SetScrollY(y)
	r.scroll.Set(r.page.ScrollY())
}

// frame advances the clock by one frame and flushes the batch.
func (r *rig) frame() {
	r.clock.Advance(testFrame)
	r.batch.Flush()
}

// counter records notifications per event.
type counter struct {
	enter, leave int
	last         EventContext
}

func (c *counter) watch(t *testing.T, on func(string, Handler, ...string) (Subscription, error), ids ...string) {
	t.Helper()
	if _, err := on("enter-view", func(ctx EventContext) { c.enter++; c.last = ctx }, ids...); err != nil {
		t.Fatalf("On(enter-view): %v", err)
	}
	if _, err := on("leave-view", func(ctx EventContext) { c.leave++; c.last = ctx }, ids...); err != nil {
		t.Fatalf("On(leave-view): %v", err)
	}
}
