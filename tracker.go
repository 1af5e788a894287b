package parallax

import (
	"time"

	"github.com/rs/zerolog"
)

// Tracker is the composition root: it owns the clock, the frame batch, the
// scroll and viewport samplers, the shared registry and both engines, and is
// driven by the host once per frame.
//
//	page := parallax.NewPage(1280, 720)
//	t := parallax.New(page, page.Root(), parallax.DefaultConfig())
//	t.Initialize()
//	ids := t.Detect.AddAll(page.Elements(), parallax.ItemOptions{})
//	// every frame:
//	t.Frame(time.Second / 60)
type Tracker struct {
	Clock    *Clock
	Batch    *Batch
	Scroll   *Scroller
	View     *Viewport
	Registry *Registry
	Detect   *Detector
	Speed    *Speed

	runner      *ScriptRunner
	injectQueue []float64
	page        *Page
	initialized bool
	log         zerolog.Logger
}

// New wires a tracker over window. root, if non-nil, receives the resizing
// class during resize bursts.
func New(window Window, root Element, cfg Config) *Tracker {
	cfg = cfg.withDefaults()
	clock := NewClock()
	batch := NewBatch()
	scroll := NewScroller(window, clock, cfg)
	view := NewViewport(window, root, clock, cfg)
	host := Host{
		Clock:     clock,
		Scheduler: batch,
		ScrollTop: scroll.ScrollTop,
		Width:     view.Width,
		Height:    view.Height,
	}
	reg := NewRegistry(host, cfg)
	t := &Tracker{
		Clock:    clock,
		Batch:    batch,
		Scroll:   scroll,
		View:     view,
		Registry: reg,
		Detect:   NewDetector(reg, host, cfg),
		Speed:    NewSpeed(reg, host, cfg),
		log:      cfg.Logger.With().Str("component", "tracker").Logger(),
	}
	if p, ok := window.(*Page); ok {
		t.page = p
	}
	return t
}

// Initialize starts the samplers, subscribes the engines and queues a first
// pass so items are classified before the first scroll. Calling it again
// before Destroy is a no-op.
func (t *Tracker) Initialize() {
	if t.initialized {
		return
	}
	t.initialized = true
	// Samplers publish their initial values before the engines watch them,
	// so start-up does not count as a resize.
	t.Scroll.Initialize()
	t.View.Initialize()
	t.Detect.Initialize()
	t.Speed.Initialize()
	t.Detect.Tick()
	t.Speed.Tick()
	t.log.Debug().Msg("initialized")
}

// Frame advances the tracker by dt: scripted steps and injected scrolls are
// applied, the smooth scroll is stepped, due timers fire, and the batch is
// flushed (frame callbacks, reads, then writes). Hosts call it once per frame
// before drawing.
func (t *Tracker) Frame(dt time.Duration) {
	if t.runner != nil {
		t.runner.step(t)
	}
	t.processInjected()
	t.Scroll.Update(float32(dt.Seconds()))
	t.Clock.Advance(dt)
	t.Batch.Flush()
}

// Settle runs frames of dt until no timers, no queued work and no easing is
// left, or max frames have run. It returns the number of frames run.
func (t *Tracker) Settle(dt time.Duration, max int) int {
	for i := 0; i < max; i++ {
		frames, reads, writes := t.Batch.Pending()
		idle := frames == 0 && reads == 0 && writes == 0 &&
			t.Clock.Pending() == 0 && len(t.injectQueue) == 0 &&
			!t.Scroll.Animating() && (t.runner == nil || t.runner.Done())
		if idle {
			return i
		}
		t.Frame(dt)
	}
	return max
}

// Destroy tears everything down. Calling it twice is a no-op.
func (t *Tracker) Destroy() {
	if !t.initialized {
		return
	}
	t.initialized = false
	t.Detect.Destroy()
	t.Speed.Destroy()
	t.Registry.Destroy()
	t.Scroll.Destroy()
	t.View.Destroy()
	t.runner = nil
	t.injectQueue = nil
	t.log.Debug().Msg("destroyed")
}
