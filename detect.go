package parallax

import "time"

// Detector classifies its items as in or out of view on every scroll tick
// and raises enter-view/leave-view notifications.
//
// Per item the detector walks unmeasured → measured → offset-resolved →
// classified, falling back to unmeasured on every resize reset. Items
// registered with Once stop being recomputed once they are in view, until
// the next reset.
type Detector struct {
	engine
}

// NewDetector creates a detection engine over reg.
func NewDetector(reg *Registry, host Host, cfg Config) *Detector {
	d := &Detector{}
	d.engine = newEngine("detect", reg, host, cfg, d.tick)
	return d
}

// Initialize subscribes to scroll and viewport changes. Calling it again
// before Destroy is a no-op.
func (d *Detector) Initialize() {
	if d.initialized {
		return
	}
	d.initialized = true
	d.watchScroll()
	d.watchSize(d.Update)
}

// Update forces the resize reset, e.g. after a layout change the viewport
// sampler could not see.
func (d *Detector) Update() {
	d.reg.ScheduleReset()
}

// Destroy removes the detector's items and unsubscribes it. The detector can
// be initialized again afterwards.
func (d *Detector) Destroy() {
	d.removeAll()
	d.unwatch()
	d.initialized = false
}

// Add tracks one element and returns its id.
func (d *Detector) Add(el Element, opts ItemOptions) string {
	return d.add(el, opts)
}

// AddAll tracks a batch of elements and returns their ids in input order.
func (d *Detector) AddAll(els []Element, opts ItemOptions) []string {
	return d.addAll(els, opts)
}

// On subscribes fn to "enter-view" or "leave-view" on the given ids.
func (d *Detector) On(event string, fn Handler, ids ...string) (Subscription, error) {
	return d.reg.On(event, fn, ids...)
}

// Remove stops tracking the given ids. Unknown ids are ignored.
func (d *Detector) Remove(ids ...string) {
	d.remove(ids...)
}

// State returns a copy of an item's state.
func (d *Detector) State(id string) (ItemState, bool) {
	return d.reg.State(id)
}

// Tick runs a detection pass now, bypassing the throttle but not the
// single-flight guard. The pass completes on the next Scheduler flush.
func (d *Detector) Tick() {
	d.tick()
}

func (d *Detector) tick() {
	if d.ticking {
		d.dropped++
		return
	}
	d.ticking = true

	d.host.Scheduler.Measure(func() {
		defer func() { d.ticking = false }()
		items := d.live()

		var stats tickStats
		stats.items = len(items)
		scrollTop := d.host.ScrollTop.Get()
		windowHeight := d.host.Height.Get()

		// Reads first. Frozen is decided once per tick: measuring a
		// once-item right after a reset would otherwise freeze it again
		// before it is classified.
		skip := make([]bool, len(items))
		for i, it := range items {
			skip[i] = it.removed || it.frozen()
			if skip[i] {
				continue
			}
			if it.state.Boundings == nil {
				b := GetBoundings(it.element, scrollTop)
				it.state.Boundings = &b
				stats.measured++
			}
		}

		var t0 time.Time
		if d.debug {
			t0 = time.Now()
		}
		for i, it := range items {
			if skip[i] || it.removed || it.state.Boundings == nil {
				stats.skipped++
				continue
			}
			d.reg.resolveTriggerOffsets(it, windowHeight)
			inView := IsInView(scrollTop, windowHeight, it.options.TriggerOffsets, *it.state.Boundings, it.state.Coordinates)
			d.reg.setInView(it, inView)
			if inView {
				stats.inView++
			}
		}

		if d.debug {
			stats.decideTime = time.Since(t0)
			stats.dropped = d.dropped
			logTick(d.log, stats)
		}
	})
}
