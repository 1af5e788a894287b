package parallax

import (
	"math"
	"time"
)

// lerpTolerance is the distance, in pixels, under which an interpolated
// translation counts as arrived.
const lerpTolerance = 1.0

// Speed is the parallax engine. On every scroll tick it classifies its items,
// computes for each item in speed view the translation that would center it
// in the viewport scaled by its speed, eases the applied translation toward
// it, and writes the result as a transform.
//
// While any item is still easing the engine re-runs itself every frame,
// ignoring the throttle, so motion settles after scrolling stops.
type Speed struct {
	engine

	// lerpDone is false while at least one item is still easing.
	lerpDone bool
	rearms   int
}

// NewSpeed creates a parallax engine over reg.
func NewSpeed(reg *Registry, host Host, cfg Config) *Speed {
	s := &Speed{lerpDone: true}
	s.engine = newEngine("parallax", reg, host, cfg, s.tick)
	return s
}

// Initialize subscribes to scroll and viewport changes. Calling it again
// before Destroy is a no-op.
func (s *Speed) Initialize() {
	if s.initialized {
		return
	}
	s.initialized = true
	s.watchScroll()
	s.watchSize(s.Update)
}

// Update clears every applied transform and schedules the registry reset, so
// offsets are recomputed against the new layout.
func (s *Speed) Update() {
	for _, it := range s.live() {
		el := it.element
		s.host.Scheduler.Mutate(func() { ClearTransform(el) })
	}
	s.lerpDone = true
	s.reg.ScheduleReset()
}

// Destroy removes the engine's items and unsubscribes it. Applied transforms
// are left in place.
func (s *Speed) Destroy() {
	s.removeAll()
	s.unwatch()
	s.lerpDone = true
	s.initialized = false
}

// Add tracks one element and returns its id. opts.Speed and opts.Lerp are on
// the 0-10 scale.
func (s *Speed) Add(el Element, opts ItemOptions) string {
	return s.add(el, opts)
}

// AddAll tracks a batch of elements and returns their ids in input order.
func (s *Speed) AddAll(els []Element, opts ItemOptions) []string {
	return s.addAll(els, opts)
}

// On subscribes fn to "enter-view" or "leave-view" on the given ids.
func (s *Speed) On(event string, fn Handler, ids ...string) (Subscription, error) {
	return s.reg.On(event, fn, ids...)
}

// Remove stops tracking the given ids. Unknown ids are ignored.
func (s *Speed) Remove(ids ...string) {
	s.remove(ids...)
}

// State returns a copy of an item's state.
func (s *Speed) State(id string) (ItemState, bool) {
	return s.reg.State(id)
}

// LerpDone reports whether every item has settled.
func (s *Speed) LerpDone() bool {
	return s.lerpDone
}

// Rearms returns how many ticks were started by the easing loop rather than
// by scrolling.
func (s *Speed) Rearms() int {
	return s.rearms
}

// Tick runs a pass now, bypassing the throttle but not the single-flight
// guard. Reads and decisions run on the next Scheduler flush, writes right
// after them in the same flush.
func (s *Speed) Tick() {
	s.tick()
}

// ParallaxTarget returns the translation that centers an element when it is
// scrolled to the middle of the viewport, scaled by speed.
func ParallaxTarget(scrollTop, windowHeight float64, boundings Rect, speed float64) Vec2 {
	scrollMiddle := scrollTop + windowHeight/2
	itemMiddle := boundings.Y + boundings.Height/2
	return Vec2{X: 0, Y: (scrollMiddle - itemMiddle) * speed}
}

type speedWrite struct {
	it *item
	to Vec2
}

func (s *Speed) tick() {
	if s.ticking {
		s.dropped++
		return
	}
	s.ticking = true

	s.host.Scheduler.Measure(func() {
		items := s.live()
		var stats tickStats
		stats.items = len(items)
		scrollTop := s.host.ScrollTop.Get()
		windowHeight := s.host.Height.Get()

		// Reads: boundings (without the translation we applied ourselves)
		// and the currently applied translation.
		applied := make([]Vec2, len(items))
		for i, it := range items {
			if it.removed {
				continue
			}
			applied[i] = ReadTranslate(it.element)
			if it.state.Boundings == nil {
				b := GetBoundings(it.element, scrollTop)
				if !b.IsZero() {
					b = b.Translate(-applied[i].X, -applied[i].Y)
				}
				it.state.Boundings = &b
				stats.measured++
			}
		}

		var t0 time.Time
		if s.debug {
			t0 = time.Now()
		}
		writes := make([]speedWrite, 0, len(items))
		for i, it := range items {
			if it.removed {
				stats.skipped++
				continue
			}
			s.reg.resolveTriggerOffsets(it, windowHeight)
			b := *it.state.Boundings
			s.reg.setInView(it, IsInView(scrollTop, windowHeight, it.options.TriggerOffsets, b, it.state.Coordinates))
			it.state.IsInSpeedView = IsInView(scrollTop, windowHeight, [2]float64{}, b, it.state.Coordinates)
			if !it.state.IsInSpeedView {
				// Nothing is written for items out of view, so there is
				// nothing left to ease.
				it.state.LerpDone = true
				continue
			}
			stats.inView++

			target := ParallaxTarget(scrollTop, windowHeight, b, it.options.SpeedAmount)
			next := LerpCoordinates(applied[i], target, it.options.LerpAmount)
			it.state.Coordinates = next
			it.state.LerpDone = it.options.LerpAmount == 0 || math.Abs(target.Y-next.Y) <= lerpTolerance
			writes = append(writes, speedWrite{it: it, to: next})
		}

		done := true
		for _, it := range items {
			if !it.removed && !it.state.LerpDone {
				done = false
				break
			}
		}
		s.lerpDone = done

		if s.debug {
			stats.decideTime = time.Since(t0)
		}

		s.host.Scheduler.Mutate(func() {
			for _, w := range writes {
				if !w.it.removed {
					ApplyTransform(w.it.element, w.to)
				}
			}
			s.ticking = false

			stats.writes = len(writes)
			stats.rearmed = !s.lerpDone
			stats.dropped = s.dropped
			if s.debug {
				logTick(s.log, stats)
			}
			if !s.lerpDone {
				s.rearms++
				s.tick()
			}
		})
	})
}
