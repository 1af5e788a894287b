package parallax

import "github.com/rs/zerolog"

// engine is the plumbing shared by Detector and Speed: the engine's own view
// of the registry, the throttled single-flight tick, and the watchers.
type engine struct {
	reg  *Registry
	host Host

	// items is the engine's copy-on-write view of the items it registered.
	items []*item

	throttle    *Throttle
	ticking     bool
	dropped     int
	initialized bool
	watches     []WatchHandle

	debug bool
	log   zerolog.Logger
}

func newEngine(component string, reg *Registry, host Host, cfg Config, tick func()) engine {
	cfg = cfg.withDefaults()
	return engine{
		reg:      reg,
		host:     host,
		throttle: NewThrottle(host.Clock, cfg.TickInterval, tick),
		debug:    cfg.Debug,
		log:      cfg.Logger.With().Str("component", component).Logger(),
	}
}

func (e *engine) track(its ...*item) {
	next := make([]*item, len(e.items), len(e.items)+len(its))
	copy(next, e.items)
	e.items = append(next, its...)
}

func (e *engine) add(el Element, opts ItemOptions) string {
	it := e.reg.addItem(el, opts, 0)
	e.track(it)
	return it.id
}

func (e *engine) addAll(els []Element, opts ItemOptions) []string {
	ids := make([]string, len(els))
	its := make([]*item, len(els))
	for i, el := range els {
		its[i] = e.reg.addItem(el, opts, i)
		ids[i] = its[i].id
	}
	e.track(its...)
	return ids
}

// remove drops ids from the registry and from the engine's view. Ids the
// engine does not own are still removed from the registry, like the shared
// list they come from.
func (e *engine) remove(ids ...string) {
	e.reg.Remove(ids...)
	next := make([]*item, 0, len(e.items))
	for _, it := range e.items {
		if !it.removed {
			next = append(next, it)
		}
	}
	e.items = next
}

// removeAll drops every item the engine registered.
func (e *engine) removeAll() {
	ids := make([]string, len(e.items))
	for i, it := range e.items {
		ids[i] = it.id
	}
	e.remove(ids...)
}

// watchSize calls fn whenever a non-zero width or height is published, which
// is the "resize settled" signal.
func (e *engine) watchSize(fn func()) {
	settled := func(v float64) {
		if v == 0 {
			return
		}
		fn()
	}
	e.watches = append(e.watches,
		e.host.Width.Watch(settled),
		e.host.Height.Watch(settled),
	)
}

func (e *engine) watchScroll() {
	e.watches = append(e.watches, e.host.ScrollTop.Watch(func(float64) {
		e.throttle.Call()
	}))
}

func (e *engine) unwatch() {
	for _, w := range e.watches {
		w.Remove()
	}
	e.watches = nil
	e.throttle.Cancel()
}

// Len returns the number of items the engine tracks.
func (e *engine) Len() int {
	return len(e.items)
}

// Ticking reports whether a tick is in flight.
func (e *engine) Ticking() bool {
	return e.ticking
}

// IDs returns the ids the engine tracks, in insertion order.
func (e *engine) IDs() []string {
	ids := make([]string, len(e.items))
	for i, it := range e.items {
		ids[i] = it.id
	}
	return ids
}

// live returns the engine's items, first compacting away items another
// engine removed from the shared registry.
func (e *engine) live() []*item {
	for _, it := range e.items {
		if it.removed {
			e.remove()
			break
		}
	}
	return e.items
}
