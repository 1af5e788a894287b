package parallax

import (
	"strconv"

	"github.com/rs/zerolog"
)

// eventKey addresses the handlers of one event on one item.
type eventKey struct {
	id    string
	event EventType
}

type subscription struct {
	id uint32
	fn Handler
}

// Subscription allows removing a handler registered with On.
type Subscription struct {
	reg  *Registry
	keys []eventKey
	id   uint32
}

// Remove unregisters the handler from every item it was registered on.
// Removing twice, or after the items are gone, is a no-op.
func (s Subscription) Remove() {
	if s.reg == nil {
		return
	}
	for _, k := range s.keys {
		s.reg.unsubscribe(k, s.id)
	}
}

// Registry owns the tracked items shared by the detection and parallax
// engines. It assigns ids, stores options and state, dispatches
// enter-view/leave-view notifications and runs the resize reset.
//
// Like the rest of the package it is single-threaded: every method must be
// called from the goroutine that drives the Clock and the Batch.
type Registry struct {
	namespace   string
	ticket      uint64
	inViewClass string

	// items is copy-on-write so ticks can iterate a snapshot while items
	// are added or removed.
	items []*item
	byID  map[string]*item

	handlers map[eventKey][]subscription
	nextSub  uint32

	sched     Scheduler
	scrollTop *Value[float64]
	reset     *Debounce
	onReset   []func()
	resets    int

	log zerolog.Logger
}

// NewRegistry creates an empty registry. After a reset it perturbs the
// host's published scroll position to force a recompute.
func NewRegistry(host Host, cfg Config) *Registry {
	cfg = cfg.withDefaults()
	r := &Registry{
		namespace:   cfg.Namespace,
		inViewClass: cfg.InViewClass,
		byID:        make(map[string]*item),
		handlers:    make(map[eventKey][]subscription),
		sched:       host.Scheduler,
		scrollTop:   host.ScrollTop,
		log:         cfg.Logger.With().Str("component", "registry").Logger(),
	}
	r.reset = NewDebounce(host.Clock, cfg.ResizeDelay, r.resetItems)
	return r
}

// Add registers one element and returns its id. The item index is 0.
//
// Items added here are stored and dispatch events, but no engine ticks
// them: callers that want them measured and classified go through
// Detector.Add or Speed.Add, which register in this registry too.
func (r *Registry) Add(el Element, opts ItemOptions) string {
	return r.addItem(el, opts, 0).id
}

// AddAll registers a batch of elements and returns their ids in input order.
// Each item's index is its position in els. Like Add, it does not hand the
// items to an engine.
func (r *Registry) AddAll(els []Element, opts ItemOptions) []string {
	ids := make([]string, len(els))
	for i, el := range els {
		ids[i] = r.addItem(el, opts, i).id
	}
	return ids
}

func (r *Registry) addItem(el Element, opts ItemOptions, index int) *item {
	r.ticket++
	it := &item{
		id:        r.namespace + "-" + strconv.FormatUint(r.ticket, 10),
		element:   el,
		itemIndex: index,
		input:     opts,
		options:   resolveOptions(opts),
		state:     defaultState(),
	}
	next := make([]*item, len(r.items), len(r.items)+1)
	copy(next, r.items)
	r.items = append(next, it)
	r.byID[it.id] = it
	return it
}

// Remove deletes the items and their subscriptions. Unknown ids are ignored.
func (r *Registry) Remove(ids ...string) {
	changed := false
	for _, id := range ids {
		it, ok := r.byID[id]
		if !ok {
			continue
		}
		it.removed = true
		delete(r.byID, id)
		delete(r.handlers, eventKey{id, EventEnterView})
		delete(r.handlers, eventKey{id, EventLeaveView})
		changed = true
	}
	if !changed {
		return
	}
	next := make([]*item, 0, len(r.items))
	for _, it := range r.items {
		if !it.removed {
			next = append(next, it)
		}
	}
	r.items = next
}

// On subscribes fn to an event ("enter-view" or "leave-view") on the given
// items. Unknown ids are skipped. An unrecognized event name returns an
// *UnsupportedEventError and registers nothing.
func (r *Registry) On(event string, fn Handler, ids ...string) (Subscription, error) {
	ev, err := ParseEventType(event)
	if err != nil {
		return Subscription{}, err
	}
	r.nextSub++
	sub := Subscription{reg: r, id: r.nextSub}
	for _, id := range ids {
		if _, ok := r.byID[id]; !ok {
			continue
		}
		k := eventKey{id, ev}
		r.handlers[k] = append(r.handlers[k], subscription{id: sub.id, fn: fn})
		sub.keys = append(sub.keys, k)
	}
	return sub, nil
}

func (r *Registry) unsubscribe(k eventKey, id uint32) {
	list := r.handlers[k]
	for i, s := range list {
		if s.id != id {
			continue
		}
		if len(list) == 1 {
			delete(r.handlers, k)
			return
		}
		next := make([]subscription, 0, len(list)-1)
		next = append(next, list[:i]...)
		r.handlers[k] = append(next, list[i+1:]...)
		return
	}
}

func (r *Registry) emit(it *item, ev EventType) {
	handlers := r.handlers[eventKey{it.id, ev}]
	if len(handlers) == 0 {
		return
	}
	ctx := EventContext{ID: it.id, ItemIndex: it.itemIndex}
	for _, h := range handlers {
		h.fn(ctx)
	}
}

// Destroy removes every tracked item and cancels a pending reset.
func (r *Registry) Destroy() {
	ids := make([]string, 0, len(r.items))
	for _, it := range r.items {
		ids = append(ids, it.id)
	}
	r.Remove(ids...)
	r.reset.Cancel()
}

// Len returns the number of tracked items.
func (r *Registry) Len() int {
	return len(r.items)
}

// IDs returns the tracked ids in insertion order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.items))
	for i, it := range r.items {
		ids[i] = it.id
	}
	return ids
}

// State returns a copy of an item's state.
func (r *Registry) State(id string) (ItemState, bool) {
	it, ok := r.byID[id]
	if !ok {
		return ItemState{}, false
	}
	return it.state.clone(), true
}

// Options returns an item's resolved options.
func (r *Registry) Options(id string) (Options, bool) {
	it, ok := r.byID[id]
	if !ok {
		return Options{}, false
	}
	return it.options, true
}

// Resets returns how many resize resets have run.
func (r *Registry) Resets() int {
	return r.resets
}

// ScheduleReset requests the registry-wide resize reset. Bursts of requests
// collapse into one reset once the resize delay has passed quietly.
func (r *Registry) ScheduleReset() {
	r.reset.Call()
}

// OnReset registers fn to run at the end of every reset, before the forced
// recompute is requested.
func (r *Registry) OnReset(fn func()) {
	r.onReset = append(r.onReset, fn)
}

// resetItems clears everything derived from the old layout, then perturbs the
// scroll position on the next frame so every engine recomputes from scratch
// once the reflow has settled. The offset is decremented by one and restored
// within the same callback; measurements queued by the perturbation run
// after it and see the real offset.
func (r *Registry) resetItems() {
	for _, it := range r.items {
		it.state.Boundings = nil
		it.state.Coordinates = Vec2{}
		it.state.TriggerOffsetComputed = false
		it.state.LerpDone = true
		r.clearClasses(it)
	}
	for _, fn := range r.onReset {
		fn()
	}
	r.resets++
	r.log.Debug().Int("items", len(r.items)).Int("reset", r.resets).Msg("resize reset")

	r.sched.RequestFrame(func() {
		top := r.scrollTop.Get()
		if top > 0 {
			r.scrollTop.Set(top - 1)
		}
		r.scrollTop.Set(top)
	})
}
