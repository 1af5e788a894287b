package parallax

// Value is a reactive value. Every Set notifies the watchers, even when the
// value did not change; the engines rely on this to force a recompute by
// re-publishing the current scroll position.
type Value[T any] struct {
	v        T
	watchers []valueWatcher[T]
	nextID   uint32
}

type valueWatcher[T any] struct {
	id uint32
	fn func(T)
}

// WatchHandle removes a watcher registered with Value.Watch.
type WatchHandle struct {
	remove func()
}

// Remove unregisters the watcher. Calling it more than once is a no-op.
func (h WatchHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// NewValue creates a reactive value holding v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (r *Value[T]) Get() T {
	return r.v
}

// Set stores v and notifies watchers in registration order.
func (r *Value[T]) Set(v T) {
	r.v = v
	// Watchers may unwatch while being notified.
	watchers := r.watchers
	for _, w := range watchers {
		w.fn(v)
	}
}

// Watch registers fn to be called with the new value after every Set.
func (r *Value[T]) Watch(fn func(T)) WatchHandle {
	r.nextID++
	id := r.nextID
	r.watchers = append(r.watchers, valueWatcher[T]{id: id, fn: fn})
	return WatchHandle{remove: func() { r.unwatch(id) }}
}

// Watchers returns the number of registered watchers.
func (r *Value[T]) Watchers() int {
	return len(r.watchers)
}

func (r *Value[T]) unwatch(id uint32) {
	for i, w := range r.watchers {
		if w.id == id {
			// Copy so an in-flight Set keeps iterating its own snapshot.
			next := make([]valueWatcher[T], 0, len(r.watchers)-1)
			next = append(next, r.watchers[:i]...)
			r.watchers = append(next, r.watchers[i+1:]...)
			return
		}
	}
}
