package parallax

import "slices"

// ItemState is the per-item view state. The engines own it; callers get
// copies through Registry.State.
type ItemState struct {
	// Boundings is the document-space rectangle, nil until measured and
	// again after every resize.
	Boundings *Rect
	// Coordinates is the last translation applied by the parallax engine.
	Coordinates Vec2
	// TriggerOffsetComputed is set once the trigger offsets have been
	// resolved for the current resize epoch.
	TriggerOffsetComputed bool
	// IsInView is the margin-aware classification.
	IsInView bool
	// IsInSpeedView is the zero-margin classification gating transforms.
	IsInSpeedView bool
	// LerpDone is false while the applied translation is still easing
	// toward its target.
	LerpDone bool
	// Classes lists the view-state classes currently applied to the element.
	Classes []string
}

func defaultState() ItemState {
	return ItemState{LerpDone: true}
}

func (s ItemState) clone() ItemState {
	if s.Boundings != nil {
		b := *s.Boundings
		s.Boundings = &b
	}
	if s.Classes != nil {
		s.Classes = append([]string(nil), s.Classes...)
	}
	return s
}

// item is one tracked element.
type item struct {
	id        string
	element   Element
	itemIndex int
	input     ItemOptions
	options   Options
	state     ItemState

	// removed tombstones the item for ticks already iterating a snapshot.
	removed bool
}

// frozen reports whether detection is done for this item in the current
// resize epoch.
func (it *item) frozen() bool {
	return it.options.Once && it.state.IsInView && it.state.Boundings != nil
}

// setInView stores a new classification. Notifications fire only when the
// value changes; the class set is reconciled on every write so a reset that
// stripped classes is repaired by the next tick.
func (r *Registry) setInView(it *item, inView bool) {
	if it.removed {
		return
	}
	if it.state.IsInView != inView {
		it.state.IsInView = inView
		ev := EventLeaveView
		if inView {
			ev = EventEnterView
		}
		r.emit(it, ev)
	}
	r.syncClasses(it)
}

// desiredClasses derives the view-state classes from the item's state.
func (r *Registry) desiredClasses(it *item) []string {
	if it.options.AddClass && it.state.IsInView {
		return []string{r.inViewClass}
	}
	return nil
}

// syncClasses diffs the applied classes against the desired ones and queues
// the element writes.
func (r *Registry) syncClasses(it *item) {
	r.applyClasses(it, r.desiredClasses(it))
}

// clearClasses removes every view-state class from the element.
func (r *Registry) clearClasses(it *item) {
	r.applyClasses(it, nil)
}

func (r *Registry) applyClasses(it *item, next []string) {
	prev := it.state.Classes
	if slices.Equal(prev, next) {
		return
	}
	el := it.element
	for _, c := range prev {
		if !slices.Contains(next, c) {
			name := c
			r.sched.Mutate(func() { el.RemoveClass(name) })
		}
	}
	for _, c := range next {
		if !slices.Contains(prev, c) {
			name := c
			r.sched.Mutate(func() { el.AddClass(name) })
		}
	}
	it.state.Classes = next
}

// resolveTriggerOffsets resolves the item's trigger offsets once per resize
// epoch. Malformed offsets are logged and degrade to a zero margin.
func (r *Registry) resolveTriggerOffsets(it *item, viewportHeight float64) {
	if it.state.TriggerOffsetComputed || it.state.Boundings == nil {
		return
	}
	it.state.TriggerOffsetComputed = true
	offsets, err := ResolveTriggerOffset(it.input.TriggerOffset, *it.state.Boundings, viewportHeight)
	if err != nil {
		r.log.Error().Err(err).Str("id", it.id).Stringer("triggerOffset", it.input.TriggerOffset).
			Msg("invalid trigger offset, using 0")
	}
	it.options.TriggerOffsets = offsets
}
