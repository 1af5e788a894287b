package parallax

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim is an active smooth scroll.
type scrollAnim struct {
	tween *gween.Tween
}

// Scroller publishes the window's scroll position. The host forwards raw
// scroll events to HandleScroll; the engines watch ScrollTop.
type Scroller struct {
	// ScrollTop is the last sampled vertical scroll offset.
	ScrollTop *Value[float64]
	// IsScrolling is true from the first scroll event of a burst until the
	// scroll-end delay has passed without events.
	IsScrolling *Value[bool]

	window   Window
	end      *Debounce
	anim     *scrollAnim
	attached bool
}

// NewScroller creates a scroller over window. Nothing is published until
// Initialize.
func NewScroller(window Window, clock *Clock, cfg Config) *Scroller {
	cfg = cfg.withDefaults()
	s := &Scroller{
		ScrollTop:   NewValue(0.0),
		IsScrolling: NewValue(false),
		window:      window,
	}
	s.end = NewDebounce(clock, cfg.ScrollEndDelay, func() {
		s.IsScrolling.Set(false)
	})
	return s
}

// Initialize starts accepting scroll events and publishes the current offset.
func (s *Scroller) Initialize() {
	s.attached = true
	s.collect()
}

// Destroy stops accepting scroll events and cancels any smooth scroll.
func (s *Scroller) Destroy() {
	s.attached = false
	s.anim = nil
	s.end.Cancel()
}

// HandleScroll is the scroll event handler.
func (s *Scroller) HandleScroll() {
	if !s.attached {
		return
	}
	s.IsScrolling.Set(true)
	s.collect()
	s.end.Call()
}

func (s *Scroller) collect() {
	s.ScrollTop.Set(s.window.ScrollY())
}

// ScrollTo animates the window's scroll offset to y over duration seconds.
// It needs a ScrollWindow; other windows are left untouched.
func (s *Scroller) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	if _, ok := s.window.(ScrollWindow); !ok {
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	s.anim = &scrollAnim{
		tween: gween.New(float32(s.window.ScrollY()), float32(y), duration, easeFn),
	}
}

// Animating reports whether a smooth scroll is in progress.
func (s *Scroller) Animating() bool {
	return s.anim != nil
}

// Update advances a smooth scroll by dt seconds and publishes the new offset.
func (s *Scroller) Update(dt float32) {
	if s.anim == nil || !s.attached {
		return
	}
	w, ok := s.window.(ScrollWindow)
	if !ok {
		s.anim = nil
		return
	}
	val, done := s.anim.tween.Update(dt)
	w.SetScrollY(float64(val))
	if done {
		s.anim = nil
	}
	s.HandleScroll()
}
