package parallax

// resizingClass is set on the root element while a resize burst is in
// progress, so transitions can be damped.
const resizingClass = "resizing"

// Viewport publishes the window's inner size once resizing has settled.
// The host forwards raw resize events to HandleResize; the engines watch
// Width and Height and treat any non-zero publication as "resize settled".
type Viewport struct {
	Width  *Value[float64]
	Height *Value[float64]

	window    Window
	root      Element
	end       *Debounce
	dampening bool
	attached  bool
}

// NewViewport creates a viewport sampler over window. root, if non-nil, gets
// the resizing class during resize bursts.
func NewViewport(window Window, root Element, clock *Clock, cfg Config) *Viewport {
	cfg = cfg.withDefaults()
	v := &Viewport{
		Width:  NewValue(0.0),
		Height: NewValue(0.0),
		window: window,
		root:   root,
	}
	v.end = NewDebounce(clock, cfg.ViewportDelay, v.settle)
	return v
}

// Initialize starts accepting resize events and publishes the current size.
func (v *Viewport) Initialize() {
	v.attached = true
	v.collect()
}

// Destroy stops accepting resize events.
func (v *Viewport) Destroy() {
	v.attached = false
	v.end.Cancel()
	if v.dampening {
		v.undamp()
	}
}

// HandleResize is the resize event handler.
func (v *Viewport) HandleResize() {
	if !v.attached {
		return
	}
	if !v.dampening {
		v.dampening = true
		if v.root != nil {
			v.root.AddClass(resizingClass)
		}
	}
	v.end.Call()
}

// Resizing reports whether a resize burst is in progress.
func (v *Viewport) Resizing() bool {
	return v.dampening
}

func (v *Viewport) settle() {
	v.collect()
	v.undamp()
}

func (v *Viewport) undamp() {
	if v.root != nil {
		v.root.RemoveClass(resizingClass)
	}
	v.dampening = false
}

func (v *Viewport) collect() {
	w, h := v.window.InnerSize()
	v.Width.Set(w)
	v.Height.Set(h)
}
