package parallax

// InjectScroll queues a synthetic scroll to y, applied on the next frame.
// Injection needs a tracker built over a *Page; otherwise it is a no-op.
func (t *Tracker) InjectScroll(y float64) {
	if t.page == nil {
		return
	}
	t.injectQueue = append(t.injectQueue, y)
}

// InjectScrollSequence queues a scroll from fromY to toY spread linearly over
// frames frames, one position per frame, ending exactly on toY. Minimum
// frames is 1.
func (t *Tracker) InjectScrollSequence(fromY, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		f := float64(i) / float64(frames)
		t.InjectScroll(fromY + (toY-fromY)*f)
	}
}

// InjectResize resizes the page and fires a resize event right away. The
// viewport publishes the new size once the resize has settled.
func (t *Tracker) InjectResize(width, height float64) {
	if t.page == nil {
		return
	}
	t.page.Resize(width, height)
	t.View.HandleResize()
	// Resizing can clamp the scroll offset.
	t.Scroll.HandleScroll()
}

// processInjected pops one queued scroll position and dispatches it as a
// scroll event. Returns true if an event was consumed.
func (t *Tracker) processInjected() bool {
	if len(t.injectQueue) == 0 || t.page == nil {
		return false
	}
	y := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	t.page.SetScrollY(y)
	t.Scroll.HandleScroll()
	return true
}
