package parallax

// GetBoundings reads the element's rectangle and shifts its vertical
// coordinates by scrollTop, so the result is in document space and stays
// valid while the page scrolls. It performs a layout read and must only be
// called from a Scheduler.Measure callback.
//
// A detached element reports a zero rectangle; it is returned unshifted so
// that IsInView can tell it apart from a real element.
func GetBoundings(el Element, scrollTop float64) Rect {
	r := el.BoundingClientRect()
	if r.IsZero() {
		return r
	}
	r.Top += scrollTop
	r.Bottom += scrollTop
	r.Y += scrollTop
	return r
}

// IsInView reports whether the element described by boundings intersects the
// window [scrollTop, scrollTop+windowHeight]. offsets move the top edge down
// and the bottom edge up; coordinates is the translation currently applied to
// the element. Pass zero offsets for the unmargined classification.
//
// The tests are strict: an element whose adjusted top sits exactly on the
// window's bottom edge, or whose adjusted bottom sits exactly on its top
// edge, is still in view. Zero boundings (a detached element) are never in
// view.
func IsInView(scrollTop, windowHeight float64, offsets [2]float64, boundings Rect, coordinates Vec2) bool {
	if boundings.IsZero() {
		return false
	}
	top := boundings.Top + offsets[0] + coordinates.Y
	bottom := boundings.Bottom - offsets[1] + coordinates.Y

	below := top-windowHeight > scrollTop
	above := bottom < scrollTop
	return !below && !above
}
