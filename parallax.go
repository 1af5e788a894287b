package parallax

import "fmt"

// Vec2 is a 2D vector used for translations and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an element rectangle. The field set mirrors a DOMRect: Top/Bottom
// and Left/Right are edges, X/Y the origin. The coordinate system has its
// origin at the top-left, with Y increasing downward.
//
// Rects returned by Element.BoundingClientRect are in viewport space.
// Rects stored as item boundings are in document space (see GetBoundings).
type Rect struct {
	Top, Right, Bottom, Left float64
	Width, Height            float64
	X, Y                     float64
}

// NewRect builds a Rect from an origin and a size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Top:    y,
		Right:  x + width,
		Bottom: y + height,
		Left:   x,
		Width:  width,
		Height: height,
		X:      x,
		Y:      y,
	}
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left <= other.Right &&
		r.Right >= other.Left &&
		r.Top <= other.Bottom &&
		r.Bottom >= other.Top
}

// IsZero reports whether every field of r is zero, which is what detached
// elements report.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Top += dy
	r.Bottom += dy
	r.Y += dy
	r.Left += dx
	r.Right += dx
	r.X += dx
	return r
}

// Element is the style/layout boundary the engines talk to. Reads
// (BoundingClientRect, Style) are only issued from Scheduler.Measure
// callbacks and writes only from Scheduler.Mutate callbacks.
type Element interface {
	// BoundingClientRect returns the element's viewport-space rectangle,
	// including any applied transform. Detached elements return a zero Rect.
	BoundingClientRect() Rect
	// Style returns the current value of an inline style property, or "".
	Style(property string) string
	SetStyle(property, value string)
	RemoveStyle(property string)
	AddClass(name string)
	RemoveClass(name string)
}

// Window exposes the scroll offset and the inner size of the viewport.
type Window interface {
	ScrollY() float64
	InnerSize() (width, height float64)
}

// ScrollWindow is a Window whose scroll offset can be written, used by
// smooth scrolling.
type ScrollWindow interface {
	Window
	SetScrollY(y float64)
}

// EventType identifies a view-state transition.
type EventType uint8

const (
	EventEnterView EventType = iota // fires when an item becomes in view
	EventLeaveView                  // fires when an item stops being in view
)

// String returns the event's registration name.
func (e EventType) String() string {
	switch e {
	case EventEnterView:
		return "enter-view"
	case EventLeaveView:
		return "leave-view"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(e))
	}
}

// ParseEventType maps a registration name ("enter-view", "leave-view") to
// its EventType. Any other name yields an *UnsupportedEventError.
func ParseEventType(name string) (EventType, error) {
	switch name {
	case "enter-view":
		return EventEnterView, nil
	case "leave-view":
		return EventLeaveView, nil
	}
	return 0, &UnsupportedEventError{Event: name}
}

// EventContext is delivered to view-state handlers.
type EventContext struct {
	ID        string
	ItemIndex int
}

// Handler receives enter-view / leave-view notifications.
type Handler func(ctx EventContext)
