package parallax

import "fmt"

// UnsupportedEventError is returned by On when the event name is not one of
// the recognized view-state events. It indicates a caller bug.
type UnsupportedEventError struct {
	Event string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("parallax: the event %q is not handled by tracked items", e.Event)
}

// OffsetSyntaxError reports a trigger offset that could not be resolved.
// It is logged and recovered from: the affected side falls back to 0.
type OffsetSyntaxError struct {
	Input  string
	Reason string
}

func (e *OffsetSyntaxError) Error() string {
	if e.Input == "" {
		return "parallax: trigger offset: " + e.Reason
	}
	return fmt.Sprintf("parallax: trigger offset %q: %s", e.Input, e.Reason)
}
