package parallax

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a scroll script.
type scriptStep struct {
	Action   string  `json:"action"`
	Y        float64 `json:"y,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Duration float32 `json:"duration,omitempty"`
	Box      string  `json:"box,omitempty"`
}

// scrollScript is the top-level JSON structure of a scroll script.
type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a scroll script against a Tracker built over a Page,
// one step per frame, for automated runs of a host.
//
// Actions: "scroll" (y, optional frames to spread the move), "scrollBy" (dy),
// "smoothScroll" (y, duration in seconds), "resize" (width, height), "wait"
// (frames), "detach" and "attach" (box name).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scroll script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script scrollScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scrollBy", "smoothScroll", "resize", "wait", "detach", "attach":
		default:
			return nil, fmt.Errorf("parse scroll script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScript attaches a runner to the tracker. Its steps are played from Frame.
func (t *Tracker) SetScript(runner *ScriptRunner) {
	t.runner = runner
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Tracker.Frame.
func (r *ScriptRunner) step(t *Tracker) {
	if r.done {
		return
	}
	// Wait for injected scrolls to drain before advancing.
	if len(t.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scroll":
		if st.Frames > 1 && t.page != nil {
			t.InjectScrollSequence(t.page.ScrollY(), st.Y, st.Frames)
		} else {
			t.InjectScroll(st.Y)
		}
	case "scrollBy":
		if t.page != nil {
			t.InjectScroll(t.page.ScrollY() + st.DY)
		}
	case "smoothScroll":
		t.Scroll.ScrollTo(st.Y, st.Duration, nil)
	case "resize":
		t.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "detach", "attach":
		if t.page == nil {
			break
		}
		if b, ok := t.page.Box(st.Box); ok {
			if st.Action == "detach" {
				b.Detach()
			} else {
				b.Attach()
			}
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(t.injectQueue) == 0 {
		r.done = true
	}
}
