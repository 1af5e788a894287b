package parallax

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad json", `{`, "parse scroll script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestScriptRun(t *testing.T) {
	tr, page := newTestTracker(t)
	card := page.NewBox("card", 0, 1200, 100, 100)
	id := tr.Detect.Add(card, ItemOptions{})
	var c counter
	c.watch(t, tr.Detect.On, id)
	tr.Initialize()

	runner, err := LoadScript([]byte(`{"steps":[
		{"action":"scroll","y":1000,"frames":4},
		{"action":"wait","frames":3},
		{"action":"detach","box":"card"},
		{"action":"attach","box":"card"},
		{"action":"resize","width":800,"height":500}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	tr.SetScript(runner)
	settle(t, tr)

	if !runner.Done() {
		t.Fatal("script not done")
	}
	if page.ScrollY() != 1000 {
		t.Errorf("ScrollY = %v, want 1000", page.ScrollY())
	}
	if !card.Attached() {
		t.Error("card still detached")
	}
	if w, h := page.InnerSize(); w != 800 || h != 500 {
		t.Errorf("size = %vx%v, want 800x500", w, h)
	}
	if tr.Registry.Resets() != 1 {
		t.Errorf("Resets = %d, want 1", tr.Registry.Resets())
	}
	st, _ := tr.Registry.State(id)
	if !st.IsInView || c.enter != 1 || c.leave != 0 {
		t.Errorf("IsInView = %v, enter = %d, leave = %d", st.IsInView, c.enter, c.leave)
	}
	if !card.HasClass("--in-view") {
		t.Error("class not restored after the reset")
	}
}

func TestScriptSmoothScroll(t *testing.T) {
	tr, page := newTestTracker(t)
	tr.Initialize()
	runner, err := LoadScript([]byte(`{"steps":[{"action":"smoothScroll","y":600,"duration":0.2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	tr.SetScript(runner)
	settle(t, tr)
	if page.ScrollY() != 600 {
		t.Errorf("ScrollY = %v, want 600", page.ScrollY())
	}
	if tr.Scroll.ScrollTop.Get() != 600 {
		t.Errorf("published ScrollTop = %v, want 600", tr.Scroll.ScrollTop.Get())
	}
}

func TestScriptScrollBy(t *testing.T) {
	tr, page := newTestTracker(t)
	tr.Initialize()
	runner, err := LoadScript([]byte(`{"steps":[
		{"action":"scroll","y":300},
		{"action":"scrollBy","dy":-50}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	tr.SetScript(runner)
	settle(t, tr)
	if page.ScrollY() != 250 {
		t.Errorf("ScrollY = %v, want 250", page.ScrollY())
	}
}
