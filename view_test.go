package parallax

import "testing"

func TestIsInView(t *testing.T) {
	tests := []struct {
		name    string
		top     float64
		bottom  float64
		offsets [2]float64
		coords  Vec2
		want    bool
	}{
		// Window is [500, 1300].
		{"inside", 600, 700, [2]float64{}, Vec2{}, true},
		{"top exactly on the bottom edge", 1300, 1400, [2]float64{}, Vec2{}, true},
		{"one pixel below", 1301, 1400, [2]float64{}, Vec2{}, false},
		{"one pixel inside the bottom edge", 1299, 1400, [2]float64{}, Vec2{}, true},
		{"bottom exactly on the top edge", 400, 500, [2]float64{}, Vec2{}, true},
		{"one pixel above", 400, 499, [2]float64{}, Vec2{}, false},
		{"entirely above", 100, 200, [2]float64{}, Vec2{}, false},
		{"covers the window", 0, 5000, [2]float64{}, Vec2{}, true},
		{"top offset pushes it out", 1250, 1400, [2]float64{60, 0}, Vec2{}, false},
		{"bottom offset pushes it out", 400, 550, [2]float64{0, 60}, Vec2{}, false},
		{"negative offset pulls it in", 1350, 1400, [2]float64{-100, 0}, Vec2{}, true},
		{"translation moves it in", 1400, 1500, [2]float64{}, Vec2{Y: -200}, true},
		{"translation moves it out", 1200, 1300, [2]float64{}, Vec2{Y: 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewRect(0, tt.top, 100, tt.bottom-tt.top)
			if got := IsInView(500, 800, tt.offsets, b, tt.coords); got != tt.want {
				t.Errorf("IsInView(top=%v, bottom=%v) = %v, want %v", tt.top, tt.bottom, got, tt.want)
			}
		})
	}
}

func TestIsInViewZeroRect(t *testing.T) {
	if IsInView(0, 800, [2]float64{}, Rect{}, Vec2{}) {
		t.Error("zero boundings should never be in view")
	}
}

func TestGetBoundings(t *testing.T) {
	p := NewPage(800, 600)
	p.NewBox("filler", 0, 0, 10, 3000)
	b := p.NewBox("b", 10, 1000, 100, 50)
	p.SetScrollY(400)

	got := GetBoundings(b, p.ScrollY())
	want := NewRect(10, 1000, 100, 50)
	if got != want {
		t.Errorf("GetBoundings = %+v, want %+v", got, want)
	}

	b.Detach()
	if got := GetBoundings(b, p.ScrollY()); !got.IsZero() {
		t.Errorf("detached GetBoundings = %+v, want zero", got)
	}
}
