package parallax

import "testing"

func TestValueNotifiesOnEverySet(t *testing.T) {
	v := NewValue(1.0)
	var got []float64
	v.Watch(func(x float64) { got = append(got, x) })

	v.Set(1)
	v.Set(1)
	v.Set(2)
	if len(got) != 3 {
		t.Fatalf("notifications = %d, want 3 (repeated values still notify)", len(got))
	}
	if v.Get() != 2 {
		t.Errorf("Get = %v, want 2", v.Get())
	}
}

func TestValueWatchRemove(t *testing.T) {
	v := NewValue(0)
	calls := 0
	h := v.Watch(func(int) { calls++ })
	if v.Watchers() != 1 {
		t.Fatalf("Watchers = %d, want 1", v.Watchers())
	}
	h.Remove()
	h.Remove()
	var zero WatchHandle
	zero.Remove()

	v.Set(5)
	if calls != 0 {
		t.Errorf("removed watcher was called")
	}
	if v.Watchers() != 0 {
		t.Errorf("Watchers = %d, want 0", v.Watchers())
	}
}

func TestValueRemoveDuringNotify(t *testing.T) {
	v := NewValue(0)
	var second WatchHandle
	secondCalls := 0
	v.Watch(func(int) { second.Remove() })
	second = v.Watch(func(int) { secondCalls++ })

	v.Set(1)
	if secondCalls != 1 {
		t.Fatalf("in-flight Set should finish its snapshot, calls = %d", secondCalls)
	}
	v.Set(2)
	if secondCalls != 1 {
		t.Errorf("watcher removed during notify was called again")
	}
}
