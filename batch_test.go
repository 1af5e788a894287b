package parallax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBatchPhaseOrder(t *testing.T) {
	b := NewBatch()
	var got []string
	b.Mutate(func() { got = append(got, "write1") })
	b.Measure(func() {
		got = append(got, "read1")
		b.Mutate(func() { got = append(got, "write2") })
		b.Measure(func() { got = append(got, "read2") })
	})
	b.RequestFrame(func() { got = append(got, "frame") })

	b.Flush()
	want := []string{"frame", "read1", "write1", "write2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("first flush (-want +got):\n%s", diff)
	}

	frames, reads, writes := b.Pending()
	if frames != 0 || reads != 1 || writes != 0 {
		t.Errorf("Pending = (%d, %d, %d), want (0, 1, 0)", frames, reads, writes)
	}

	b.Flush()
	if got[len(got)-1] != "read2" {
		t.Errorf("second flush ran %q, want read2", got[len(got)-1])
	}
}

func TestBatchFrameQueuesReadInSameFlush(t *testing.T) {
	b := NewBatch()
	ran := false
	b.RequestFrame(func() {
		b.Measure(func() { ran = true })
	})
	b.Flush()
	if !ran {
		t.Error("read queued by a frame callback should run in the same flush")
	}
}

func TestBatchWriteQueuesReadForNextFlush(t *testing.T) {
	b := NewBatch()
	ran := false
	b.Mutate(func() {
		b.Measure(func() { ran = true })
	})
	b.Flush()
	if ran {
		t.Fatal("read queued by a write ran in the same flush")
	}
	b.Flush()
	if !ran {
		t.Error("read did not run on the next flush")
	}
}

func TestBatchNestedFlushIgnored(t *testing.T) {
	b := NewBatch()
	writes := 0
	b.Measure(func() {
		b.Mutate(func() { writes++ })
		b.Flush()
		if writes != 0 {
			t.Error("nested Flush ran writes")
		}
	})
	b.Flush()
	if writes != 1 {
		t.Errorf("writes = %d, want 1", writes)
	}
}
