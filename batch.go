package parallax

// Scheduler defers layout reads and style writes to the next frame so that
// reads and writes never interleave. All engine access to an Element goes
// through Measure (reads) or Mutate (writes).
type Scheduler interface {
	// Measure queues a layout read for the next frame.
	Measure(fn func())
	// Mutate queues a style write for the next frame. Writes always run after
	// the reads of the same frame.
	Mutate(fn func())
	// RequestFrame queues fn to run at the start of the next frame.
	RequestFrame(fn func())
}

// Batch is the frame-batched Scheduler. The host calls Flush once per frame
// (before paint). A flush runs, in order: frame callbacks, queued reads,
// queued writes. Writes queued from a read run in the same flush; reads
// queued from a write, and frame callbacks queued during the flush, wait for
// the next one.
type Batch struct {
	frames []func()
	reads  []func()
	writes []func()

	// spare slices reused between flushes
	spareFrames []func()
	spareReads  []func()
	spareWrites []func()

	flushing bool
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Measure implements Scheduler.
func (b *Batch) Measure(fn func()) {
	b.reads = append(b.reads, fn)
}

// Mutate implements Scheduler.
func (b *Batch) Mutate(fn func()) {
	b.writes = append(b.writes, fn)
}

// RequestFrame implements Scheduler.
func (b *Batch) RequestFrame(fn func()) {
	b.frames = append(b.frames, fn)
}

// Pending reports the number of queued frame callbacks, reads and writes.
func (b *Batch) Pending() (frames, reads, writes int) {
	return len(b.frames), len(b.reads), len(b.writes)
}

// Flush runs one frame's worth of queued work. Nested calls from inside a
// callback are ignored.
func (b *Batch) Flush() {
	if b.flushing {
		return
	}
	b.flushing = true
	defer func() { b.flushing = false }()

	frames := b.frames
	b.frames = b.spareFrames[:0]
	for i, fn := range frames {
		fn()
		frames[i] = nil
	}
	b.spareFrames = frames[:0]

	reads := b.reads
	b.reads = b.spareReads[:0]
	for i, fn := range reads {
		fn()
		reads[i] = nil
	}
	b.spareReads = reads[:0]

	writes := b.writes
	b.writes = b.spareWrites[:0]
	for i, fn := range writes {
		fn()
		writes[i] = nil
	}
	b.spareWrites = writes[:0]
}
