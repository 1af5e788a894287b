package parallax

import "time"

// Clock is a frame-driven clock. Time only moves when the host calls Advance,
// and every timer callback runs on the caller's goroutine inside Advance, so
// the engines never observe concurrent callbacks. Tests drive it directly.
type Clock struct {
	now    time.Duration
	timers []*Timer
	seq    uint64
}

// Timer is a pending Clock callback.
type Timer struct {
	clock *Clock
	at    time.Duration
	seq   uint64
	fn    func()
	done  bool
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed clock time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules fn to run once the clock has advanced by d.
// A non-positive d fires on the next Advance call.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{clock: c, at: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.clock.drop(t)
	return true
}

func (c *Clock) drop(t *Timer) {
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, firing due timers in deadline order
// (ties in scheduling order). Timers scheduled by a callback fire within the
// same call if they fall due before the new time.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.drop(next)
		next.done = true
		if next.at > c.now {
			c.now = next.at
		}
		next.fn()
	}
	if target > c.now {
		c.now = target
	}
}

// Pending returns the number of timers that have not fired yet.
func (c *Clock) Pending() int {
	return len(c.timers)
}

func (c *Clock) nextDue(limit time.Duration) *Timer {
	var best *Timer
	for _, t := range c.timers {
		if t.at > limit {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Throttle invokes fn at most once per wait interval. The first call in a
// window runs immediately; calls made while the window is open collapse into
// a single trailing call at the end of the window.
type Throttle struct {
	clock   *Clock
	wait    time.Duration
	fn      func()
	last    time.Duration
	hasLast bool
	timer   *Timer
}

// NewThrottle creates a throttle around fn.
func NewThrottle(clock *Clock, wait time.Duration, fn func()) *Throttle {
	return &Throttle{clock: clock, wait: wait, fn: fn}
}

// Call requests an invocation of fn.
func (t *Throttle) Call() {
	now := t.clock.Now()
	if !t.hasLast || now-t.last >= t.wait {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
		}
		t.last = now
		t.hasLast = true
		t.fn()
		return
	}
	if t.timer != nil {
		return
	}
	t.timer = t.clock.AfterFunc(t.last+t.wait-now, func() {
		t.timer = nil
		t.last = t.clock.Now()
		t.hasLast = true
		t.fn()
	})
}

// Cancel drops any pending trailing call and reopens the window.
func (t *Throttle) Cancel() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.hasLast = false
}

// Debounce delays fn until wait has elapsed since the most recent Call.
type Debounce struct {
	clock *Clock
	wait  time.Duration
	fn    func()
	timer *Timer
}

// NewDebounce creates a debounce around fn.
func NewDebounce(clock *Clock, wait time.Duration, fn func()) *Debounce {
	return &Debounce{clock: clock, wait: wait, fn: fn}
}

// Call (re)starts the quiet period.
func (d *Debounce) Call() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.wait, func() {
		d.timer = nil
		d.fn()
	})
}

// Pending reports whether a call is waiting for the quiet period to end.
func (d *Debounce) Pending() bool {
	return d.timer != nil
}

// Cancel drops the pending call, if any.
func (d *Debounce) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
