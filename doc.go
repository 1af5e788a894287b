// Package parallax tracks elements on a scrolling page, tells callers when
// they enter or leave the view, and moves them at their own speed while the
// page scrolls.
//
// The package never touches a real document. Elements are reached through
// the [Element] interface and the window through [Window]; [Page] and [Box]
// are an in-memory implementation used by the [Ebitengine] host in
// parallax/ebitenhost, by headless runs and by tests.
//
// # Quick start
//
// [Tracker] wires everything together and is driven by the host once per
// frame:
//
//	page := parallax.NewPage(1280, 720)
//	hero := page.NewBox("hero", 0, 900, 1280, 400)
//
//	t := parallax.New(page, page.Root(), parallax.DefaultConfig())
//	t.Initialize()
//
//	id := t.Detect.Add(hero, parallax.ItemOptions{
//		TriggerOffset: parallax.Symmetric(parallax.ParseOffset("10vh")),
//	})
//	t.Detect.On("enter-view", func(ctx parallax.EventContext) {
//		fmt.Println(ctx.ID, "is visible")
//	}, id)
//
//	// every frame, after forwarding scroll/resize events:
//	t.Frame(time.Second / 60)
//
// # Engines
//
// [Detector] classifies items as in or out of view. Notifications are
// edge-triggered: a handler runs once per transition, never for a repeated
// classification. Items that opted in get the in-view class ("--in-view"
// by default) while they are in view.
//
// [Speed] is the parallax engine. Each item in view is translated toward
// the offset that would center it in the viewport, scaled by its speed,
// and eased with its lerp amount. While any item is still easing the
// engine keeps ticking every frame, so motion settles after scrolling stops.
//
// Both engines share one [Registry], which owns ids ("tween-1",
// "tween-2", ...), options, state and handlers, and runs a single debounced
// reset after the viewport is resized.
//
// # Frames
//
// Reads (layout) and writes (styles, classes) never interleave. Engines queue
// reads with [Scheduler.Measure] and writes with [Scheduler.Mutate]; the
// [Batch] runs all reads of a frame before its writes. Time is virtual:
// [Clock] only moves in [Tracker.Frame], and every throttle, debounce and
// timer fires from there.
//
// # Scripts
//
// [LoadScript] reads a JSON scroll script ("scroll", "scrollBy",
// "smoothScroll", "resize", "wait", "detach", "attach") that
// [Tracker.SetScript] plays one step per frame, for automated runs.
//
// # Threading
//
// Everything is single-threaded. All methods must be called from the
// goroutine that calls [Tracker.Frame].
//
// [Ebitengine]: https://ebitengine.org
package parallax
