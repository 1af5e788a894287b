package parallax

import (
	"time"

	"github.com/rs/zerolog"
)

// Config holds the timing and naming settings shared by the engines.
// Zero fields fall back to the DefaultConfig values.
type Config struct {
	// Namespace prefixes generated item ids ("<namespace>-<n>").
	Namespace string
	// TickInterval throttles the per-scroll engine ticks.
	TickInterval time.Duration
	// ResizeDelay debounces the registry-wide reset after a resize.
	ResizeDelay time.Duration
	// ScrollEndDelay is the quiet period after which IsScrolling drops.
	ScrollEndDelay time.Duration
	// ViewportDelay debounces raw resize events before the viewport size
	// is published.
	ViewportDelay time.Duration
	// InViewClass is the class toggled on elements that opted in.
	InViewClass string
	// Debug enables per-tick stats at trace level.
	Debug bool
	// Logger receives configuration errors and lifecycle events. The zero
	// value discards everything.
	Logger zerolog.Logger
}

// DefaultConfig returns the default settings: 16ms ticks (one 60 FPS frame),
// 300ms resize reset, 100ms scroll end, 200ms viewport settle.
func DefaultConfig() Config {
	return Config{
		Namespace:      "tween",
		TickInterval:   16 * time.Millisecond,
		ResizeDelay:    300 * time.Millisecond,
		ScrollEndDelay: 100 * time.Millisecond,
		ViewportDelay:  200 * time.Millisecond,
		InViewClass:    "--in-view",
		Logger:         zerolog.Nop(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Namespace == "" {
		c.Namespace = def.Namespace
	}
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
	if c.ResizeDelay <= 0 {
		c.ResizeDelay = def.ResizeDelay
	}
	if c.ScrollEndDelay <= 0 {
		c.ScrollEndDelay = def.ScrollEndDelay
	}
	if c.ViewportDelay <= 0 {
		c.ViewportDelay = def.ViewportDelay
	}
	if c.InViewClass == "" {
		c.InViewClass = def.InViewClass
	}
	return c
}

// Host bundles the collaborators the registry and the engines are wired to.
// The engines never sample scroll or size themselves: they watch the values
// published here.
type Host struct {
	Clock     *Clock
	Scheduler Scheduler
	// ScrollTop is the published vertical scroll offset.
	ScrollTop *Value[float64]
	// Width and Height are the published, already settled, viewport size.
	Width  *Value[float64]
	Height *Value[float64]
}
