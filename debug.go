package parallax

import (
	"time"

	"github.com/rs/zerolog"
)

// tickStats holds per-tick counters. Only logged when Config.Debug is set.
type tickStats struct {
	items      int
	measured   int
	skipped    int
	inView     int
	writes     int
	dropped    int
	rearmed    bool
	decideTime time.Duration
}

// logTick writes one tick's stats at trace level.
func logTick(l zerolog.Logger, stats tickStats) {
	l.Trace().
		Int("items", stats.items).
		Int("measured", stats.measured).
		Int("skipped", stats.skipped).
		Int("inView", stats.inView).
		Int("writes", stats.writes).
		Int("dropped", stats.dropped).
		Bool("rearmed", stats.rearmed).
		Dur("decide", stats.decideTime).
		Msg("tick")
}
