// Package clock implements a monotonic millisecond timer, the external
// timing source the core treats only as an interface (raster2d.Clock). It
// exists for benchmarks and demos that want to report frame times without
// pulling timing concerns into the drawing hot path.
package clock

import "time"

// Monotonic measures elapsed time from the moment it was created, in whole
// milliseconds. It is not safe for concurrent use.
type Monotonic struct {
	start time.Time
}

// New creates a Monotonic clock starting now.
func New() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// NowMillis returns the number of milliseconds elapsed since the clock was
// created.
func (c *Monotonic) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// Reset restarts the clock at the current time.
func (c *Monotonic) Reset() {
	c.start = time.Now()
}
