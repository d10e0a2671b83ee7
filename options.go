package raster2d

// RandomSource is the interface a Context uses for callers that want
// reproducible pseudo-randomness in demos or tests (e.g. scattering many
// triangles). The core never calls it itself; it is purely a convenience
// carried alongside the Context for callers that already have one.
type RandomSource interface {
	Intn(n int) int
}

// Clock is the interface a Context uses for callers that want to time their
// own draw calls (benchmarks, animated demos). Like RandomSource, the core
// never calls it itself.
type Clock interface {
	NowMillis() int64
}

// ContextOption configures a Context during creation.
//
// Example:
//
//	dc, err := raster2d.NewContext(800, 600, raster2d.WithRandomSource(rng.New(1)))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	rng   RandomSource
	clock Clock
}

func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithRandomSource attaches a RandomSource to the Context for callers to
// retrieve later via Context.RandomSource.
func WithRandomSource(rng RandomSource) ContextOption {
	return func(o *contextOptions) {
		o.rng = rng
	}
}

// WithClock attaches a Clock to the Context for callers to retrieve later
// via Context.ClockSource.
func WithClock(clock Clock) ContextOption {
	return func(o *contextOptions) {
		o.clock = clock
	}
}
