package stylesheet

import "github.com/katalvlaran/gridcols/distribute"

// Option customises a Generator.
type Option func(*config)

type config struct {
	prefix      string // overrides the theme prefix when prefixSet
	prefixSet   bool
	compact     bool
	distOpts    []distribute.Option // applied after the theme's options
	concurrency int                 // 0 = one goroutine per strategy
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithPrefix sets the class prefix, overriding the theme's. An empty prefix
// clears the theme's prefix.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix, c.prefixSet = prefix, true
	}
}

// WithCompact renders one block per line without indentation.
func WithCompact(compact bool) Option {
	return func(c *config) {
		c.compact = compact
	}
}

// WithDistributeOptions appends options passed to every distribute call.
func WithDistributeOptions(opts ...distribute.Option) Option {
	return func(c *config) {
		c.distOpts = append(c.distOpts, opts...)
	}
}

// WithConcurrency bounds the number of strategies computed at once.
// 0 means unbounded. Panics if n < 0.
func WithConcurrency(n int) Option {
	if n < 0 {
		panic("stylesheet: WithConcurrency(n<0)")
	}
	return func(c *config) {
		c.concurrency = n
	}
}
