// SPDX-License-Identifier: MIT
// Package: gridcols/distribute
//
// options.go: functional options for the distribute package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input.
//   • Strategies themselves never panic.
//   • newConfig applies options in order; last one wins.

package distribute

// DefaultMaxTarget bounds N unless overridden with WithMaxTarget.
// center/end emit N(N-1)/2 selectors, so the bound keeps a typo in a theme
// from producing a multi-megabyte rule.
const DefaultMaxTarget = 256

// Option customises strategy computation.
type Option func(*config)

// config is resolved once per call and passed by value.
type config struct {
	centerFormula   CenterFormula
	centerInclusive bool
	maxTarget       int
}

// newConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		centerFormula:   CenterShipped,
		centerInclusive: false,
		maxTarget:       DefaultMaxTarget,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithCenterFormula selects the center end-line offset.
// Panics on a value outside the declared formulas.
func WithCenterFormula(f CenterFormula) Option {
	if f != CenterShipped && f != CenterShifted {
		panic("distribute: WithCenterFormula(unknown)")
	}
	return func(c *config) {
		c.centerFormula = f
	}
}

// WithCenterInclusiveIndex makes center enumerate IndexInRow up to and
// including ItemsInRow. The extra selectors use nth-last-child(0) and match
// nothing in a browser, but the CSS is kept identical to that revision.
func WithCenterInclusiveIndex(inclusive bool) Option {
	return func(c *config) {
		c.centerInclusive = inclusive
	}
}

// WithMaxTarget sets the largest accepted N. Panics if limit < 1.
func WithMaxTarget(limit int) Option {
	if limit < 1 {
		panic("distribute: WithMaxTarget(limit<1)")
	}
	return func(c *config) {
		c.maxTarget = limit
	}
}
