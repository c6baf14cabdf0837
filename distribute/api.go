// SPDX-License-Identifier: MIT
// Package: gridcols/distribute
//
// api.go: public entry points.
//
// Contract:
//   • Compute validates N, resolves options and dispatches to impl_*.go.
//   • Per-strategy helpers are thin wrappers over Compute.
//   • Utility is the host-facing boundary: raw string in, Rule out, never an
//     error. Invalid input produces an empty Rule so no class is generated.
//   • Determinism: equal inputs and options ⇒ identical Rules.

package distribute

import (
	"fmt"
)

// strategyFunc computes a Rule for a validated N.
type strategyFunc func(n int, cfg config) (Rule, error)

var strategyFuncs = [...]strategyFunc{
	Start:   computeStart,
	Center:  computeCenter,
	End:     computeEnd,
	Between: computeBetween,
	Around:  computeAround,
	Evenly:  computeEvenly,
}

// Compute returns the Rule for strategy s and target count n.
//
// Errors:
//   - ErrUnknownStrategy if s is not declared.
//   - ErrInvalidTarget if n < 1.
//   - ErrTargetTooLarge if n exceeds the configured maximum.
//   - numtheory.ErrOverflow (wrapped) if the sub-column count leaves int.
func Compute(s Strategy, n int, opts ...Option) (Rule, error) {
	if !s.Valid() {
		return Rule{}, fmt.Errorf("Compute: %v: %w", s, ErrUnknownStrategy)
	}
	cfg := newConfig(opts...)
	if n < 1 {
		return Rule{}, fmt.Errorf("%s: n=%d: %w", s, n, ErrInvalidTarget)
	}
	if n > cfg.maxTarget {
		return Rule{}, fmt.Errorf("%s: n=%d > max=%d: %w", s, n, cfg.maxTarget, ErrTargetTooLarge)
	}
	r, err := strategyFuncs[s](n, cfg)
	if err != nil {
		return Rule{}, fmt.Errorf("%s: n=%d: %w", s, n, err)
	}
	r.Strategy, r.Target = s, n

	return r, nil
}

// Utility parses raw with ParseTargetCount and computes the Rule for s.
// Any failure yields the empty Rule.
func Utility(s Strategy, raw string, opts ...Option) Rule {
	n, ok := ParseTargetCount(raw)
	if !ok {
		return Rule{}
	}
	r, err := Compute(s, n, opts...)
	if err != nil {
		return Rule{}
	}

	return r
}

// StartRule computes the start strategy. See Compute.
func StartRule(n int, opts ...Option) (Rule, error) { return Compute(Start, n, opts...) }

// CenterRule computes the center strategy. See Compute.
func CenterRule(n int, opts ...Option) (Rule, error) { return Compute(Center, n, opts...) }

// EndRule computes the end strategy. See Compute.
func EndRule(n int, opts ...Option) (Rule, error) { return Compute(End, n, opts...) }

// BetweenRule computes the between strategy. See Compute.
func BetweenRule(n int, opts ...Option) (Rule, error) { return Compute(Between, n, opts...) }

// AroundRule computes the around strategy. See Compute.
func AroundRule(n int, opts ...Option) (Rule, error) { return Compute(Around, n, opts...) }

// EvenlyRule computes the evenly strategy. See Compute.
func EvenlyRule(n int, opts ...Option) (Rule, error) { return Compute(Evenly, n, opts...) }
