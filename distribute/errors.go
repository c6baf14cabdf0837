// SPDX-License-Identifier: MIT
// Package: gridcols/distribute
//
// errors.go: sentinel errors for the distribute package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Implementations attach context with "%s: ...: %w" (strategy name first).
//   • Algorithms never panic; option constructors panic on programmer error.
//   • Utility swallows every error into an empty Rule (no-op utility).

package distribute

import "errors"

// ErrInvalidTarget indicates a target column count below one.
var ErrInvalidTarget = errors.New("distribute: target count must be ≥ 1")

// ErrTargetTooLarge indicates a target column count above the configured maximum
// (see WithMaxTarget). Selector count grows quadratically with N.
var ErrTargetTooLarge = errors.New("distribute: target count too large")

// ErrUnknownStrategy indicates a strategy value or name that is not one of the six.
var ErrUnknownStrategy = errors.New("distribute: unknown strategy")

// ErrUnknownFormula indicates a center formula name that is not recognised.
var ErrUnknownFormula = errors.New("distribute: unknown center formula")
