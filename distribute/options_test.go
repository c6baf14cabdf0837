// Package distribute contains unit tests for the configuration primitives
// (config and Option) to ensure defaults and override order.
package distribute

import (
	"testing"
)

// TestNewConfig_Defaults verifies the documented defaults.
func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	if cfg.centerFormula != CenterShipped {
		t.Errorf("default centerFormula: expected shipped, got %v", cfg.centerFormula)
	}
	if cfg.centerInclusive {
		t.Errorf("default centerInclusive: expected false")
	}
	if cfg.maxTarget != DefaultMaxTarget {
		t.Errorf("default maxTarget: expected %d, got %d", DefaultMaxTarget, cfg.maxTarget)
	}
}

// TestNewConfig_LastWins verifies options apply in order and nil is skipped.
func TestNewConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newConfig(
		WithCenterFormula(CenterShifted),
		nil,
		WithMaxTarget(8),
		WithCenterFormula(CenterShipped),
		WithMaxTarget(16),
	)
	if cfg.centerFormula != CenterShipped {
		t.Errorf("centerFormula: expected shipped, got %v", cfg.centerFormula)
	}
	if cfg.maxTarget != 16 {
		t.Errorf("maxTarget: expected 16, got %d", cfg.maxTarget)
	}
}

// TestOptionPanics verifies option constructors reject nonsense.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("WithMaxTarget(0)", func() { WithMaxTarget(0) })
	mustPanic("WithCenterFormula(9)", func() { WithCenterFormula(CenterFormula(9)) })
}

// TestCenterFormulaOffset pins the constant term of each formula.
func TestCenterFormulaOffset(t *testing.T) {
	t.Parallel()

	if got := CenterShipped.offset(); got != -1 {
		t.Errorf("shipped offset: expected -1, got %d", got)
	}
	if got := CenterShifted.offset(); got != 0 {
		t.Errorf("shifted offset: expected 0, got %d", got)
	}
}
