package numtheory

import "errors"

var (
	// ErrNoOperands indicates LCM received no operands.
	ErrNoOperands = errors.New("numtheory: at least one operand is required")
	// ErrZeroOperand indicates an LCM operand was zero.
	ErrZeroOperand = errors.New("numtheory: lcm is undefined for zero operands")
	// ErrOverflow indicates an intermediate product left the int range.
	ErrOverflow = errors.New("numtheory: integer overflow")
	// ErrZeroDenominator indicates a fraction with a zero denominator.
	ErrZeroDenominator = errors.New("numtheory: zero denominator")
	// ErrNotDivisible indicates a fraction cannot be rescaled to the requested denominator.
	ErrNotDivisible = errors.New("numtheory: denominator does not divide target")
)
