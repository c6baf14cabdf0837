// Package numtheory provides the small integer helpers the grid layout
// strategies are built on: greatest common divisor, least common multiple
// over any number of operands, and reduced fractions.
//
// What:
//
//   - GCD(a, b):        iterative Euclid, never fails.
//   - LCM(xs...):       left fold of x*y/gcd(x,y) with overflow detection.
//   - LCMRange(lo, hi): LCM of every integer in [lo, hi].
//   - Reduce(num, den): fraction in lowest terms.
//   - Fraction.ScaleTo: numerator of the same fraction over a common denominator.
//
// Why:
//
//	The "between", "around" and "evenly" strategies split each logical column
//	into itemSize sub-columns so that every under-fill offset lands on an
//	integer track line. itemSize is a least common multiple of the fraction
//	denominators involved, so these helpers must be exact and must report
//	overflow instead of wrapping silently.
//
// Complexity:
//
//   - GCD:  O(log min(a,b)).
//   - LCM:  O(k·log M) for k operands with magnitude bound M.
//
// Errors:
//
//   - ErrNoOperands:      LCM called without operands (or an empty range).
//   - ErrZeroOperand:     LCM operand is zero; the result is undefined.
//   - ErrOverflow:        a product does not fit in int.
//   - ErrZeroDenominator: Reduce called with den == 0.
//   - ErrNotDivisible:    ScaleTo target is not a multiple of the denominator.
package numtheory
