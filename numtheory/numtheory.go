package numtheory

import (
	"fmt"
	"math"
)

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. Signs are ignored; GCD(0, 0) is 0.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of xs, folding left with
// lcm(x, y) = x / gcd(x, y) * y. Dividing before multiplying keeps the
// intermediate no larger than the result.
//
// Errors:
//   - ErrNoOperands if xs is empty.
//   - ErrZeroOperand if any operand is zero.
//   - ErrOverflow if the result does not fit in int.
func LCM(xs ...int) (int, error) {
	if len(xs) == 0 {
		return 0, ErrNoOperands
	}
	acc := abs(xs[0])
	if acc == 0 {
		return 0, fmt.Errorf("LCM: operand 0: %w", ErrZeroOperand)
	}
	for i, x := range xs[1:] {
		x = abs(x)
		if x == 0 {
			return 0, fmt.Errorf("LCM: operand %d: %w", i+1, ErrZeroOperand)
		}
		next, err := Mul(acc/GCD(acc, x), x)
		if err != nil {
			return 0, fmt.Errorf("LCM: operand %d: %w", i+1, err)
		}
		acc = next
	}

	return acc, nil
}

// LCMRange returns LCM(lo, lo+1, ..., hi).
// An empty range (hi < lo) yields ErrNoOperands; a range containing 0 yields
// ErrZeroOperand.
func LCMRange(lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("LCMRange: [%d,%d]: %w", lo, hi, ErrNoOperands)
	}
	xs := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		xs = append(xs, v)
	}

	return LCM(xs...)
}

// Mul returns a*b, or ErrOverflow if the product does not fit in int.
func Mul(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, fmt.Errorf("%d*%d: %w", a, b, ErrOverflow)
	}

	return p, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
