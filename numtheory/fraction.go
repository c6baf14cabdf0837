package numtheory

import "fmt"

// Fraction is a rational number Num/Den kept in lowest terms by Reduce.
// Den is always positive for values produced by Reduce.
type Fraction struct {
	Num int
	Den int
}

// Reduce returns num/den in lowest terms with a positive denominator.
// Returns ErrZeroDenominator if den == 0.
// Complexity: O(log min(|num|,|den|)).
func Reduce(num, den int) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("Reduce(%d/%d): %w", num, den, ErrZeroDenominator)
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := GCD(num, den)
	if g == 0 {
		g = 1
	}

	return Fraction{Num: num / g, Den: den / g}, nil
}

// ScaleTo returns the numerator of f expressed over den, i.e. den/f.Den*f.Num.
// den must be a positive multiple of f.Den, otherwise ErrNotDivisible.
func (f Fraction) ScaleTo(den int) (int, error) {
	if f.Den == 0 {
		return 0, ErrZeroDenominator
	}
	if den <= 0 || den%f.Den != 0 {
		return 0, fmt.Errorf("ScaleTo(%d/%d → /%d): %w", f.Num, f.Den, den, ErrNotDivisible)
	}

	return Mul(den/f.Den, f.Num)
}

// String renders the fraction as "num/den".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}
