// SPDX-License-Identifier: MIT
// Package: gridcols/distribute
//
// impl_spacing.go: between, around and evenly strategies.
//
// Every logical column is split into itemSize sub-columns and every child
// spans itemSize of them. itemSize is chosen so that all gaps are whole
// sub-columns:
//   • between: itemSize = lcm(1..N-1)/(N-1); the k-item row places item i at
//     i*itemSize*(N-1)/(k-1) sub-columns from the left.
//   • around:  the free space of a k-item row, (N-k) columns, is split into
//     2k half-gaps: pad = (N-k)/(2k) columns.
//   • evenly:  the free space is split into k+1 gaps: pad = (N-k)/(k+1).
//   For around/evenly itemSize is the lcm of the reduced pad denominators.
//
// N = 1 has no under-filled rows; itemSize is 1 and no end lines are emitted.

package distribute

import (
	"fmt"

	"github.com/katalvlaran/gridcols/numtheory"
	"github.com/katalvlaran/gridcols/rowpos"
)

// spacedRule assembles the template and span for itemSize sub-columns.
func spacedRule(n, itemSize int, ends []ColumnEnd) (Rule, error) {
	cols, err := numtheory.Mul(itemSize, n)
	if err != nil {
		return Rule{}, fmt.Errorf("itemSize=%d: %w", itemSize, err)
	}

	return Rule{
		TemplateColumns: trackList(cols),
		Span:            itemSize,
		ColumnEnds:      ends,
	}, nil
}

func computeBetween(n int, _ config) (Rule, error) {
	itemSize := 1
	if n > 1 {
		l, err := numtheory.LCMRange(1, n-1)
		if err != nil {
			return Rule{}, err
		}
		itemSize = l / (n - 1)
	}
	span := itemSize * (n - 1)
	ends := columnEnds(n, false, func(p rowpos.Position) (int, bool) {
		if p.ItemsInRow == 1 {
			return 0, false
		}
		left := span / (p.ItemsInRow - 1)

		return left*p.IndexInRow + itemSize + 1, true
	})

	return spacedRule(n, itemSize, ends)
}

// padFractions returns, for k = 1..n-1, the reduced fraction of a column
// that forms one pad unit, with den(j) the unreduced denominator for j = k-1.
func padFractions(n int, den func(j int) int) ([]numtheory.Fraction, error) {
	out := make([]numtheory.Fraction, 0, n-1)
	for j := 0; j < n-1; j++ {
		f, err := numtheory.Reduce(n-1-j, den(j))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// PadSizes returns itemSize and, per row fill k = 1..n-1 (index k-1), the pad
// width in sub-columns for the around or evenly strategy. Every pad is a
// non-negative integer by construction. Other strategies yield
// ErrUnknownStrategy.
func PadSizes(s Strategy, n int) (itemSize int, pads []int, err error) {
	var den func(j int) int
	switch s {
	case Around:
		den = func(j int) int { return (j + 1) * 2 }
	case Evenly:
		den = func(j int) int { return j + 2 }
	default:
		return 0, nil, fmt.Errorf("PadSizes: %v: %w", s, ErrUnknownStrategy)
	}
	if n < 1 {
		return 0, nil, fmt.Errorf("PadSizes: n=%d: %w", n, ErrInvalidTarget)
	}
	if n == 1 {
		return 1, nil, nil
	}
	fracs, err := padFractions(n, den)
	if err != nil {
		return 0, nil, err
	}
	dens := make([]int, len(fracs))
	for i, f := range fracs {
		dens[i] = f.Den
	}
	itemSize, err = numtheory.LCM(dens...)
	if err != nil {
		return 0, nil, err
	}
	pads = make([]int, len(fracs))
	for i, f := range fracs {
		if pads[i], err = f.ScaleTo(itemSize); err != nil {
			return 0, nil, err
		}
	}

	return itemSize, pads, nil
}

func computeAround(n int, _ config) (Rule, error) {
	itemSize, pads, err := PadSizes(Around, n)
	if err != nil {
		return Rule{}, err
	}
	ends := columnEnds(n, false, func(p rowpos.Position) (int, bool) {
		pad := pads[p.ItemsInRow-1]

		return (pad*2+itemSize)*p.IndexInRow + pad + itemSize + 1, true
	})

	return spacedRule(n, itemSize, ends)
}

func computeEvenly(n int, _ config) (Rule, error) {
	itemSize, pads, err := PadSizes(Evenly, n)
	if err != nil {
		return Rule{}, err
	}
	ends := columnEnds(n, false, func(p rowpos.Position) (int, bool) {
		pad := pads[p.ItemsInRow-1]

		return (pad+itemSize)*(p.IndexInRow+1) + 1, true
	})

	return spacedRule(n, itemSize, ends)
}
