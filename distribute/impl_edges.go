// SPDX-License-Identifier: MIT
// Package: gridcols/distribute
//
// impl_edges.go: start, center and end strategies.
//
// Geometry:
//   • start:  N tracks, children keep auto placement.
//   • center: 2N half-tracks, every child spans 2; end lines are counted from
//             the right edge (negative) so the row is shifted by whole
//             half-tracks.
//   • end:    N tracks; end line N+1-(k-1)+i pushes a k-item row right.

package distribute

import "github.com/katalvlaran/gridcols/rowpos"

const centerSpan = 2

func computeStart(n int, _ config) (Rule, error) {
	return Rule{TemplateColumns: trackList(n)}, nil
}

func computeCenter(n int, cfg config) (Rule, error) {
	offset := cfg.centerFormula.offset()
	ends := columnEnds(n, cfg.centerInclusive, func(p rowpos.Position) (int, bool) {
		return -n - p.ItemsInRow + offset + p.IndexInRow*centerSpan, true
	})

	return Rule{
		TemplateColumns: trackList(n * centerSpan),
		Span:            centerSpan,
		ColumnEnds:      ends,
	}, nil
}

func computeEnd(n int, _ config) (Rule, error) {
	ends := columnEnds(n, false, func(p rowpos.Position) (int, bool) {
		return n + 1 - (p.ItemsInRow - 1) + p.IndexInRow, true
	})

	return Rule{
		TemplateColumns: trackList(n),
		ColumnEnds:      ends,
	}, nil
}
