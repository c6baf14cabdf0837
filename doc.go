// Package gridcols generates CSS grid utilities that distribute the items of
// an under-filled last row: push them to the start, center or end, or spread
// them between, around or evenly, the way justify-content does for flexbox.
//
// 🚀 What is gridcols?
//
//	A small, dependency-light toolkit built from pure integer arithmetic:
//		• numtheory  - gcd, lcm and exact fractions with overflow checks
//		• rowpos     - (items-in-row, index-in-row) pairs and their selectors
//		• distribute - the six strategies, one Rule per (strategy, N)
//		• theme      - YAML or HCL themes with values, prefix and revisions
//		• stylesheet - concurrent generation and CSS rendering
//
// ✨ How does it work?
//
//   - Every logical column is split into itemSize sub-columns.
//   - Each child spans itemSize sub-columns.
//   - A row holding k < N items gets explicit end lines picked with
//     :nth-last-child(k-i):nth-child(Nn + i+1).
//
// Under the hood:
//
//	numtheory/  - GCD, LCM, LCMRange, Fraction
//	rowpos/     - Position, All, Selector
//	distribute/ - Strategy, Rule, Compute, Utility, PadSizes
//	theme/      - Theme, LoadFile, LoadYAML, LoadHCL
//	stylesheet/ - Generator, Sheet, RenderRule, EscapeClass
//	cmd/gridcols - command-line generator
//
// Quick start:
//
//	r := distribute.Utility(distribute.Between, "3")
//	fmt.Println(stylesheet.RenderRule("grid-cols-between-3", r, false))
package gridcols
