// Package distribute computes CSS grid utilities that lay out the items of an
// under-filled last row according to one of six distribution strategies:
//
//	start    items fill left to right in N equal columns (no overrides)
//	center   the row is centred using 2N half-columns
//	end      the row is pushed against the right edge
//	between  first and last items touch the edges, equal gaps in between
//	around   equal padding on both sides of every item
//	evenly   every gap, outer edges included, is equal
//
// 🚀 What does a strategy produce?
//
//	A Rule: a grid-template-columns value, an optional span applied to every
//	child ("> *"), and an ordered list of (selector, grid-column-end) pairs,
//	one for every row position (see package rowpos). The host stylesheet
//	renders these as nested rules under the utility class.
//
// ✨ Why static geometry instead of justify-content?
//
//	Every item spans a fixed number of sub-columns and is placed by its end
//	line. Offsets derived from the row fill replace justify-content, which
//	does not compose with column spanning. between/around/evenly pick a
//	sub-column factor (itemSize) from a least common multiple so every offset
//	is an integer track line.
//
// ⚙️ Usage:
//
//	r, err := distribute.Compute(distribute.Between, 4)
//	// r.TemplateColumns == "repeat(8, minmax(0, 1fr))", r.Span == 2
//
//	// Raw theme value, invalid input yields an empty Rule instead of an error:
//	r = distribute.Utility(distribute.Center, "abc") // r.IsEmpty() == true
//
// Options:
//
//   - WithCenterFormula:        CenterShipped (default) or CenterShifted end-line offset.
//   - WithCenterInclusiveIndex: also emit IndexInRow == ItemsInRow for center.
//   - WithMaxTarget:            upper bound for N (DefaultMaxTarget).
//
// Errors:
//
//   - ErrInvalidTarget:   N < 1.
//   - ErrTargetTooLarge:  N above the configured maximum.
//   - ErrUnknownStrategy: strategy value or name not recognised.
//   - numtheory.ErrOverflow (wrapped): the sub-column count does not fit in int.
//
// Complexity: O(N²) selectors per rule; O(N log N) for the itemSize LCM.
package distribute
