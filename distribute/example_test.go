package distribute_test

import (
	"fmt"

	"github.com/katalvlaran/gridcols/distribute"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBetweenRule
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four columns, rows with two or three items spread edge to edge.
//	itemSize = lcm(1,2,3)/3 = 2, so the grid has 8 sub-columns.
//
//	|-|-|-|-     4 items, no override
//	|- |- |-     3 items, ends 3 / 6 / 9
//	|-    |-     2 items, ends 3 / 9
func ExampleBetweenRule() {
	r, err := distribute.BetweenRule(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(r.TemplateColumns)
	fmt.Println("span", r.Span)
	for _, ce := range r.ColumnEnds {
		fmt.Printf("%s → %d\n", ce.Selector, ce.End)
	}
	// Output:
	// repeat(8, minmax(0, 1fr))
	// span 2
	// > *:nth-last-child(2):nth-child(4n + 1) → 3
	// > *:nth-last-child(1):nth-child(4n + 2) → 9
	// > *:nth-last-child(3):nth-child(4n + 1) → 3
	// > *:nth-last-child(2):nth-child(4n + 2) → 6
	// > *:nth-last-child(1):nth-child(4n + 3) → 9
}

// ExampleUtility shows the no-op contract for values that are not integers.
func ExampleUtility() {
	fmt.Println(distribute.Utility(distribute.Center, "abc").IsEmpty())
	fmt.Println(distribute.Utility(distribute.Start, "3").TemplateColumns)
	// Output:
	// true
	// repeat(3, minmax(0, 1fr))
}

// ExamplePadSizes prints the around padding for every fill of a 4-column row.
// itemSize is 6, so the grid has 24 sub-columns; a 1-item row gets 9 on each
// side, a 2-item row 3, a 3-item row 1.
func ExamplePadSizes() {
	itemSize, pads, _ := distribute.PadSizes(distribute.Around, 4)
	fmt.Println(itemSize, pads)
	// Output: 6 [9 3 1]
}
