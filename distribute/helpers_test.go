package distribute_test

import "github.com/katalvlaran/gridcols/rowpos"

// selectorFor returns the selector of item i in a k-item row for n columns.
func selectorFor(n, k, i int) string {
	return rowpos.Position{ItemsInRow: k, IndexInRow: i}.Selector(n)
}

// lastSelector returns the selector of the trailing item of a k-item row.
func lastSelector(n, k int) string {
	return selectorFor(n, k, k-1)
}
