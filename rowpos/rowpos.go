package rowpos

import (
	"fmt"
	"iter"
)

// Position is an item's place within a partially filled row.
type Position struct {
	ItemsInRow int // items present in the row, 1 ≤ ItemsInRow < n
	IndexInRow int // 0-based index of the item within the row
}

// Selector returns the structural child selector matching p for a grid of n
// logical columns.
func (p Position) Selector(n int) string {
	return fmt.Sprintf("> *:nth-last-child(%d):nth-child(%dn + %d)", p.ItemsInRow-p.IndexInRow, n, p.IndexInRow+1)
}

// String renders p as "(items,index)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.ItemsInRow, p.IndexInRow)
}

// lastIndex returns the upper bound of IndexInRow for a row of k items.
func lastIndex(k int, inclusive bool) int {
	if inclusive {
		return k
	}

	return k - 1
}

// All returns a lazy, restartable sequence of every Position for n columns.
// When inclusive is true IndexInRow runs 0..ItemsInRow instead of
// 0..ItemsInRow-1. n < 2 yields nothing.
func All(n int, inclusive bool) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for k := 1; k < n; k++ {
			for i := 0; i <= lastIndex(k, inclusive); i++ {
				if !yield(Position{ItemsInRow: k, IndexInRow: i}) {
					return
				}
			}
		}
	}
}

// Enumerate materialises All(n, inclusive) into a slice.
// Complexity: O(Count(n, inclusive)) time and memory.
func Enumerate(n int, inclusive bool) []Position {
	out := make([]Position, 0, Count(n, inclusive))
	for p := range All(n, inclusive) {
		out = append(out, p)
	}

	return out
}

// Count returns the number of positions All(n, inclusive) yields:
// n(n-1)/2 for the exclusive form, plus n-1 when inclusive.
func Count(n int, inclusive bool) int {
	if n < 2 {
		return 0
	}
	c := n * (n - 1) / 2
	if inclusive {
		c += n - 1
	}

	return c
}
