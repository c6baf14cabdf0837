// Package rowpos enumerates the positions an item can occupy inside an
// under-filled grid row and builds the structural selector that targets it.
//
// A Position (ItemsInRow, IndexInRow) reads "the last row currently holds
// ItemsInRow items and this item is the IndexInRow-th of them". For a target
// column count n every row with 1..n-1 items is under-filled; a full row needs
// no override.
//
// The selector
//
//	> *:nth-last-child(ItemsInRow-IndexInRow):nth-child(n·n + IndexInRow+1)
//
// identifies such an item from its ordinal position among its siblings alone:
// nth-child pins the column it would naturally fall into, nth-last-child pins
// how many siblings follow it, and together they imply the fill of its row.
//
// Order:
//
//	Enumerate and All yield positions row-major, index-ascending:
//	(1,0), (2,0), (2,1), (3,0), ... . The order is deterministic so that
//	generated CSS can be compared against golden files.
//
// Complexity: O(n²) positions, O(1) per position.
package rowpos
