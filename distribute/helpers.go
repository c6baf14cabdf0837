package distribute

import (
	"fmt"

	"github.com/katalvlaran/gridcols/rowpos"
)

// templateFormat is the track list for a given number of equal columns.
const templateFormat = "repeat(%d, minmax(0, 1fr))"

// trackList renders the grid-template-columns value for cols tracks.
func trackList(cols int) string {
	return fmt.Sprintf(templateFormat, cols)
}

// columnEnds evaluates endFn over every row position of n, skipping positions
// for which endFn reports false.
func columnEnds(n int, inclusive bool, endFn func(p rowpos.Position) (int, bool)) []ColumnEnd {
	out := make([]ColumnEnd, 0, rowpos.Count(n, inclusive))
	for p := range rowpos.All(n, inclusive) {
		end, ok := endFn(p)
		if !ok {
			continue
		}
		out = append(out, ColumnEnd{Selector: p.Selector(n), End: end})
	}

	return out
}
