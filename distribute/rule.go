package distribute

import (
	"fmt"
	"strconv"
)

// IsEmpty reports whether r carries no declarations at all.
func (r Rule) IsEmpty() bool {
	return r.TemplateColumns == ""
}

// Blocks returns r as ordered CSS blocks: the utility's own block, the
// optional "> *" span block, then one block per column end.
// Complexity: O(len(r.ColumnEnds)).
func (r Rule) Blocks() []Block {
	if r.IsEmpty() {
		return nil
	}
	out := make([]Block, 0, 2+len(r.ColumnEnds))
	out = append(out, Block{
		Declarations: []Declaration{{Property: PropTemplateColumns, Value: r.TemplateColumns}},
	})
	if r.Span > 0 {
		out = append(out, Block{
			Selector:     ChildSelector,
			Declarations: []Declaration{{Property: PropGridColumn, Value: fmt.Sprintf("span %d", r.Span)}},
		})
	}
	for _, ce := range r.ColumnEnds {
		out = append(out, Block{
			Selector:     ce.Selector,
			Declarations: []Declaration{{Property: PropColumnEnd, Value: strconv.Itoa(ce.End)}},
		})
	}

	return out
}

// Declarations returns r as a nested mapping selector → property → value,
// the utility's own declarations under the "" key. An empty Rule yields an
// empty, non-nil map.
func (r Rule) Declarations() map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, b := range r.Blocks() {
		decl, ok := out[b.Selector]
		if !ok {
			decl = make(map[string]string, len(b.Declarations))
			out[b.Selector] = decl
		}
		for _, d := range b.Declarations {
			decl[d.Property] = d.Value
		}
	}

	return out
}

// Lookup returns the end line registered for selector.
func (r Rule) Lookup(selector string) (int, bool) {
	for _, ce := range r.ColumnEnds {
		if ce.Selector == selector {
			return ce.End, true
		}
	}

	return 0, false
}
