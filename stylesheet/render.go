package stylesheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridcols/distribute"
)

// Sheet is an ordered list of generated classes.
type Sheet struct {
	Entries []Entry
	compact bool
}

// String renders the whole sheet.
func (s Sheet) String() string {
	var sb strings.Builder
	for i, e := range s.Entries {
		if i > 0 && !s.compact {
			sb.WriteByte('\n')
		}
		writeRule(&sb, e.Class, e.Rule, s.compact)
	}

	return sb.String()
}

// WriteTo writes the rendered sheet to w.
func (s Sheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())

	return int64(n), err
}

// RenderRule renders r under the class name class (without the leading dot).
// An empty Rule renders to "".
func RenderRule(class string, r distribute.Rule, compact bool) string {
	var sb strings.Builder
	writeRule(&sb, class, r, compact)

	return sb.String()
}

func writeRule(sb *strings.Builder, class string, r distribute.Rule, compact bool) {
	base := "." + EscapeClass(class)
	for _, b := range r.Blocks() {
		sel := base
		if b.Selector != "" {
			sel += " " + b.Selector
		}
		if compact {
			sb.WriteString(sel + "{")
			for i, d := range b.Declarations {
				if i > 0 {
					sb.WriteByte(';')
				}
				fmt.Fprintf(sb, "%s:%s", d.Property, d.Value)
			}
			sb.WriteString("}\n")

			continue
		}
		sb.WriteString(sel + " {\n")
		for _, d := range b.Declarations {
			fmt.Fprintf(sb, "  %s: %s;\n", d.Property, d.Value)
		}
		sb.WriteString("}\n")
	}
}

// EscapeClass escapes a class name for use in a CSS selector: ASCII
// punctuation other than '-' and '_' is backslash-escaped, control
// characters and a digit starting the identifier (first, or second after a
// leading '-') use hex escapes.
func EscapeClass(name string) string {
	var sb strings.Builder
	for i, r := range name {
		switch {
		case r >= '0' && r <= '9':
			if i == 0 || (i == 1 && name[0] == '-') {
				fmt.Fprintf(&sb, `\%x `, r)

				continue
			}
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-', r == '_', r >= 0x80:
			sb.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, `\%x `, r)
		default:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
