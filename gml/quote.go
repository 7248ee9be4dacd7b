package gml

import (
	"fmt"
	"strings"
)

// Quote renders s as a double-quoted GML string literal. Backslash and
// double quote get a backslash prefix, the usual control characters use
// their short escapes, and any remaining byte below 0x20 becomes an
// uppercase \u escape. Bytes at or above 0x20 pass through unchanged, so
// multi-byte UTF-8 sequences survive intact.
//
// Complexity: O(len(s)).
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			fmt.Fprintf(&b, `\u%04X`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')

	return b.String()
}
