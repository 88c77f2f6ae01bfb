package tapes

import (
	"strconv"
	"strings"
)

// Render draws the tape from the lowest to the highest allocated position.
// Each stack is a column with its top on the upper row; the cursor column is marked with v and ^.
func (t *Tape) Render() string {
	lo, hi := t.Bounds()
	n := hi - lo + 1

	columns := make([][]string, n)
	widths := make([]int, n)
	depth := 0
	for i := range n {
		widths[i] = 1
		for _, v := range t.Stack(lo + i) {
			str := strconv.FormatInt(v, 10)
			columns[i] = append(columns[i], str)
			widths[i] = max(widths[i], len(str))
		}
		depth = max(depth, len(columns[i]))
	}

	offset := 4
	for i := range t.pos - lo {
		offset += widths[i] + 1
	}
	marker := func(c string) string {
		return strings.Repeat(" ", offset+widths[t.pos-lo]-1) + c
	}

	buf := new(strings.Builder)
	buf.WriteString(marker("v"))
	buf.WriteByte('\n')
	for row := depth - 1; row >= 0; row-- {
		buf.WriteString("   ")
		for i, column := range columns {
			buf.WriteByte(' ')
			cell := ""
			if row < len(column) {
				cell = column[row]
			}
			buf.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			buf.WriteString(cell)
		}
		buf.WriteByte('\n')
	}
	// the implicit zeros below every stack
	buf.WriteString("...")
	for _, w := range widths {
		buf.WriteByte(' ')
		buf.WriteString(strings.Repeat(" ", w-1))
		buf.WriteByte('0')
	}
	buf.WriteString(" ...\n")
	buf.WriteString(marker("^"))
	return buf.String()
}
