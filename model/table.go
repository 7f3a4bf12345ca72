// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column alignments for table.
const (
	alignCenter = iota
	alignLeft
	alignRight
)

// _colSep separates table columns.
const _colSep = "  "

// table is a small fixed-layout text table. Column widths are measured in
// terminal cells so labels with wide runes (e.g. "α-NH3⁺") stay aligned.
type table struct {
	header []string
	align  []int // per-column alignment; columns past the end are centered
	rows   [][]string
}

// newTable starts a table with the given header and leading column alignments.
func newTable(header []string, align ...int) *table {
	return &table{header: header, align: align}
}

// add appends one row; missing cells render empty.
func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// widths returns the display width of every column.
func (t *table) widths() []int {
	w := make([]int, len(t.header))
	for i, h := range t.header {
		w[i] = runewidth.StringWidth(h)
	}
	for _, r := range t.rows {
		for i := 0; i < len(r) && i < len(w); i++ {
			if n := runewidth.StringWidth(r[i]); n > w[i] {
				w[i] = n
			}
		}
	}

	return w
}

// pad aligns s inside a column of width cells.
func (t *table) pad(col int, s string, width int) string {
	a := alignCenter
	if col < len(t.align) {
		a = t.align[col]
	}
	switch a {
	case alignLeft:
		return runewidth.FillRight(s, width)
	case alignRight:
		return runewidth.FillLeft(s, width)
	}
	left := (width - runewidth.StringWidth(s)) / 2

	return runewidth.FillRight(strings.Repeat(" ", left)+s, width)
}

// line renders one row with trailing blanks trimmed.
func (t *table) line(cells []string, widths []int) string {
	out := make([]string, len(widths))
	for i := range widths {
		var s string
		if i < len(cells) {
			s = cells[i]
		}
		out[i] = t.pad(i, s, widths[i])
	}

	return strings.TrimRight(strings.Join(out, _colSep), " ")
}

// write renders header, rule and rows to w.
func (t *table) write(w io.Writer) error {
	widths := t.widths()
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}

	if _, err := fmt.Fprintln(w, t.line(t.header, widths)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(rule, _colSep)); err != nil {
		return err
	}
	for _, r := range t.rows {
		if _, err := fmt.Fprintln(w, t.line(r, widths)); err != nil {
			return err
		}
	}

	return nil
}
