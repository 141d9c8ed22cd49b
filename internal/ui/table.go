package ui

import (
	"io"
	"strings"
	"unicode/utf8"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column configures a column in the table.
type Column struct {
	Header       string
	Align        Align // default: AlignLeft
	PaddingRight int   // default: 2 spaces
}

type Table struct {
	columns []Column
	rows    [][]string

	ShowHeader    bool
	ShowSeparator bool
}

func NewTable(columns ...Column) *Table {
	for i := range columns {
		if columns[i].PaddingRight == 0 {
			columns[i].PaddingRight = 2
		}
	}

	return &Table{
		columns:       columns,
		ShowHeader:    true,
		ShowSeparator: true,
	}
}

func (t *Table) AddRow(cells ...string) {
	// normalize row length
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = utf8.RuneCountInString(c.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			pad := widths[i] - utf8.RuneCountInString(cell)
			if t.columns[i].Align == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", t.columns[i].PaddingRight))
			}
		}
		io.WriteString(w, strings.TrimRight(b.String(), " ")+"\n")
	}

	if t.ShowHeader {
		headers := make([]string, len(t.columns))
		for i, c := range t.columns {
			headers[i] = c.Header
		}
		writeRow(headers)

		if t.ShowSeparator {
			seps := make([]string, len(t.columns))
			for i := range t.columns {
				seps[i] = strings.Repeat("-", widths[i])
			}
			writeRow(seps)
		}
	}

	for _, row := range t.rows {
		writeRow(row)
	}
}
