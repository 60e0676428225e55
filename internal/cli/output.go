// Package cli provides CLI infrastructure for cart: colors, tables, argument
// parsing and user notifications.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled is set from terminal detection but can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// DefaultMaxTitleWidth is the default maximum visible width for title columns.
const DefaultMaxTitleWidth = 48

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows       [][]string
	colWidths  []int
	maxWidths  map[int]int  // optional per-column max visible width
	rightAlign map[int]bool // columns padded on the left
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{
		maxWidths:  map[int]int{},
		rightAlign: map[int]bool{},
	}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// SetRightAlign pads a column on the left, for numbers.
func (t *Table) SetRightAlign(col int) {
	t.rightAlign[col] = true
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is never right-padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			pad := strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			switch {
			case t.rightAlign[i]:
				col = pad + col
			case i < len(t.colWidths)-1:
				col += pad
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible characters, ending in "..." when
// there is room for it. ANSI escape codes are kept and a reset is appended
// if any were present.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit := maxWidth
	if maxWidth >= len(ellipsis) {
		limit = maxWidth - len(ellipsis)
	}

	var b strings.Builder
	visible := 0
	inEscape, hasANSI := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasANSI = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		case visible < limit:
			b.WriteRune(r)
			visible++
		}
	}

	if maxWidth >= len(ellipsis) {
		b.WriteString(ellipsis)
	}
	if hasANSI {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the number of runes in s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}
