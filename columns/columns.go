// Package columns lays out lists of short entries in aligned columns, the way
// an interactive listing is printed.
package columns

import (
	"io"
	"strings"

	"github.com/NickyBoy89/javash/color"
)

// Padding is the number of spaces kept between two columns
const Padding = 2

// Attributes controls how a list of entries is laid out
type Attributes struct {
	// Width is the total width of a line
	Width int
	// MinColumns is the least number of columns per line, even if the
	// entries do not fit in the width
	MinColumns int
	// Color keeps the escape sequences of colored entries, otherwise they are
	// stripped before printing
	Color bool
	// Limit is the maximum number of entries printed, zero prints every entry
	Limit int
	// Truncate shortens any entry wider than the line
	Truncate bool
}

// Piped returns the attributes used when output is consumed by another
// program: a fixed width, no color, no limit
func Piped(width, minColumns int) Attributes {
	return Attributes{Width: width, MinColumns: minColumns}
}

// Layout splits the entries into rows, and returns them along with the width
// of a single column. Entries keep their order, filling each row from left
// to right
func Layout(entries []string, attr Attributes) ([][]string, int) {
	if attr.Limit > 0 && len(entries) > attr.Limit {
		entries = entries[:attr.Limit]
	}
	if len(entries) == 0 {
		return nil, 0
	}

	items := make([]string, len(entries))
	widest := 0
	for ind, entry := range entries {
		if !attr.Color {
			entry = color.Strip(entry)
		}
		if attr.Truncate && attr.Width > 0 {
			entry = color.Truncate(entry, attr.Width)
		}
		items[ind] = entry
		if width := color.VisibleWidth(entry); width > widest {
			widest = width
		}
	}

	columnWidth := widest + Padding
	columns := 0
	if attr.Width > 0 {
		columns = attr.Width / columnWidth
	}
	if columns < attr.MinColumns {
		columns = attr.MinColumns
	}
	if columns < 1 {
		columns = 1
	}
	if columns > len(items) {
		columns = len(items)
	}

	rows := make([][]string, 0, (len(items)+columns-1)/columns)
	for start := 0; start < len(items); start += columns {
		end := start + columns
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, items[start:end])
	}
	return rows, columnWidth
}

// Print writes the entries in columns, one row per line. Trailing padding is
// never written
func Print(w io.Writer, entries []string, attr Attributes) error {
	rows, columnWidth := Layout(entries, attr)

	var b strings.Builder
	for _, row := range rows {
		for ind, item := range row {
			b.WriteString(item)
			if ind < len(row)-1 {
				b.WriteString(strings.Repeat(" ", columnWidth-color.VisibleWidth(item)))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
