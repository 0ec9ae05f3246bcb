package shell

import (
	"io"

	"github.com/NickyBoy89/javash/columns"
	"github.com/NickyBoy89/javash/config"
)

// Columns prints lists of entries in columns, on behalf of commands. It owns
// the layout the shell uses for interactive output
type Columns struct {
	cfg config.Config
	// width reports the width of the terminal, or zero if unknown
	width func() int
}

// PrintColumns lays out entries with explicit attributes
func (c *Columns) PrintColumns(w io.Writer, entries []string, attr columns.Attributes) error {
	return columns.Print(w, entries, attr)
}

// PrintHostColumns lays out entries the way the shell prints to its terminal
func (c *Columns) PrintHostColumns(w io.Writer, entries []string) error {
	return columns.Print(w, entries, c.Attributes())
}

// Attributes returns the layout for interactive output: the terminal's width,
// falling back to the configured width, with the configured color, limit and
// truncation
func (c *Columns) Attributes() columns.Attributes {
	width := 0
	if c.width != nil {
		width = c.width()
	}
	if width <= 0 {
		width = c.cfg.Width
	}
	return columns.Attributes{
		Width:      width,
		MinColumns: 1,
		Color:      c.cfg.Color,
		Limit:      c.cfg.Ls.Limit,
		Truncate:   c.cfg.Ls.Truncate,
	}
}
