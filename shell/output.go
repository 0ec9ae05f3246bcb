package shell

import (
	"fmt"
	"io"

	"github.com/NickyBoy89/javash/color"
)

// Output is where a command writes. It knows whether its destination is a
// terminal or is piped into another program, and renders colors only for
// terminals
type Output struct {
	w     io.Writer
	piped bool
	color bool
}

// NewOutput wraps a writer, colors are rendered only if the output is not
// piped and colorEnabled is set
func NewOutput(w io.Writer, piped, colorEnabled bool) *Output {
	return &Output{w: w, piped: piped, color: colorEnabled}
}

func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// IsPiped reports whether the output is consumed by another program
func (o *Output) IsPiped() bool {
	return o.piped
}

// RenderColor returns text in the given color, or unchanged if the output
// does not render colors
func (o *Output) RenderColor(c color.Color, text string) string {
	if o.piped || !o.color {
		return text
	}
	return color.Render(c, text)
}

func (o *Output) Print(a ...any) {
	fmt.Fprint(o.w, a...)
}

func (o *Output) Println(a ...any) {
	fmt.Fprintln(o.w, a...)
}

// PrintlnColor writes a single line of colored text
func (o *Output) PrintlnColor(c color.Color, text string) {
	fmt.Fprintln(o.w, o.RenderColor(c, text))
}
