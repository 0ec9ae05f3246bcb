package color

// Color is a terminal text attribute
type Color int

const (
	None Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray
	Bold
	Italic
)

const reset = "\x1b[0m"

var codes = map[Color]string{
	Black:   "30",
	Red:     "31",
	Green:   "32",
	Yellow:  "33",
	Blue:    "34",
	Magenta: "35",
	Cyan:    "36",
	White:   "37",
	Gray:    "90",
	Bold:    "1",
	Italic:  "3",
}

var names = map[Color]string{
	None:    "none",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
	Gray:    "gray",
	Bold:    "bold",
	Italic:  "italic",
}

func (c Color) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

// Render wraps text in the escape sequence for the color, followed by a reset
func Render(c Color, text string) string {
	code, ok := codes[c]
	if !ok || text == "" {
		return text
	}
	return "\x1b[" + code + "m" + text + reset
}

// Renderer decides how to render a colored segment of text
type Renderer interface {
	RenderColor(c Color, text string) string
}

type plain struct{}

func (plain) RenderColor(_ Color, text string) string { return text }

type ansi struct{}

func (ansi) RenderColor(c Color, text string) string { return Render(c, text) }

var (
	// Plain drops every color
	Plain Renderer = plain{}
	// ANSI renders colors as terminal escape sequences
	ANSI Renderer = ansi{}
)
