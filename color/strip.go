package color

import (
	"regexp"
	"unicode/utf8"
)

var escapeSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Strip removes every color escape sequence from text
func Strip(text string) string {
	return escapeSequence.ReplaceAllString(text, "")
}

// VisibleWidth counts the runes of text that are printed on a terminal,
// ignoring color escape sequences
func VisibleWidth(text string) int {
	return utf8.RuneCountInString(Strip(text))
}

// Truncate shortens text to at most width visible runes, ending it with an
// ellipsis when anything was cut. Escape sequences are kept intact, and a
// reset is appended if the cut happened inside a colored segment
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleWidth(text) <= width {
		return text
	}

	var out []byte
	var colored bool
	visible := 0
	for i := 0; i < len(text); {
		if loc := escapeSequence.FindStringIndex(text[i:]); loc != nil && loc[0] == 0 {
			sequence := text[i : i+loc[1]]
			out = append(out, sequence...)
			colored = sequence != reset
			i += loc[1]
			continue
		}
		if visible == width-1 {
			break
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		out = append(out, text[i:i+size]...)
		visible++
		i += size
	}
	out = append(out, "…"...)
	if colored {
		out = append(out, reset...)
	}
	return string(out)
}
