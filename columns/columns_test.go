package columns

import (
	"strings"
	"testing"

	"github.com/NickyBoy89/javash/color"
	"github.com/go-quicktest/qt"
)

func render(t *testing.T, entries []string, attr Attributes) string {
	t.Helper()
	var b strings.Builder
	qt.Assert(t, qt.IsNil(Print(&b, entries, attr)))
	return b.String()
}

func TestPrintFitsWidth(t *testing.T) {
	entries := []string{"aa", "bbbb", "c", "dd", "eee"}
	// Columns are 6 wide, so three fit in 20
	out := render(t, entries, Attributes{Width: 20, MinColumns: 1})
	qt.Assert(t, qt.Equals(out, "aa    bbbb  c\ndd    eee\n"))
}

func TestPrintMinColumns(t *testing.T) {
	entries := []string{"first", "second", "third"}
	out := render(t, entries, Attributes{Width: 4, MinColumns: 2})
	qt.Assert(t, qt.Equals(out, "first   second\nthird\n"))
}

func TestPrintSingleColumn(t *testing.T) {
	entries := []string{"one", "two"}
	out := render(t, entries, Attributes{Width: 0, MinColumns: 1})
	qt.Assert(t, qt.Equals(out, "one\ntwo\n"))
}

func TestPrintEmpty(t *testing.T) {
	qt.Assert(t, qt.Equals(render(t, nil, Piped(120, 1)), ""))
}

func TestPrintKeepsOrder(t *testing.T) {
	entries := []string{"zeta", "alpha", "mid"}
	out := render(t, entries, Piped(120, 1))
	qt.Assert(t, qt.Equals(out, "zeta   alpha  mid\n"))
}

func TestColorStripping(t *testing.T) {
	entries := []string{color.Render(color.Blue, "ab"), "cd"}

	stripped := render(t, entries, Attributes{Width: 80, MinColumns: 1})
	qt.Assert(t, qt.Equals(stripped, "ab  cd\n"))

	colored := render(t, entries, Attributes{Width: 80, MinColumns: 1, Color: true})
	qt.Assert(t, qt.Equals(colored, "\x1b[34mab\x1b[0m  cd\n"))
}

func TestLimitAndTruncate(t *testing.T) {
	entries := []string{"abcdefghij", "b", "c"}
	out := render(t, entries, Attributes{Width: 6, MinColumns: 1, Limit: 2, Truncate: true})
	qt.Assert(t, qt.Equals(out, "abcde…\nb\n"))
}

func TestLayout(t *testing.T) {
	rows, width := Layout([]string{"a", "b", "c", "d"}, Attributes{Width: 6, MinColumns: 1})
	qt.Assert(t, qt.Equals(width, 3))
	qt.Assert(t, qt.DeepEquals(rows, [][]string{{"a", "b"}, {"c", "d"}}))
}
