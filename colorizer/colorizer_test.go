package colorizer

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/NickyBoy89/javash/color"
	"github.com/go-quicktest/qt"
)

func TestFormatPlainIsVerbatim(t *testing.T) {
	source, err := os.ReadFile("../testfiles/Person.java")
	qt.Assert(t, qt.IsNil(err))

	out, err := Format(context.Background(), color.Plain, source)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, string(source)))
}

func TestFormatColorsKeywordsAndLiterals(t *testing.T) {
	source := []byte("class A {\n    // note\n    String s = \"hi\";\n    int n = 42;\n}\n")

	out, err := Format(context.Background(), color.ANSI, source)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.Equals(color.Strip(out), string(source)))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(out, color.Render(color.Blue, "class")+" A {")))
	qt.Assert(t, qt.StringContains(out, color.Render(color.Gray, "// note")))
	qt.Assert(t, qt.StringContains(out, color.Render(color.Green, `"hi"`)))
	qt.Assert(t, qt.StringContains(out, color.Render(color.Blue, "int")+" n = "+color.Render(color.Cyan, "42")))
	// Type names and identifiers are left alone
	qt.Assert(t, qt.StringContains(out, "String s"))
}

func TestFormatRange(t *testing.T) {
	source := []byte("public class A {\n    private int count;\n}\n")
	start := strings.Index(string(source), "private")
	end := strings.Index(string(source), ";") + 1

	out, err := FormatRange(context.Background(), color.ANSI, source, uint32(start), uint32(end))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, color.Render(color.Blue, "private")+" "+color.Render(color.Blue, "int")+" count;"))

	plain, err := FormatRange(context.Background(), color.Plain, source, uint32(start), uint32(end))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(plain, "private int count;"))
}

func TestFormatEmptyRange(t *testing.T) {
	out, err := FormatRange(context.Background(), color.ANSI, []byte("class A {}"), 5, 5)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, ""))
}
