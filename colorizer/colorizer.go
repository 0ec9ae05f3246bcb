// Package colorizer highlights Java source code, keeping every byte of the
// original text in place so the result prints exactly like the source.
package colorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/NickyBoy89/javash/color"
	"github.com/NickyBoy89/javash/keywords"
	"github.com/NickyBoy89/javash/nodeutil"
	"github.com/NickyBoy89/javash/parsing"
	sitter "github.com/smacker/go-tree-sitter"
)

var nodeColors = map[string]color.Color{
	"comment":       color.Gray,
	"line_comment":  color.Gray,
	"block_comment": color.Gray,

	"string_literal":    color.Green,
	"character_literal": color.Green,
	"text_block":        color.Green,

	"decimal_integer_literal":        color.Cyan,
	"hex_integer_literal":            color.Cyan,
	"octal_integer_literal":          color.Cyan,
	"binary_integer_literal":         color.Cyan,
	"decimal_floating_point_literal": color.Cyan,
	"hex_floating_point_literal":     color.Cyan,

	"marker_annotation": color.Magenta,
}

// Format highlights a whole Java source file
func Format(ctx context.Context, r color.Renderer, source []byte) (string, error) {
	return FormatRange(ctx, r, source, 0, uint32(len(source)))
}

// FormatRange highlights the part of a Java source file between the start
// and end byte offsets. The whole file is parsed, so that a single
// declaration is highlighted the same way as it is within its class
func FormatRange(ctx context.Context, r color.Renderer, source []byte, start, end uint32) (string, error) {
	if end > uint32(len(source)) {
		end = uint32(len(source))
	}
	if start >= end {
		return "", nil
	}

	tree, err := parsing.NewParser().ParseCtx(ctx, nil, source)
	if err != nil {
		return "", fmt.Errorf("colorizing source: %w", err)
	}

	c := &colorizer{renderer: r, source: source, start: start, end: end, pos: start}
	c.walk(tree.RootNode())
	c.plain(end)
	return c.b.String(), nil
}

type colorizer struct {
	renderer   color.Renderer
	source     []byte
	start, end uint32
	// Everything before pos has been written
	pos uint32
	b   strings.Builder
}

func (c *colorizer) walk(node *sitter.Node) {
	if node.EndByte() <= c.start || node.StartByte() >= c.end {
		return
	}
	if col, ok := nodeColors[node.Type()]; ok {
		c.emit(node, col)
		return
	}
	if node.ChildCount() == 0 {
		if c.isKeyword(node) {
			c.emit(node, color.Blue)
		}
		// Any other leaf is written as a gap before the next colored node
		return
	}
	for _, child := range nodeutil.UnnamedChildren(node) {
		c.walk(child)
	}
}

func (c *colorizer) isKeyword(leaf *sitter.Node) bool {
	switch leaf.Type() {
	case "identifier", "type_identifier":
		return false
	}
	return keywords.IsKeyword(leaf.Content(c.source))
}

// plain copies the source up to the given offset without any color
func (c *colorizer) plain(to uint32) {
	if to > c.pos {
		c.b.Write(c.source[c.pos:to])
		c.pos = to
	}
}

func (c *colorizer) emit(node *sitter.Node, col color.Color) {
	start, end := node.StartByte(), node.EndByte()
	if start < c.pos {
		start = c.pos
	}
	if end > c.end {
		end = c.end
	}
	if end <= start {
		return
	}
	c.plain(start)
	c.b.WriteString(c.renderer.RenderColor(col, string(c.source[start:end])))
	c.pos = end
}
