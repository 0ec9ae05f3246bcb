package symbol

import (
	"github.com/NickyBoy89/javash/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

// modifiersOf returns the keyword modifiers of a declaration, skipping over
// any annotations
func modifiersOf(declaration *sitter.Node) []string {
	var modifiers []string
	for _, node := range nodeutil.Children(declaration) {
		if node.Type() != "modifiers" {
			continue
		}
		for _, modifier := range nodeutil.UnnamedChildren(node) {
			if !modifier.IsNamed() {
				modifiers = append(modifiers, modifier.Type())
			}
		}
	}
	return modifiers
}
