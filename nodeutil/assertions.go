package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// CheckTypeIs returns an error if the node is missing or is not of the
// expected type
func CheckTypeIs(node *sitter.Node, expectedType string) error {
	if node == nil || node.IsNull() {
		return fmt.Errorf("expected node of type %s, got nothing", expectedType)
	}
	if node.Type() != expectedType {
		return fmt.Errorf("type of node differs from expected: %s, got: %s", expectedType, node.Type())
	}
	return nil
}
