package symbol

import (
	"errors"
	"strings"

	"github.com/NickyBoy89/javash/keywords"
	"github.com/NickyBoy89/javash/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

// ErrNoTypeDeclaration is returned when a source file contains no class,
// interface, enum or record
var ErrNoTypeDeclaration = errors.New("no type declaration in source")

var typeDeclarations = map[string]string{
	"class_declaration":     "class",
	"interface_declaration": "interface",
	"enum_declaration":      "enum",
	"record_declaration":    "record",
}

// ExtractDefinitions generates a symbol table for a single class file.
func ExtractDefinitions(root *sitter.Node, source []byte) (*FileScope, error) {
	file := &FileScope{Imports: make(map[string]string)}

	for _, node := range nodeutil.Children(root) {
		switch node.Type() {
		case "package_declaration":
			for _, child := range nodeutil.Children(node) {
				if child.Type() == "scoped_identifier" || child.Type() == "identifier" {
					file.Package = child.Content(source)
				}
			}
		case "import_declaration":
			path, name := importPath(node, source)
			if path != "" {
				file.Imports[name] = path
			}
		default:
			if _, isType := typeDeclarations[node.Type()]; !isType {
				continue
			}
			class, err := parseClassScope(node, source)
			if err != nil {
				return nil, err
			}
			if file.BaseClass == nil {
				file.BaseClass = class
			} else {
				file.Others = append(file.Others, class)
			}
		}
	}

	if file.BaseClass == nil {
		return nil, ErrNoTypeDeclaration
	}
	return file, nil
}

// importPath returns the full path of an import, along with the name that it
// is imported as. Wildcard imports are keyed by their path followed by `.*`
func importPath(node *sitter.Node, source []byte) (string, string) {
	var path string
	var wildcard bool
	for _, child := range nodeutil.Children(node) {
		switch child.Type() {
		case "scoped_identifier", "identifier":
			path = child.Content(source)
		case "asterisk":
			wildcard = true
		}
	}
	if path == "" {
		return "", ""
	}
	if wildcard {
		return path + ".*", path + ".*"
	}
	return path, path[strings.LastIndex(path, ".")+1:]
}

func parseClassScope(root *sitter.Node, source []byte) (*ClassScope, error) {
	nameNode := root.ChildByFieldName("name")
	if err := nodeutil.CheckTypeIs(nameNode, "identifier"); err != nil {
		return nil, err
	}

	modifiers := modifiersOf(root)
	scope := &ClassScope{
		Kind: typeDeclarations[root.Type()],
		Class: &Definition{
			Name:       nameNode.Content(source),
			Type:       nameNode.Content(source),
			Visibility: keywords.VisibilityOf(modifiers),
			Modifiers:  modifiers,
			StartByte:  root.StartByte(),
			EndByte:    root.EndByte(),
		},
	}

	// Record components are stored as the private final fields they declare
	if root.Type() == "record_declaration" {
		for _, component := range nodeutil.Children(root.ChildByFieldName("parameters")) {
			param, ok := parseParameter(component, source)
			if !ok {
				continue
			}
			scope.Fields = append(scope.Fields, &Definition{
				Name:       param.Name,
				Type:       param.Type,
				Visibility: keywords.Private,
				Modifiers:  []string{"private", "final"},
				StartByte:  component.StartByte(),
				EndByte:    component.EndByte(),
			})
		}
	}

	if err := scope.parseBody(root.ChildByFieldName("body"), source); err != nil {
		return nil, err
	}
	return scope, nil
}

func (scope *ClassScope) parseBody(body *sitter.Node, source []byte) error {
	for _, node := range nodeutil.Children(body) {
		switch node.Type() {
		case "field_declaration", "constant_declaration":
			scope.Fields = append(scope.Fields, parseFields(node, source)...)
		case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
			method, ok := parseMethod(node, source)
			if !ok {
				log.WithFields(log.Fields{
					"class":  scope.Class.Name,
					"parsed": node.Content(source),
				}).Warn("Skipping method without a name")
				continue
			}
			// Interface methods are implicitly public
			if scope.Kind == "interface" && method.Visibility == keywords.PackagePrivate {
				method.Visibility = keywords.Public
			}
			scope.Methods = append(scope.Methods, method)
		case "enum_body_declarations":
			// Fields and methods of an enum come after its constants
			if err := scope.parseBody(node, source); err != nil {
				return err
			}
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			other, err := parseClassScope(node, source)
			if err != nil {
				return err
			}
			scope.Subclasses = append(scope.Subclasses, other)
		case "ERROR":
			log.WithFields(log.Fields{
				"class":  scope.Class.Name,
				"parsed": node.Content(source),
			}).Warn("Class body parse error")
		}
	}
	return nil
}

// parseFields returns one definition for every variable declared by a single
// field declaration, such as `int a, b;`
func parseFields(node *sitter.Node, source []byte) []*Definition {
	modifiers := modifiersOf(node)
	visibility := keywords.VisibilityOf(modifiers)
	// Interface constants are implicitly public
	if node.Type() == "constant_declaration" && visibility == keywords.PackagePrivate {
		visibility = keywords.Public
	}

	fieldType := node.ChildByFieldName("type")
	if fieldType == nil {
		return nil
	}

	var fields []*Definition
	for _, declarator := range nodeutil.ChildrenOfType(node, "variable_declarator") {
		name := declarator.ChildByFieldName("name")
		if name == nil {
			continue
		}
		typ := fieldType.Content(source)
		// C-style array declarations, ex: `int values[];`
		if dims := declarator.ChildByFieldName("dimensions"); dims != nil {
			typ += dims.Content(source)
		}
		fields = append(fields, &Definition{
			Name:       name.Content(source),
			Type:       typ,
			Visibility: visibility,
			Modifiers:  modifiers,
			StartByte:  node.StartByte(),
			EndByte:    node.EndByte(),
		})
	}
	return fields
}

func parseMethod(node *sitter.Node, source []byte) (*Definition, bool) {
	name := node.ChildByFieldName("name")
	if name == nil {
		return nil, false
	}

	modifiers := modifiersOf(node)
	declaration := &Definition{
		Name:       name.Content(source),
		Visibility: keywords.VisibilityOf(modifiers),
		Modifiers:  modifiers,
		StartByte:  node.StartByte(),
		EndByte:    node.EndByte(),
	}

	if node.Type() == "method_declaration" {
		// A void method has no return type
		if returnType := node.ChildByFieldName("type"); returnType != nil && returnType.Type() != "void_type" {
			declaration.Type = returnType.Content(source)
			if dims := node.ChildByFieldName("dimensions"); dims != nil {
				declaration.Type += dims.Content(source)
			}
		}
	} else {
		// A constructor has no return type either
		declaration.Constructor = true
	}

	for _, parameter := range nodeutil.Children(node.ChildByFieldName("parameters")) {
		if param, ok := parseParameter(parameter, source); ok {
			declaration.Parameters = append(declaration.Parameters, param)
		}
	}

	return declaration, true
}

func parseParameter(node *sitter.Node, source []byte) (*Parameter, bool) {
	switch node.Type() {
	case "formal_parameter":
		typ, name := node.ChildByFieldName("type"), node.ChildByFieldName("name")
		if typ == nil || name == nil {
			return nil, false
		}
		param := &Parameter{
			Type: typ.Content(source),
			Name: name.Content(source),
			Text: node.Content(source),
		}
		if dims := node.ChildByFieldName("dimensions"); dims != nil {
			param.Type += dims.Content(source)
		}
		return param, true
	case "spread_parameter":
		// A spread parameter contains its modifiers, the element type, and
		// a `variable_declarator` for its name
		param := &Parameter{Spread: true, Text: node.Content(source)}
		for _, child := range nodeutil.Children(node) {
			switch child.Type() {
			case "modifiers":
			case "variable_declarator":
				if name := child.ChildByFieldName("name"); name != nil {
					param.Name = name.Content(source)
				}
			default:
				if param.Type == "" {
					param.Type = child.Content(source)
				}
			}
		}
		return param, param.Name != ""
	}
	// Receiver parameters and comments are not real parameters
	return nil, false
}
