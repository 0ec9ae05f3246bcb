package keywords

import "golang.org/x/exp/slices"

// List from https://www.w3schools.com/java/java_modifiers.asp
var (
	AccessModifiers = []string{"private", "protected", "public"}
)

// Reserved words, contextual keywords and literals that the colorizer treats
// as keywords
var reserved = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"exports", "extends", "false", "final", "finally", "float", "for", "goto",
	"if", "implements", "import", "instanceof", "int", "interface", "long",
	"module", "native", "new", "non-sealed", "null", "open", "opens", "package",
	"permits", "private", "protected", "provides", "public", "record",
	"requires", "return", "sealed", "short", "static", "strictfp", "super",
	"switch", "synchronized", "this", "throw", "throws", "to", "transient",
	"transitive", "true", "try", "uses", "var", "void", "volatile", "while",
	"with", "yield",
}

// IsKeyword reports whether word is a Java keyword or literal
func IsKeyword(word string) bool {
	return slices.Contains(reserved, word)
}

// IsAccessModifier reports whether word is one of public, protected or private
func IsAccessModifier(word string) bool {
	return slices.Contains(AccessModifiers, word)
}
