package symbol

// FileScope represents the scope in a single source file, that can contain one
// or more source classes
type FileScope struct {
	// The package that the file is located in
	Package string
	// Every external type that is imported into the file
	// Formatted as map[ImportedType: full.package.path]
	Imports map[string]string
	// The first top-level type declared in the file
	BaseClass *ClassScope
	// Any other top-level types declared after the base class
	Others []*ClassScope
}
