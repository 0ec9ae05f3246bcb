package keywords

// Visibility is the access level of a declaration
type Visibility int

const (
	// PackagePrivate is the visibility of a declaration without an access modifier
	PackagePrivate Visibility = iota
	Private
	Protected
	Public
)

var accessModifiers = map[string]Visibility{
	"public":    Public,
	"protected": Protected,
	"private":   Private,
}

// Scope returns the access modifier that declares the visibility, which is
// empty for package-private declarations
func (v Visibility) Scope() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	}
	return ""
}

func (v Visibility) String() string {
	if v == PackagePrivate {
		return "package"
	}
	return v.Scope()
}

// VisibilityOf picks the visibility out of a list of modifiers, defaulting
// to package-private when no access modifier is present
func VisibilityOf(modifiers []string) Visibility {
	for _, modifier := range modifiers {
		if IsAccessModifier(modifier) {
			return accessModifiers[modifier]
		}
	}
	return PackagePrivate
}
