package symbol

// ClassScope represents a single defined class, and the declarations in it
type ClassScope struct {
	// The definition for the class itself
	Class *Definition
	// The kind of type declaration: class, interface, enum or record
	Kind string
	// Every class that is nested within the base class
	Subclasses []*ClassScope
	// Any normal and static fields associated with the class, in declaration order
	Fields []*Definition
	// Methods and constructors, in declaration order
	Methods []*Definition
}

// FindMethod searches through the immediate class's methods to find a specific method
func (cs *ClassScope) FindMethod() Finder {
	cm := classMethodFinder(*cs)
	return &cm
}

// FindField searches through the immediate class's fields to find a specific field
func (cs *ClassScope) FindField() Finder {
	cm := classFieldFinder(*cs)
	return &cm
}

type classMethodFinder ClassScope

func (cm *classMethodFinder) By(criteria func(d *Definition) bool) []*Definition {
	return filter(cm.Methods, criteria)
}

func (cm *classMethodFinder) ByName(name string) []*Definition {
	return cm.By(func(d *Definition) bool {
		return d.Name == name
	})
}

func (cm *classMethodFinder) BySignature(signature string) []*Definition {
	return cm.By(func(d *Definition) bool {
		return d.Signature() == signature
	})
}

type classFieldFinder ClassScope

func (cf *classFieldFinder) By(criteria func(d *Definition) bool) []*Definition {
	return filter(cf.Fields, criteria)
}

func (cf *classFieldFinder) ByName(name string) []*Definition {
	return cf.By(func(d *Definition) bool {
		return d.Name == name
	})
}

// Fields have no parameters, so their signature is their name
func (cf *classFieldFinder) BySignature(signature string) []*Definition {
	return cf.ByName(signature)
}

func filter(definitions []*Definition, criteria func(d *Definition) bool) []*Definition {
	results := []*Definition{}
	for _, definition := range definitions {
		if criteria(definition) {
			results = append(results, definition)
		}
	}
	return results
}
