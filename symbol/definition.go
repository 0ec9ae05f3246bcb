package symbol

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/javash/keywords"
)

// Definition represents a single declared member of a class, or the class
// itself
type Definition struct {
	// The declared name
	Name string
	// The declared type of a field, or the return type of a method
	// Void methods and constructors have an empty type
	Type string
	// The access level of the declaration
	Visibility keywords.Visibility
	// Every keyword modifier on the declaration, in source order
	Modifiers []string

	// If the definition is a constructor
	Constructor bool
	// If the object is a method, it has parameters
	Parameters []*Parameter

	// Location of the whole declaration in the source it was parsed from
	StartByte uint32
	EndByte   uint32
}

// Parameter is a single formal parameter of a method or constructor
type Parameter struct {
	Type string
	Name string
	// If the parameter is variadic (Type... name)
	Spread bool
	// The parameter as it was written, with its modifiers and annotations
	Text string
}

// String returns the parameter as written in the source, with runs of
// whitespace collapsed, ex: `final String name`
func (p Parameter) String() string {
	if p.Text == "" {
		if p.Spread {
			return p.Type + "... " + p.Name
		}
		return p.Type + " " + p.Name
	}
	return strings.Join(strings.Fields(p.Text), " ")
}

func (d Definition) String() string {
	if len(d.Parameters) > 0 || d.Constructor {
		return fmt.Sprintf("Name: %s Type: %s Parameters: %v", d.Name, d.Type, d.Parameters)
	}
	return fmt.Sprintf("Name: %s Type: %s", d.Name, d.Type)
}

// ParameterTypes returns a list of the declared types for all the parameters
func (d *Definition) ParameterTypes() []string {
	types := make([]string, len(d.Parameters))
	for ind, param := range d.Parameters {
		types[ind] = param.Type
		if param.Spread {
			types[ind] += "..."
		}
	}
	return types
}

// Signature returns the name of the method along with its parameter types,
// ex: `add(int,int)`
func (d *Definition) Signature() string {
	return d.Name + "(" + strings.Join(d.ParameterTypes(), ",") + ")"
}

// Source returns the text of the whole declaration, given the source it was
// parsed from
func (d *Definition) Source(source []byte) string {
	if int(d.EndByte) > len(source) || d.StartByte > d.EndByte {
		return ""
	}
	return string(source[d.StartByte:d.EndByte])
}
