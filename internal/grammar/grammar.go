package grammar

import "fmt"

// Modifier describes how many values a field carries.
type Modifier int

const (
	// Plain fields require exactly one value of the declared type.
	Plain Modifier = iota
	// Optional fields accept the absence sentinel (nil) or one value.
	Optional
	// Sequence fields carry an ordered list of values of the declared type.
	Sequence
)

// String returns the ASDL suffix for the modifier ("" for plain, "?" for
// optional, "*" for sequence).
func (m Modifier) String() string {
	switch m {
	case Optional:
		return "?"
	case Sequence:
		return "*"
	default:
		return ""
	}
}

// Field is a single constructor argument: the name of the check its value
// must satisfy, the name it is bound under, and its modifier.
type Field struct {
	Type string
	Name string
	Mod  Modifier
}

// String renders the field in ASDL notation, e.g. "expr? loc".
func (f Field) String() string {
	return fmt.Sprintf("%s%s %s", f.Type, f.Mod, f.Name)
}

// ConstructorSpec is one case of a sum, or the sole shape of a product.
type ConstructorSpec struct {
	Name   string
	Fields []Field
}

// TypeDef is the tagged union of the two kinds of type declaration.
type TypeDef interface {
	typeDef()
}

// Sum is a closed set of named constructors. The attribute fields are
// shared by every constructor and appended after its own fields.
type Sum struct {
	Constructors []ConstructorSpec
	Attributes   []Field
}

// Product is a plain record. Attribute fields, when present, are appended
// after the declared field list, mirroring the sum behavior.
type Product struct {
	Fields     []Field
	Attributes []Field
}

func (*Sum) typeDef()     {}
func (*Product) typeDef() {}

// Decl is a single named type declaration.
type Decl struct {
	Name string
	Def  TypeDef
}

// Module is a parsed grammar: a name plus its declarations. Declaration
// order is preserved so that downstream registration is deterministic.
type Module struct {
	Name  string
	Decls []Decl

	byName map[string]TypeDef
}

// NewModule builds a Module from ordered declarations, rejecting duplicate
// type names.
func NewModule(name string, decls []Decl) (*Module, error) {
	byName := make(map[string]TypeDef, len(decls))
	for _, d := range decls {
		if _, ok := byName[d.Name]; ok {
			return nil, fmt.Errorf("grammar %q: type %q declared more than once", name, d.Name)
		}
		byName[d.Name] = d.Def
	}
	return &Module{Name: name, Decls: decls, byName: byName}, nil
}

// Lookup returns the definition of a declared type, if any.
func (m *Module) Lookup(name string) (TypeDef, bool) {
	def, ok := m.byName[name]
	return def, ok
}
