package adt

import "github.com/vk/asdlgo/internal/grammar"

// Type is the runtime descriptor for one declared grammar type. Sum
// descriptors are abstract markers: they exist so fields can reference the
// sum before (and independently of) its cases, and they refuse direct
// construction. Product descriptors are concrete and delegate to their
// single constructor.
type Type struct {
	name   string
	module *Module
	sum    bool

	cases []*Constructor // sums only, filled during synthesis
	ctor  *Constructor   // products only, filled during synthesis
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// Module returns the module that owns this descriptor.
func (t *Type) Module() *Module { return t.module }

// IsSum reports whether the type is a sum marker.
func (t *Type) IsSum() bool { return t.sum }

// Cases returns the constructors of a sum in declaration order. It is nil
// for products.
func (t *Type) Cases() []*Constructor {
	out := make([]*Constructor, len(t.cases))
	copy(out, t.cases)
	return out
}

// Case returns the named constructor of a sum, or nil.
func (t *Type) Case(name string) *Constructor {
	for _, c := range t.cases {
		if c.name == name {
			return c
		}
	}
	return nil
}

// New constructs an instance of a product type. Calling New on a sum
// marker always fails with an InstantiationError: sums model a closed
// abstract union and are only built through their named cases.
func (t *Type) New(args ...any) (*Instance, error) {
	if t.sum {
		return nil, &InstantiationError{Module: t.module.name, Type: t.name}
	}
	return t.ctor.New(args...)
}

// buildStubs registers one descriptor per declared type, in declaration
// order, before any constructor is synthesized. This is what lets mutually
// recursive declarations resolve each other by name.
func (m *Module) buildStubs() {
	for _, decl := range m.grammar.Decls {
		_, isSum := decl.Def.(*grammar.Sum)
		t := &Type{name: decl.Name, module: m, sum: isSum}
		m.types[decl.Name] = t
		m.typeOrder = append(m.typeOrder, t)
	}
}
