package adt

import (
	"fmt"

	"github.com/vk/asdlgo/internal/grammar"
)

// Constructor builds validated instances of one sum case or one product.
// Validation is data-driven: a single loop over the field specs, checking
// each argument against the registry predicate named by its field.
type Constructor struct {
	name   string
	typ    *Type
	module *Module
	fields []grammar.Field

	// memoization state, nil unless enabled via Module.Memoize
	memo   map[string]*Instance
	keyers []keyFunc
}

// Name returns the constructor name.
func (c *Constructor) Name() string { return c.name }

// Type returns the descriptor the constructor belongs to: the sum marker
// for a sum case, the product's own descriptor for a product.
func (c *Constructor) Type() *Type { return c.typ }

// Fields returns the effective field list in declaration order. For a sum
// case this is the case's own fields followed by the sum's attributes.
func (c *Constructor) Fields() []grammar.Field {
	out := make([]grammar.Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// New validates the arguments field by field, in declaration order, and
// returns a new immutable instance. The first violation aborts the call
// with a ValidationError; on success construction cannot fail.
func (c *Constructor) New(args ...any) (*Instance, error) {
	if len(args) != len(c.fields) {
		return nil, &ArgumentCountError{
			Module:      c.module.name,
			Constructor: c.name,
			Want:        len(c.fields),
			Got:         len(args),
		}
	}
	for i, f := range c.fields {
		if err := c.checkField(i, f, args[i]); err != nil {
			return nil, err
		}
	}
	if c.memo != nil {
		key := c.memoKey(args)
		if inst, ok := c.memo[key]; ok {
			return inst, nil
		}
		inst := newInstance(c, args)
		c.memo[key] = inst
		return inst, nil
	}
	return newInstance(c, args), nil
}

// MustNew is New but panics on error. It exists for tests and tooling
// where the arguments are known to be valid.
func (c *Constructor) MustNew(args ...any) *Instance {
	inst, err := c.New(args...)
	if err != nil {
		panic(err)
	}
	return inst
}

func (c *Constructor) checkField(i int, f grammar.Field, v any) error {
	switch f.Mod {
	case grammar.Optional:
		if v == nil {
			return nil
		}
		return c.checkPlain(i, f.Name, f.Type, v)
	case grammar.Sequence:
		seq, ok := v.([]any)
		if !ok {
			return c.validationError(i, f.Name, "list", v)
		}
		for j, el := range seq {
			if err := c.checkPlain(i, fmt.Sprintf("%s[%d]", f.Name, j), f.Type, el); err != nil {
				return err
			}
		}
		return nil
	default:
		return c.checkPlain(i, f.Name, f.Type, v)
	}
}

func (c *Constructor) checkPlain(i int, fieldName, typeName string, v any) error {
	pred, ok := c.module.checks.Check(typeName)
	if !ok {
		// Grammar well-formedness is not validated up front; an undefined
		// type reference surfaces here, on first use.
		return fmt.Errorf("%s.%s: no check registered for type %q (field %q)",
			c.module.name, c.name, typeName, fieldName)
	}
	if !pred(v) {
		expected := typeName
		if _, declared := c.module.types[typeName]; declared {
			expected = c.module.name + "." + typeName
		}
		return c.validationError(i, fieldName, expected, v)
	}
	return nil
}

func (c *Constructor) validationError(i int, fieldName, expected string, v any) error {
	return &ValidationError{
		Module:      c.module.name,
		Constructor: c.name,
		Index:       i,
		Field:       fieldName,
		Expected:    expected,
		Actual:      describeValue(v),
	}
}

func describeValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case *Instance:
		return v.ctor.module.name + "." + v.ctor.name
	default:
		return fmt.Sprintf("%T", v)
	}
}

// buildConstructors synthesizes every constructor, in declaration order.
// Sum cases are registered both on their marker descriptor and in the
// module namespace; a case name colliding with any existing type or
// constructor name is fatal. Products reuse their own descriptor and are
// registered in the namespace under the type name.
func (m *Module) buildConstructors() error {
	for _, decl := range m.grammar.Decls {
		t := m.types[decl.Name]
		switch def := decl.Def.(type) {
		case *grammar.Sum:
			for _, spec := range def.Constructors {
				if _, taken := m.types[spec.Name]; taken {
					return &NameConflictError{Module: m.name, Name: spec.Name, Scope: "module"}
				}
				if _, taken := m.ctors[spec.Name]; taken {
					return &NameConflictError{Module: m.name, Name: spec.Name, Scope: "module"}
				}
				c := &Constructor{
					name:   spec.Name,
					typ:    t,
					module: m,
					fields: effectiveFields(spec.Fields, def.Attributes),
				}
				t.cases = append(t.cases, c)
				m.ctors[spec.Name] = c
				m.ctorOrder = append(m.ctorOrder, c)
			}
		case *grammar.Product:
			c := &Constructor{
				name:   decl.Name,
				typ:    t,
				module: m,
				fields: effectiveFields(def.Fields, def.Attributes),
			}
			t.ctor = c
			m.ctors[decl.Name] = c
			m.ctorOrder = append(m.ctorOrder, c)
		default:
			return fmt.Errorf("module %q: unexpected kind of type definition for %q", m.name, decl.Name)
		}
	}
	return nil
}

// effectiveFields appends the shared attribute fields after the
// constructor's own fields, preserving each group's declared order.
func effectiveFields(own, attrs []grammar.Field) []grammar.Field {
	out := make([]grammar.Field, 0, len(own)+len(attrs))
	out = append(out, own...)
	out = append(out, attrs...)
	return out
}
