package adt

import (
	"fmt"

	"github.com/vk/asdlgo/internal/grammar"
)

// Module is the finished namespace produced by Build: every declared type,
// every constructor, the check registry, and the grammar model the module
// was built from. A Module is frozen once Build returns.
type Module struct {
	name    string
	grammar *grammar.Module

	types     map[string]*Type
	typeOrder []*Type

	ctors     map[string]*Constructor
	ctorOrder []*Constructor

	checks *Registry
}

// Build assembles a module from a grammar model and optional external
// predicates for leaf types that are not one of the five built-ins. Each
// call produces a fully independent namespace; no state is shared across
// builds.
func Build(g *grammar.Module, ext map[string]Predicate) (*Module, error) {
	m := &Module{
		name:    g.Name,
		grammar: g,
		types:   make(map[string]*Type, len(g.Decls)),
		ctors:   make(map[string]*Constructor),
	}
	m.buildStubs()

	checks, err := newRegistry(m.name, m.typeOrder, ext)
	if err != nil {
		return nil, err
	}
	m.checks = checks

	if err := m.buildConstructors(); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the grammar's module name.
func (m *Module) Name() string { return m.name }

// Grammar returns the model the module was built from, for introspection.
func (m *Module) Grammar() *grammar.Module { return m.grammar }

// Checks returns the module's check registry. Downstream code can use it
// to embed this module's types as external checks of another grammar.
func (m *Module) Checks() *Registry { return m.checks }

// Type returns the descriptor for a declared type name, or nil.
func (m *Module) Type(name string) *Type { return m.types[name] }

// Types returns every declared type in declaration order.
func (m *Module) Types() []*Type {
	out := make([]*Type, len(m.typeOrder))
	copy(out, m.typeOrder)
	return out
}

// Constructor returns the named constructor (a sum case or a product), or
// nil.
func (m *Module) Constructor(name string) *Constructor { return m.ctors[name] }

// Constructors returns every constructor in registration order.
func (m *Module) Constructors() []*Constructor {
	out := make([]*Constructor, len(m.ctorOrder))
	copy(out, m.ctorOrder)
	return out
}

// New is shorthand for Constructor(name).New(args...).
func (m *Module) New(name string, args ...any) (*Instance, error) {
	c := m.ctors[name]
	if c == nil {
		return nil, fmt.Errorf("module %q: no constructor named %q", m.name, name)
	}
	return c.New(args...)
}
