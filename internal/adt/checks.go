package adt

import "sort"

// Predicate reports whether a value conforms to a named leaf or declared
// type. Predicates never mutate the value they inspect.
type Predicate func(value any) bool

// Registry is the per-module table of named predicates. It is populated
// once during Build and read-only afterwards.
type Registry struct {
	preds map[string]Predicate
	order []string
}

// Check returns the predicate registered under name, if any.
func (r *Registry) Check(name string) (Predicate, bool) {
	p, ok := r.preds[name]
	return p, ok
}

// Has reports whether a predicate is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.preds[name]
	return ok
}

// Names returns every registered check name in registration order:
// built-ins first, then external checks sorted by name, then declared
// types in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// builtinOrder fixes the registration order of the primitive checks.
var builtinOrder = []string{"string", "int", "float", "bool", "object"}

func builtinChecks() map[string]Predicate {
	return map[string]Predicate{
		"string": func(v any) bool { _, ok := v.(string); return ok },
		"int":    func(v any) bool { _, ok := v.(int); return ok },
		"float":  func(v any) bool { _, ok := v.(float64); return ok },
		"bool":   func(v any) bool { _, ok := v.(bool); return ok },
		"object": func(v any) bool { return v != nil },
	}
}

// newRegistry seeds the registry with the built-in predicates, merges in
// the caller's external predicates (which may deliberately shadow a
// built-in), and adds one instance-of predicate per declared type. A
// declared type name colliding with any earlier entry is fatal.
func newRegistry(module string, stubs []*Type, ext map[string]Predicate) (*Registry, error) {
	r := &Registry{preds: builtinChecks(), order: append([]string(nil), builtinOrder...)}

	extNames := make([]string, 0, len(ext))
	for name := range ext {
		extNames = append(extNames, name)
	}
	sort.Strings(extNames)
	for _, name := range extNames {
		if !r.Has(name) {
			r.order = append(r.order, name)
		}
		r.preds[name] = ext[name]
	}

	for _, t := range stubs {
		if r.Has(t.name) {
			return nil, &NameConflictError{Module: module, Name: t.name, Scope: "check"}
		}
		r.preds[t.name] = instanceOf(t)
		r.order = append(r.order, t.name)
	}
	return r, nil
}

// instanceOf returns the nominal predicate for one declared type. Identity
// of the descriptor pointer scopes the check to its own module: a type of
// the same name from another Build never satisfies it.
func instanceOf(t *Type) Predicate {
	return func(v any) bool {
		inst, ok := v.(*Instance)
		return ok && inst != nil && inst.ctor.typ == t
	}
}
