package adt

import "fmt"

// NameConflictError reports two names colliding within a single namespace
// during module assembly. It is always fatal to the build.
type NameConflictError struct {
	Module string
	Name   string
	Scope  string // "check" or "module"
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("module %q: name conflict for %q in the %s namespace", e.Module, e.Name, e.Scope)
}

// InstantiationError reports an attempt to construct a sum's abstract
// descriptor directly instead of one of its named cases.
type InstantiationError struct {
	Module string
	Type   string
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("%s.%s should never be instantiated directly; use one of its constructors", e.Module, e.Type)
}

// ValidationError reports a constructor argument failing its field check.
// Validation is fail-fast: the error describes the first violating field
// and no partial instance is produced.
type ValidationError struct {
	Module      string
	Constructor string
	Index       int
	Field       string
	Expected    string // module-qualified when the expected type is declared
	Actual      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: expected arg %d %q to be type %q, got %s",
		e.Module, e.Constructor, e.Index, e.Field, e.Expected, e.Actual)
}

// ArgumentCountError reports a constructor call with the wrong arity.
type ArgumentCountError struct {
	Module      string
	Constructor string
	Want        int
	Got         int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s.%s: expected %d arguments, got %d", e.Module, e.Constructor, e.Want, e.Got)
}
