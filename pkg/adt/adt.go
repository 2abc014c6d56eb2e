// Package adt is the public surface of the ASDL ADT engine. It turns an
// ASDL grammar (text, HCL manifest, or an already-built grammar model)
// into a validated, introspectable runtime type system: one descriptor
// per declared type, one validating constructor per sum case and product,
// a per-module check registry, and canonical text rendering for every
// instance.
//
//	mod, err := adt.ADT(`
//	    module Poly {
//	        expr = Var(string name)
//	             | Const(float val)
//	             | Add(expr lhs, expr rhs)
//	             attributes(srcinfo? loc)
//	        srcinfo = (string input, int offset)
//	    }`, nil)
//	if err != nil { ... }
//	x, _ := mod.New("Var", "x", nil)
//	sum, _ := mod.New("Add", x, x, nil)
//	fmt.Println(sum) // Add(lhs=Var(name=x,loc=None),rhs=Var(name=x,loc=None),loc=None)
package adt

import (
	"context"

	internal "github.com/vk/asdlgo/internal/adt"
	"github.com/vk/asdlgo/internal/asdl"
	"github.com/vk/asdlgo/internal/expr"
	"github.com/vk/asdlgo/internal/grammar"
	"github.com/vk/asdlgo/internal/hclgrammar"
)

// Core engine types.
type (
	Module      = internal.Module
	Type        = internal.Type
	Constructor = internal.Constructor
	Instance    = internal.Instance
	Registry    = internal.Registry
	Predicate   = internal.Predicate
	KeyFunc     = internal.KeyFunc

	NameConflictError  = internal.NameConflictError
	InstantiationError = internal.InstantiationError
	ValidationError    = internal.ValidationError
	ArgumentCountError = internal.ArgumentCountError
)

// Grammar model types, for callers constructing models programmatically.
type (
	Grammar         = grammar.Module
	Decl            = grammar.Decl
	TypeDef         = grammar.TypeDef
	Sum             = grammar.Sum
	Product         = grammar.Product
	ConstructorSpec = grammar.ConstructorSpec
	Field           = grammar.Field
	Modifier        = grammar.Modifier
)

const (
	Plain    = grammar.Plain
	Optional = grammar.Optional
	Sequence = grammar.Sequence
)

// Evaluator evaluates HCL constructor expressions against a module.
type Evaluator = expr.Evaluator

// ADT parses ASDL grammar text and assembles a module from it. extChecks
// supplies predicates for external leaf types that are not one of the
// five built-ins (string, int, float, bool, object).
func ADT(src string, extChecks map[string]Predicate) (*Module, error) {
	g, err := asdl.Parse(src)
	if err != nil {
		return nil, err
	}
	return internal.Build(g, extChecks)
}

// FromHCL parses an HCL grammar manifest and assembles a module from it.
func FromHCL(ctx context.Context, src []byte, filename string, extChecks map[string]Predicate) (*Module, error) {
	g, err := hclgrammar.Parse(ctx, src, filename)
	if err != nil {
		return nil, err
	}
	return internal.Build(g, extChecks)
}

// Build assembles a module from an already-built grammar model.
func Build(g *Grammar, extChecks map[string]Predicate) (*Module, error) {
	return internal.Build(g, extChecks)
}

// NewGrammar builds a grammar model from ordered declarations.
func NewGrammar(name string, decls []Decl) (*Grammar, error) {
	return grammar.NewModule(name, decls)
}

// NewEvaluator exposes the module's constructors as HCL functions.
func NewEvaluator(mod *Module) *Evaluator {
	return expr.New(mod)
}
