// Package grammar defines the format-agnostic model of an ASDL grammar.
//
// A grammar module is an ordered list of type declarations. Each declaration
// is either a sum (a closed set of named constructors plus a shared set of
// attribute fields) or a product (a single record shape). The model carries
// no behavior beyond name lookup; turning it into a runtime type system is
// the job of the adt package, and producing it from source text is the job
// of the asdl and hclgrammar front ends.
package grammar
