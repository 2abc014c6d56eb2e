// Package expr exposes a module's generated constructors as HCL functions
// so instances can be written as ordinary expressions:
//
//	Add(Var("x", null), Const(32.0, null), null)
//
// Instances travel through evaluation as cty capsule values, one capsule
// type per evaluator, so values from one module can never leak into
// another module's constructors. Leaf arguments are converted from cty
// values according to the declared field type before the validating
// constructor runs.
package expr
