package expr

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/asdlgo/internal/adt"
	"github.com/vk/asdlgo/internal/grammar"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Evaluator evaluates HCL expressions against one module's constructors.
type Evaluator struct {
	mod      *adt.Module
	instType cty.Type
	evalCtx  *hcl.EvalContext
}

// New builds an evaluator for the given module. Every constructor of the
// module becomes an HCL function of the same name.
func New(mod *adt.Module) *Evaluator {
	e := &Evaluator{
		mod:      mod,
		instType: cty.Capsule(mod.Name()+".instance", reflect.TypeOf(adt.Instance{})),
	}
	funcs := make(map[string]function.Function)
	for _, c := range mod.Constructors() {
		funcs[c.Name()] = e.constructorFunc(c)
	}
	e.evalCtx = &hcl.EvalContext{Functions: funcs}
	return e
}

// EvalContext returns the evaluation context, for callers embedding the
// constructor functions into a larger HCL evaluation.
func (e *Evaluator) EvalContext() *hcl.EvalContext {
	return e.evalCtx
}

// Eval parses and evaluates one expression, which must produce an
// instance of the evaluator's module.
func (e *Evaluator) Eval(src, filename string) (*adt.Instance, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing expression: %w", diags)
	}
	val, diags := expr.Value(e.evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating expression: %w", diags)
	}
	if !val.Type().Equals(e.instType) {
		return nil, fmt.Errorf("expression does not produce a %s instance (got %s)", e.mod.Name(), val.Type().FriendlyName())
	}
	return val.EncapsulatedValue().(*adt.Instance), nil
}

// constructorFunc wraps one constructor as a cty function. All parameters
// are dynamically typed and nullable; conversion to Go values is driven
// by the declared field specs, and the constructor's own validation runs
// afterwards as usual.
func (e *Evaluator) constructorFunc(c *adt.Constructor) function.Function {
	fields := c.Fields()
	params := make([]function.Parameter, len(fields))
	for i, f := range fields {
		params[i] = function.Parameter{
			Name:             f.Name,
			Type:             cty.DynamicPseudoType,
			AllowNull:        true,
			AllowDynamicType: true,
		}
	}
	return function.New(&function.Spec{
		Params: params,
		Type:   function.StaticReturnType(e.instType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			goArgs := make([]any, len(args))
			for i, arg := range args {
				v, err := e.goValue(fields[i], arg)
				if err != nil {
					return cty.NilVal, fmt.Errorf("%s, arg %d %q: %w", c.Name(), i, fields[i].Name, err)
				}
				goArgs[i] = v
			}
			inst, err := c.New(goArgs...)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.CapsuleVal(e.instType, inst), nil
		},
	})
}

func (e *Evaluator) goValue(f grammar.Field, arg cty.Value) (any, error) {
	if arg.IsNull() {
		return nil, nil
	}
	if f.Mod == grammar.Sequence {
		if !arg.Type().IsTupleType() && !arg.Type().IsListType() && !arg.Type().IsSetType() {
			return nil, fmt.Errorf("expected a list, got %s", arg.Type().FriendlyName())
		}
		out := make([]any, 0, arg.LengthInt())
		for it := arg.ElementIterator(); it.Next(); {
			_, el := it.Element()
			if el.IsNull() {
				out = append(out, nil)
				continue
			}
			v, err := e.leafValue(f.Type, el)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return e.leafValue(f.Type, arg)
}

// leafValue converts one cty value into the Go representation the named
// check expects. Capsule values pass through as instances. A primitive
// converts only when its cty kind matches the declared leaf kind, so that
// a whole number becomes float64 for a float field; mismatched kinds take
// their natural Go form and fail in the constructor's own validation.
func (e *Evaluator) leafValue(typeName string, v cty.Value) (any, error) {
	if v.Type().IsCapsuleType() {
		if !v.Type().Equals(e.instType) {
			return nil, fmt.Errorf("value belongs to a different module (%s)", v.Type().FriendlyName())
		}
		return v.EncapsulatedValue().(*adt.Instance), nil
	}

	switch {
	case typeName == "int" && v.Type() == cty.Number:
		i, acc := v.AsBigFloat().Int64()
		if acc != big.Exact {
			return nil, fmt.Errorf("number %s is not a whole number", v.AsBigFloat().Text('g', -1))
		}
		return int(i), nil
	case typeName == "float" && v.Type() == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, nil
	default:
		return naturalValue(v)
	}
}

func naturalValue(v cty.Value) (any, error) {
	switch {
	case v.Type() == cty.String:
		return v.AsString(), nil
	case v.Type() == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return int(i), nil
		}
		f, _ := bf.Float64()
		return f, nil
	case v.Type() == cty.Bool:
		return v.True(), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %s", v.Type().FriendlyName())
	}
}
