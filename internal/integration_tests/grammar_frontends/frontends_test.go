package grammar_frontends_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/asdlgo/pkg/adt"
)

const polyASDL = `
	module Poly {
		expr = Var(string name)
		     | Const(float val)
		     | Add(expr lhs, expr rhs)
		     attributes(srcinfo? loc)
		srcinfo = (string input, int offset)
	}
`

const polyHCL = `
grammar "Poly" {
  sum "expr" {
    case "Var" {
      field "name" { type = string }
    }
    case "Const" {
      field "val" { type = float }
    }
    case "Add" {
      field "lhs" { type = expr }
      field "rhs" { type = expr }
    }
    attributes {
      field "loc" { type = optional(srcinfo) }
    }
  }
  product "srcinfo" {
    field "input"  { type = string }
    field "offset" { type = int }
  }
}
`

func TestFrontends_ProduceEquivalentModules(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	fromASDL, err := adt.ADT(polyASDL, nil)
	require.NoError(t, err)
	fromHCL, err := adt.FromHCL(context.Background(), []byte(polyHCL), "poly.hcl", nil)
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, fromASDL.Name(), fromHCL.Name())
	require.Equal(t, fromASDL.Checks().Names(), fromHCL.Checks().Names())

	asdlTypes := fromASDL.Types()
	hclTypes := fromHCL.Types()
	require.Len(t, hclTypes, len(asdlTypes))
	for i, at := range asdlTypes {
		require.Equal(t, at.Name(), hclTypes[i].Name())
		require.Equal(t, at.IsSum(), hclTypes[i].IsSum())
	}

	a, err := fromASDL.New("Var", "x", nil)
	require.NoError(t, err)
	b, err := fromHCL.New("Var", "x", nil)
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())
}

func TestFrontends_EvaluatorBuildsInstancesFromHCLModule(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	mod, err := adt.FromHCL(context.Background(), []byte(polyHCL), "poly.hcl", nil)
	require.NoError(t, err)
	eval := adt.NewEvaluator(mod)

	// --- Act ---
	inst, err := eval.Eval(`Add(Var("x", null), Const(32.0, null), null)`, "<expr>")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t,
		"Add(lhs=Var(name=x,loc=None),rhs=Const(val=32.0,loc=None),loc=None)",
		inst.String())
}

func TestFrontends_InstancesDoNotCrossModules(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	fromASDL, err := adt.ADT(polyASDL, nil)
	require.NoError(t, err)
	fromHCL, err := adt.FromHCL(context.Background(), []byte(polyHCL), "poly.hcl", nil)
	require.NoError(t, err)

	leaf, err := fromHCL.New("Var", "x", nil)
	require.NoError(t, err)

	// --- Act ---
	_, err = fromASDL.New("Add", leaf, leaf, nil)

	// --- Assert ---
	var valErr *adt.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "Poly.expr", valErr.Expected)
}
