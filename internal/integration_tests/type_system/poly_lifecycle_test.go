package type_system_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/asdlgo/pkg/adt"
)

const polyGrammar = `
	module Poly {
		expr = Var(string name)
		     | Const(float val)
		     | Add(expr lhs, expr rhs)
		     attributes(srcinfo? loc)
		srcinfo = (string input, int offset)
	}
`

func TestPoly_BuildConstructRender(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	mod, err := adt.ADT(polyGrammar, nil)
	require.NoError(t, err)

	// --- Act ---
	v, err := mod.New("Var", "x", nil)
	require.NoError(t, err)
	c, err := mod.New("Const", 32.0, nil)
	require.NoError(t, err)
	sum, err := mod.New("Add", v, c, nil)
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t,
		"Add(lhs=Var(name=x,loc=None),rhs=Const(val=32.0,loc=None),loc=None)",
		sum.String())
	require.Equal(t, sum.String(), sum.String(), "rendering must be idempotent")
}

func TestPoly_ValidationFailureNamesTheField(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	mod, err := adt.ADT(polyGrammar, nil)
	require.NoError(t, err)

	// --- Act ---
	_, err = mod.New("Var", 42, nil)

	// --- Assert ---
	var valErr *adt.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "Poly", valErr.Module)
	require.Equal(t, "Var", valErr.Constructor)
	require.Equal(t, 0, valErr.Index)
	require.Equal(t, "name", valErr.Field)
	require.Equal(t, "string", valErr.Expected)
}

func TestPoly_SumMarkerIsNotConstructible(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	mod, err := adt.ADT(polyGrammar, nil)
	require.NoError(t, err)

	// --- Act ---
	_, err = mod.Type("expr").New()

	// --- Assert ---
	var instErr *adt.InstantiationError
	require.ErrorAs(t, err, &instErr)
}

func TestPoly_NestedInstancesAreModuleScoped(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	modA, err := adt.ADT(polyGrammar, nil)
	require.NoError(t, err)
	modB, err := adt.ADT(polyGrammar, nil)
	require.NoError(t, err)

	foreign, err := modB.New("Var", "x", nil)
	require.NoError(t, err)

	// --- Act ---
	_, err = modA.New("Add", foreign, foreign, nil)

	// --- Assert ---
	var valErr *adt.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "Poly.expr", valErr.Expected)
}

func TestPoly_MemoizedConstructorsShareInstances(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	mod, err := adt.ADT(polyGrammar, nil)
	require.NoError(t, err)
	require.NoError(t, mod.Memoize([]string{"Var"}, nil))

	// --- Act ---
	a, err := mod.New("Var", "x", nil)
	require.NoError(t, err)
	b, err := mod.New("Var", "x", nil)
	require.NoError(t, err)
	other, err := mod.New("Var", "y", nil)
	require.NoError(t, err)

	// --- Assert ---
	require.Same(t, a, b)
	require.NotSame(t, a, other)
}
