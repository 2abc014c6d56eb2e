package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
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

func writeGrammar(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRun_DescribesGrammarFile(t *testing.T) {
	t.Parallel()
	path := writeGrammar(t, t.TempDir(), "poly.asdl", polyGrammar)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-g", path})
	require.NoError(t, err)

	want := "module Poly\n" +
		"  sum expr\n" +
		"    Var(string name, srcinfo? loc)\n" +
		"    Const(float val, srcinfo? loc)\n" +
		"    Add(expr lhs, expr rhs, srcinfo? loc)\n" +
		"  product srcinfo(string input, int offset)\n" +
		"  checks: string, int, float, bool, object, expr, srcinfo\n"
	require.Equal(t, want, out.String())
}

func TestRun_EvaluatesExpression(t *testing.T) {
	t.Parallel()
	path := writeGrammar(t, t.TempDir(), "poly.asdl", polyGrammar)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-g", path, "-e", `Add(Var("x", null), Const(32.0, null), null)`})
	require.NoError(t, err)
	require.Equal(t,
		"Add(lhs=Var(name=x,loc=None),rhs=Const(val=32.0,loc=None),loc=None)\n",
		out.String())
}

func TestRun_HCLManifest(t *testing.T) {
	t.Parallel()
	manifest := `
grammar "Shapes" {
  product "point" {
    field "x" { type = int }
    field "y" { type = int }
  }
}
`
	path := writeGrammar(t, t.TempDir(), "shapes.hcl", manifest)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-g", path, "-e", `point(3, 4)`})
	require.NoError(t, err)
	require.Equal(t, "point(x=3,y=4)\n", out.String())
}

func TestRun_DirectoryDescribesEveryGrammar(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeGrammar(t, dir, "a.asdl", `module A { t = X(int v) }`)
	writeGrammar(t, dir, "b.asdl", `module B { u = (bool flag) }`)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{dir})
	require.NoError(t, err)
	require.Contains(t, out.String(), "module A\n")
	require.Contains(t, out.String(), "module B\n")
}

func TestRun_ExpressionNeedsSingleGrammar(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeGrammar(t, dir, "a.asdl", `module A { t = X(int v) }`)
	writeGrammar(t, dir, "b.asdl", `module B { u = (bool flag) }`)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-g", dir, "-e", `X(1)`})
	require.Error(t, err)
	require.Contains(t, err.Error(), "requires exactly one grammar")
}

func TestRun_MissingPathReportsError(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{filepath.Join(t.TempDir(), "nope.asdl")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "resolving grammar path")
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, nil)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}
