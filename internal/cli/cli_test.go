package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/asdlgo/internal/cli"
)

func TestParse_GrammarFlag(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := cli.Parse([]string{"--grammar", "poly.asdl"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "poly.asdl", cfg.GrammarPath)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParse_ShorthandAndPositional(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, _, err := cli.Parse([]string{"-g", "poly.asdl"}, &out)
	require.NoError(t, err)
	require.Equal(t, "poly.asdl", cfg.GrammarPath)

	cfg, _, err = cli.Parse([]string{"poly.asdl"}, &out)
	require.NoError(t, err)
	require.Equal(t, "poly.asdl", cfg.GrammarPath)
}

func TestParse_ExprFlag(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, _, err := cli.Parse([]string{"-g", "poly.asdl", "-e", `Var("x", null)`}, &out)
	require.NoError(t, err)
	require.Equal(t, `Var("x", null)`, cfg.Expr)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	cfg, shouldExit, err := cli.Parse([]string{"--help"}, &out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "GRAMMAR_PATH")
}

func TestParse_InvalidFlagValues(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	_, _, err := cli.Parse([]string{"-g", "poly.asdl", "--log-format", "xml"}, &out)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log-format")

	_, _, err = cli.Parse([]string{"-g", "poly.asdl", "--log-level", "verbose"}, &out)
	require.ErrorAs(t, err, &exitErr)
	require.Contains(t, exitErr.Message, "invalid log-level")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	_, _, err := cli.Parse([]string{"--bogus"}, &out)
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}
