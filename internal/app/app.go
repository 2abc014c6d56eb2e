package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/asdlgo/internal/adt"
	"github.com/vk/asdlgo/internal/ctxlog"
	"github.com/vk/asdlgo/internal/expr"
	"github.com/vk/asdlgo/internal/grammar"
)

// App encapsulates the tool's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// New builds an App with its own isolated logger.
func New(outW io.Writer, errW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
	}
}

// Run loads the configured grammars, assembles a module for each, and
// either describes them or evaluates the configured expression.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	grammars, err := loadGrammars(ctx, cfg.GrammarPath)
	if err != nil {
		return err
	}

	if cfg.Expr != "" && len(grammars) != 1 {
		return fmt.Errorf("expression evaluation requires exactly one grammar, found %d", len(grammars))
	}

	for _, g := range grammars {
		mod, err := adt.Build(g, nil)
		if err != nil {
			return fmt.Errorf("assembling module %q: %w", g.Name, err)
		}
		a.logger.Debug("Module assembled.", "module", mod.Name(), "types", len(mod.Types()))

		if cfg.Expr != "" {
			inst, err := expr.New(mod).Eval(cfg.Expr, "<expr>")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.outW, inst)
			return nil
		}
		a.describe(mod)
	}
	return nil
}

// describe prints the module's types, constructors and checks in
// declaration order.
func (a *App) describe(mod *adt.Module) {
	fmt.Fprintf(a.outW, "module %s\n", mod.Name())
	for _, t := range mod.Types() {
		if t.IsSum() {
			fmt.Fprintf(a.outW, "  sum %s\n", t.Name())
			for _, c := range t.Cases() {
				fmt.Fprintf(a.outW, "    %s(%s)\n", c.Name(), fieldList(c.Fields()))
			}
			continue
		}
		c := mod.Constructor(t.Name())
		fmt.Fprintf(a.outW, "  product %s(%s)\n", t.Name(), fieldList(c.Fields()))
	}
	fmt.Fprintf(a.outW, "  checks: %s\n", strings.Join(mod.Checks().Names(), ", "))
}

func fieldList(fields []grammar.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
