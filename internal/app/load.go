package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/asdlgo/internal/asdl"
	"github.com/vk/asdlgo/internal/ctxlog"
	"github.com/vk/asdlgo/internal/fsutil"
	"github.com/vk/asdlgo/internal/grammar"
	"github.com/vk/asdlgo/internal/hclgrammar"
)

// loadGrammars resolves the configured grammar path into one grammar model
// per source file. A directory is searched recursively for .asdl and .hcl
// files.
func loadGrammars(ctx context.Context, path string) ([]*grammar.Module, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resolving grammar path: %w", err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtension(path, ".asdl", ".hcl")
		if err != nil {
			return nil, fmt.Errorf("searching %q for grammar files: %w", path, err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no .asdl or .hcl grammar files found under %q", path)
		}
	}

	grammars := make([]*grammar.Module, 0, len(paths))
	for _, p := range paths {
		g, err := loadGrammar(ctx, p)
		if err != nil {
			return nil, err
		}
		grammars = append(grammars, g)
	}
	return grammars, nil
}

func loadGrammar(ctx context.Context, path string) (*grammar.Module, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading grammar.", "path", path)

	switch filepath.Ext(path) {
	case ".hcl":
		return hclgrammar.Load(ctx, path)
	case ".asdl":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading grammar %q: %w", path, err)
		}
		g, err := asdl.Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("grammar %q: unsupported extension, expected .asdl or .hcl", path)
	}
}
