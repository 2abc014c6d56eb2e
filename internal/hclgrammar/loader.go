package hclgrammar

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/asdlgo/internal/ctxlog"
	"github.com/vk/asdlgo/internal/grammar"
)

// Load reads and translates a grammar manifest file.
func Load(ctx context.Context, path string) (*grammar.Module, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing grammar manifest %q: %w", path, diags)
	}
	return translateFile(ctx, file)
}

// Parse translates grammar manifest source held in memory. The filename is
// only used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*grammar.Module, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing grammar manifest %q: %w", filename, diags)
	}
	return translateFile(ctx, file)
}

func translateFile(ctx context.Context, file *hcl.File) (*grammar.Module, error) {
	logger := ctxlog.FromContext(ctx)

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("grammar manifest is not native HCL syntax")
	}

	var root *hclsyntax.Block
	for _, block := range body.Blocks {
		if block.Type != "grammar" {
			return nil, fmt.Errorf("%s: unexpected top-level block %q", block.DefRange().String(), block.Type)
		}
		if root != nil {
			return nil, fmt.Errorf("%s: only one grammar block is allowed per manifest", block.DefRange().String())
		}
		root = block
	}
	if root == nil {
		return nil, fmt.Errorf("grammar manifest declares no grammar block")
	}
	if len(root.Labels) != 1 {
		return nil, fmt.Errorf("%s: grammar block requires exactly one name label", root.DefRange().String())
	}

	name := root.Labels[0]
	logger.Debug("Translating grammar manifest.", "grammar", name)

	// Iterating the syntax body directly keeps declarations in file order,
	// which fixes the module's registration order.
	var decls []grammar.Decl
	for _, block := range root.Body.Blocks {
		switch block.Type {
		case "sum":
			decl, err := translateSum(block)
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)
		case "product":
			decl, err := translateProduct(block)
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)
		default:
			return nil, fmt.Errorf("%s: unexpected block %q in grammar %q", block.DefRange().String(), block.Type, name)
		}
	}

	logger.Debug("Grammar manifest translated.", "grammar", name, "declarations", len(decls))
	return grammar.NewModule(name, decls)
}
