package hclgrammar

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/asdlgo/internal/grammar"
)

func translateSum(block *hclsyntax.Block) (grammar.Decl, error) {
	if len(block.Labels) != 1 {
		return grammar.Decl{}, fmt.Errorf("%s: sum block requires exactly one name label", block.DefRange().String())
	}
	name := block.Labels[0]

	sum := &grammar.Sum{}
	for _, inner := range block.Body.Blocks {
		switch inner.Type {
		case "case":
			if len(inner.Labels) != 1 {
				return grammar.Decl{}, fmt.Errorf("%s: case block requires exactly one name label", inner.DefRange().String())
			}
			fields, err := translateFields(inner)
			if err != nil {
				return grammar.Decl{}, err
			}
			sum.Constructors = append(sum.Constructors, grammar.ConstructorSpec{
				Name:   inner.Labels[0],
				Fields: fields,
			})
		case "attributes":
			if sum.Attributes != nil {
				return grammar.Decl{}, fmt.Errorf("%s: sum %q declares attributes twice", inner.DefRange().String(), name)
			}
			fields, err := translateFields(inner)
			if err != nil {
				return grammar.Decl{}, err
			}
			sum.Attributes = fields
		default:
			return grammar.Decl{}, fmt.Errorf("%s: unexpected block %q in sum %q", inner.DefRange().String(), inner.Type, name)
		}
	}
	if len(sum.Constructors) == 0 {
		return grammar.Decl{}, fmt.Errorf("%s: sum %q declares no cases", block.DefRange().String(), name)
	}
	return grammar.Decl{Name: name, Def: sum}, nil
}

func translateProduct(block *hclsyntax.Block) (grammar.Decl, error) {
	if len(block.Labels) != 1 {
		return grammar.Decl{}, fmt.Errorf("%s: product block requires exactly one name label", block.DefRange().String())
	}
	name := block.Labels[0]

	prod := &grammar.Product{}
	for _, inner := range block.Body.Blocks {
		switch inner.Type {
		case "field":
			field, err := translateField(inner)
			if err != nil {
				return grammar.Decl{}, err
			}
			prod.Fields = append(prod.Fields, field)
		case "attributes":
			if prod.Attributes != nil {
				return grammar.Decl{}, fmt.Errorf("%s: product %q declares attributes twice", inner.DefRange().String(), name)
			}
			fields, err := translateFields(inner)
			if err != nil {
				return grammar.Decl{}, err
			}
			prod.Attributes = fields
		default:
			return grammar.Decl{}, fmt.Errorf("%s: unexpected block %q in product %q", inner.DefRange().String(), inner.Type, name)
		}
	}
	return grammar.Decl{Name: name, Def: prod}, nil
}

// translateFields collects the field blocks of a case, attributes, or
// product body, in file order.
func translateFields(block *hclsyntax.Block) ([]grammar.Field, error) {
	var fields []grammar.Field
	for _, inner := range block.Body.Blocks {
		if inner.Type != "field" {
			return nil, fmt.Errorf("%s: unexpected block %q, only field blocks are allowed here", inner.DefRange().String(), inner.Type)
		}
		field, err := translateField(inner)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func translateField(block *hclsyntax.Block) (grammar.Field, error) {
	if len(block.Labels) != 1 {
		return grammar.Field{}, fmt.Errorf("%s: field block requires exactly one name label", block.DefRange().String())
	}
	name := block.Labels[0]

	attr, ok := block.Body.Attributes["type"]
	if !ok {
		return grammar.Field{}, fmt.Errorf("%s: field %q is missing its type attribute", block.DefRange().String(), name)
	}
	for attrName, a := range block.Body.Attributes {
		if attrName != "type" {
			return grammar.Field{}, fmt.Errorf("%s: unexpected attribute %q on field %q", a.SrcRange.String(), attrName, name)
		}
	}

	typeName, mod, err := typeExpr(attr.Expr)
	if err != nil {
		return grammar.Field{}, fmt.Errorf("field %q: %w", name, err)
	}
	return grammar.Field{Type: typeName, Name: name, Mod: mod}, nil
}

// typeExpr reads a field type expression: a bare keyword like `expr` or
// `string` is a plain field, `optional(t)` and `list(t)` wrap a bare
// keyword with a modifier. Modifiers do not nest.
func typeExpr(expr hclsyntax.Expression) (string, grammar.Modifier, error) {
	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return "", grammar.Plain, fmt.Errorf("%s: type must be a single identifier", v.Range().String())
		}
		return v.Traversal.RootName(), grammar.Plain, nil

	case *hclsyntax.FunctionCallExpr:
		var mod grammar.Modifier
		switch v.Name {
		case "optional":
			mod = grammar.Optional
		case "list":
			mod = grammar.Sequence
		default:
			return "", grammar.Plain, fmt.Errorf("%s: unknown type constructor %q, expected optional(...) or list(...)", v.Range().String(), v.Name)
		}
		if len(v.Args) != 1 {
			return "", grammar.Plain, fmt.Errorf("%s: %s(...) requires exactly one argument", v.Range().String(), v.Name)
		}
		inner, ok := v.Args[0].(*hclsyntax.ScopeTraversalExpr)
		if !ok || len(inner.Traversal) != 1 {
			return "", grammar.Plain, fmt.Errorf("%s: argument of %s(...) must be a single type identifier", v.Range().String(), v.Name)
		}
		return inner.Traversal.RootName(), mod, nil

	default:
		return "", grammar.Plain, fmt.Errorf("%s: unsupported expression for a field type: %T", expr.Range().String(), v)
	}
}
