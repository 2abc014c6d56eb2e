package asdl

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/vk/asdlgo/internal/grammar"
)

// Parse consumes ASDL grammar text and produces the grammar model. The
// parser only checks syntactic well-formedness; undefined type references
// are left to the engine, which reports them on first use.
func Parse(src string) (*grammar.Module, error) {
	p := &parser{lex: newLexer(src)}
	p.next()
	return p.parseModule()
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) next() {
	p.tok = p.lex.next()
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("asdl: %d:%d: "+format, append([]any{p.tok.line, p.tok.col}, args...)...)
}

func (p *parser) expect(typ tokenType) (token, error) {
	if p.tok.typ != typ {
		return token{}, p.errorf("expected %s, found %s %q", typ, p.tok.typ, p.tok.text)
	}
	tok := p.tok
	p.next()
	return tok, nil
}

func (p *parser) expectKeyword(kw string) error {
	if p.tok.typ != tokenIdent || p.tok.text != kw {
		return p.errorf("expected %q, found %q", kw, p.tok.text)
	}
	p.next()
	return nil
}

func (p *parser) parseModule() (*grammar.Module, error) {
	if err := p.expectKeyword("module"); err != nil {
		return nil, err
	}
	name, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenLBrace); err != nil {
		return nil, err
	}

	var decls []grammar.Decl
	for p.tok.typ != tokenRBrace {
		decl, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	p.next() // consume '}'
	if p.tok.typ != tokenEOF {
		return nil, p.errorf("unexpected %s %q after module body", p.tok.typ, p.tok.text)
	}
	return grammar.NewModule(name.text, decls)
}

func (p *parser) parseDefinition() (grammar.Decl, error) {
	name, err := p.expect(tokenIdent)
	if err != nil {
		return grammar.Decl{}, err
	}
	if !startsLower(name.text) {
		return grammar.Decl{}, p.errorf("type name %q must start with a lower-case letter", name.text)
	}
	if _, err := p.expect(tokenEq); err != nil {
		return grammar.Decl{}, err
	}

	if p.tok.typ == tokenLParen {
		def, err := p.parseProduct()
		if err != nil {
			return grammar.Decl{}, err
		}
		return grammar.Decl{Name: name.text, Def: def}, nil
	}
	def, err := p.parseSum()
	if err != nil {
		return grammar.Decl{}, err
	}
	return grammar.Decl{Name: name.text, Def: def}, nil
}

func (p *parser) parseProduct() (*grammar.Product, error) {
	fields, err := p.parseFields()
	if err != nil {
		return nil, err
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	return &grammar.Product{Fields: fields, Attributes: attrs}, nil
}

func (p *parser) parseSum() (*grammar.Sum, error) {
	var ctors []grammar.ConstructorSpec
	for {
		ctor, err := p.parseConstructor()
		if err != nil {
			return nil, err
		}
		ctors = append(ctors, ctor)
		if p.tok.typ != tokenPipe {
			break
		}
		p.next()
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	return &grammar.Sum{Constructors: ctors, Attributes: attrs}, nil
}

func (p *parser) parseConstructor() (grammar.ConstructorSpec, error) {
	name, err := p.expect(tokenIdent)
	if err != nil {
		return grammar.ConstructorSpec{}, err
	}
	if !startsUpper(name.text) {
		return grammar.ConstructorSpec{}, p.errorf("constructor name %q must start with an upper-case letter", name.text)
	}
	spec := grammar.ConstructorSpec{Name: name.text}
	if p.tok.typ == tokenLParen {
		fields, err := p.parseFields()
		if err != nil {
			return grammar.ConstructorSpec{}, err
		}
		spec.Fields = fields
	}
	return spec, nil
}

// parseAttributes parses an optional "attributes" fields clause.
func (p *parser) parseAttributes() ([]grammar.Field, error) {
	if p.tok.typ != tokenIdent || p.tok.text != "attributes" {
		return nil, nil
	}
	p.next()
	return p.parseFields()
}

func (p *parser) parseFields() ([]grammar.Field, error) {
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	if p.tok.typ == tokenRParen {
		p.next()
		return nil, nil
	}
	var fields []grammar.Field
	for {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if p.tok.typ != tokenComma {
			break
		}
		p.next()
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	return fields, nil
}

func (p *parser) parseField() (grammar.Field, error) {
	typeName, err := p.expect(tokenIdent)
	if err != nil {
		return grammar.Field{}, err
	}

	mod := grammar.Plain
	switch p.tok.typ {
	case tokenQuestion:
		mod = grammar.Optional
		p.next()
	case tokenStar:
		mod = grammar.Sequence
		p.next()
	}

	if p.tok.typ != tokenIdent {
		return grammar.Field{}, p.errorf("field of type %q is missing its binding name", typeName.text)
	}
	bind := p.tok
	p.next()
	return grammar.Field{Type: typeName.text, Name: bind.text, Mod: mod}, nil
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
