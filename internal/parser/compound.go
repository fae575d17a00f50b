package parser

import (
	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/token"
)

// listBody parses `'[' ... ']'`, promoting to a ListComprehension when
// the first expression is immediately followed by `for`.
func (p *Parser) listBody() ast.Node {
	p.next() // '['
	if p.peek().Kind == token.CloseSquare {
		p.next()
		return p.arena.NewList(ast.ListKindList, nil)
	}
	first := p.expression()
	if p.peek().Kind == token.For {
		return p.comprehensionTail(ast.ListKindList, first, token.CloseSquare, "]")
	}
	items := []ast.Node{first}
	for p.peek().Kind == token.Comma {
		p.next()
		if p.peek().Kind == token.CloseSquare {
			break
		}
		items = append(items, p.expression())
	}
	p.expectClose(token.CloseSquare, "]")
	return p.arena.NewList(ast.ListKindList, items)
}

// comprehensionTail parses `for ident {, ident} in expression` and the
// closing bracket, given the already-parsed pattern.
func (p *Parser) comprehensionTail(kind ast.ListKind, pattern ast.Node, closeKind token.Kind, closeSymbol string) ast.Node {
	p.next() // 'for'
	var vars []ast.Node
	for {
		tok := p.expectIdentifier()
		vars = append(vars, p.arena.NewIdentifier(tok.Text))
		if p.peek().Kind != token.Comma {
			break
		}
		p.next()
	}
	p.expectKind(token.In, "in")
	source := p.expression()
	p.expectClose(closeKind, closeSymbol)
	return p.arena.NewListComprehension(kind, pattern, p.arena.NewList(ast.ListKindList, vars), source)
}

// mapBody parses `'{' key ':' expression, ... '}'`. Keys are literals
// or identifiers, per the grammar; no comprehension form is defined
// for map bodies in the grammar, unlike list bodies.
func (p *Parser) mapBody() ast.Node {
	p.next() // '{'
	var items []ast.Node
	for p.peek().Kind != token.CloseBrace && p.peek().Kind != token.EOF {
		key := p.mapKey()
		p.expectKind(token.Colon, ":")
		value := p.expression()
		items = append(items, p.arena.NewBinOp(token.Colon, key, value))
		if p.peek().Kind != token.Comma {
			break
		}
		p.next()
	}
	p.expectClose(token.CloseBrace, "}")
	return p.arena.NewList(ast.ListKindMap, items)
}

func (p *Parser) mapKey() ast.Node {
	switch p.peek().Kind {
	case token.Identifier, token.StringLiteral, token.RawStringLiteral, token.NumberLiteral:
		return p.value()
	}
	tok := p.peek()
	p.errorf("invalid map key %s", tok)
	p.next()
	return nil
}

// tupleOrParen parses `'(' ... ')'`: empty is an empty tuple, a single
// expression with no trailing comma is a parenthesised expression
// (not a tuple), anything else - including a single expression with a
// trailing comma - is a tuple.
func (p *Parser) tupleOrParen() ast.Node {
	p.next() // '('
	if p.peek().Kind == token.CloseParen {
		p.next()
		return p.arena.NewList(ast.ListKindTuple, nil)
	}
	first := p.expression()
	if p.peek().Kind != token.Comma {
		p.expectClose(token.CloseParen, ")")
		return first
	}
	items := []ast.Node{first}
	for p.peek().Kind == token.Comma {
		p.next()
		if p.peek().Kind == token.CloseParen {
			break
		}
		items = append(items, p.expression())
	}
	p.expectClose(token.CloseParen, ")")
	return p.arena.NewList(ast.ListKindTuple, items)
}
