package parser

import (
	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/token"
)

// argList parses `'(' arglist ')'`, returning a ListKindTuple list per
// the AST invariant that every FunCall.Args is tuple-kind.
func (p *Parser) argList() *ast.List {
	p.next() // '('
	var items []ast.Node
	for p.peek().Kind != token.CloseParen && p.peek().Kind != token.EOF {
		items = append(items, p.argItem())
		if p.peek().Kind != token.Comma {
			break
		}
		p.next() // trailing comma permitted
	}
	p.expectClose(token.CloseParen, ")")
	return p.arena.NewList(ast.ListKindTuple, items)
}

// argItem parses one call argument: a keyword argument
// `identifier = expression`, distinguished from an ordinary positional
// expression by looking ahead one token past a leading identifier for
// '='. Since the scanner only offers one token of lookahead, the
// identifier must be consumed to check; when it turns out not to be a
// keyword argument, parsing resumes from that already-built identifier
// node via postfixFrom/exprTail instead of re-scanning.
func (p *Parser) argItem() ast.Node {
	if p.peek().Kind == token.Identifier {
		identTok := p.next()
		identNode := p.arena.NewIdentifier(identTok.Text)
		if p.peek().Kind == token.Assign {
			p.next()
			value := p.expression()
			return p.arena.NewAssignment(identNode, value)
		}
		return p.exprTail(p.postfixFrom(identNode))
	}
	return p.expression()
}
