package parser

import (
	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/token"
)

// statement parses one top-level statement. The grammar proper only
// needs `identifier = expression` (assignment) and `identifier(...)`
// (a target declaration), but the production parser this is grounded
// on also accepts a bare postfix-chain expression such as
// `nested.bar("baz", m)` at top level - not a target declaration, just
// a statement the parser tolerates. Folding that case through the same
// expression machinery as ordinary call parsing (rather than special
// casing "identifier immediately followed by '('") gets both for free.
func (p *Parser) statement() (ast.Node, bool) {
	tok := p.peek()
	if tok.Kind != token.Identifier {
		p.errorf("unexpected token %s at top level", tok)
		p.next()
		return nil, false
	}
	identTok := p.next()
	identNode := p.arena.NewIdentifier(identTok.Text)

	if p.peek().Kind == token.Assign {
		p.next()
		value := p.expression()
		return p.arena.NewAssignment(identNode, value), !p.hadError
	}

	expr := p.exprTail(p.postfixFrom(identNode))
	return expr, !p.hadError
}
