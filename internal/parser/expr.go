package parser

import (
	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/token"
)

// expression parses a full expression: a value, any binary operators
// at comparison level or tighter, and an optional trailing ternary.
func (p *Parser) expression() ast.Node {
	return p.exprTail(p.value())
}

// exprTail continues parsing from an already-parsed value-level node,
// closing out any comparison/additive/multiplicative operators and an
// optional trailing ternary. Used both by expression() (fresh start)
// and by argItem, which must resume parsing after speculatively
// consuming a leading identifier to check for a keyword argument.
func (p *Parser) exprTail(left ast.Node) ast.Node {
	left = p.comparisonTail(left)
	if p.peek().Kind == token.If {
		p.next()
		cond := p.expression()
		p.expectKind(token.Else, "else")
		neg := p.expression()
		return p.arena.NewTernary(left, cond, neg)
	}
	return left
}

func (p *Parser) comparisonTail(left ast.Node) ast.Node {
	left = p.additiveTail(left)
	for {
		op, ok := p.comparisonOp()
		if !ok {
			return left
		}
		right := p.additiveTail(p.value())
		left = p.arena.NewBinOp(op, left, right)
	}
}

// comparisonOp consumes a comparison-level operator if one is next,
// including the two-token "not in" sequence, which collapses here into
// a single token.NotIn operator (the scanner only ever emits "not" and
// "in" separately; joining them is the parser's job per the grammar).
func (p *Parser) comparisonOp() (token.Kind, bool) {
	switch p.peek().Kind {
	case token.Equal, token.NotEqual, token.LessThan, token.GreaterThan,
		token.LessEqual, token.GreaterEqual, token.In:
		return p.next().Kind, true
	case token.Not:
		p.next()
		if p.peek().Kind == token.In {
			p.next()
			return token.NotIn, true
		}
		p.errorf("'not' not followed by 'in'")
		return 0, false
	}
	return 0, false
}

func (p *Parser) additiveTail(left ast.Node) ast.Node {
	left = p.multiplicativeTail(left)
	for p.peek().Kind == token.Plus || p.peek().Kind == token.Minus {
		op := p.next().Kind
		right := p.multiplicativeTail(p.value())
		left = p.arena.NewBinOp(op, left, right)
	}
	return left
}

func (p *Parser) multiplicativeTail(left ast.Node) ast.Node {
	for p.peek().Kind == token.Multiply || p.peek().Kind == token.Divide || p.peek().Kind == token.Percent {
		op := p.next().Kind
		right := p.value()
		left = p.arena.NewBinOp(op, left, right)
	}
	return left
}

// value parses a single primary, including any unary prefix and any
// postfix attribute/call/index chain - everything spec.md groups under
// "attribute/call", the tightest-binding level.
func (p *Parser) value() ast.Node {
	tok := p.peek()
	switch tok.Kind {
	case token.Not, token.Bang, token.Minus:
		p.next()
		return p.arena.NewUnaryExpr(tok.Kind, p.value())
	case token.StringLiteral, token.RawStringLiteral:
		p.next()
		return p.arena.NewStringScalar(tok.Text, tok.Kind == token.RawStringLiteral, isTripleQuoted(tok))
	case token.NumberLiteral:
		p.next()
		return p.arena.NewIntScalar(tok.Text)
	case token.Identifier:
		p.next()
		return p.postfixFrom(p.arena.NewIdentifier(tok.Text))
	case token.OpenSquare:
		return p.listBody()
	case token.OpenBrace:
		return p.mapBody()
	case token.OpenParen:
		return p.tupleOrParen()
	}
	p.errorf("unexpected token %s in expression", tok)
	p.next()
	return nil
}

// postfixFrom continues a chain of '.', '(', '[' suffixes starting
// from an already-parsed primary node. A '(' applied directly to a
// bare identifier promotes to the query layer's FunCall shape;
// applied to anything else (e.g. the result of a '.' chain) it
// becomes a generic call BinOp, since FunCall.Name is narrowly typed
// to *ast.Identifier per the AST's closed variant set.
func (p *Parser) postfixFrom(start ast.Node) ast.Node {
	cur := start
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.next()
			nameTok := p.expectIdentifier()
			cur = p.arena.NewBinOp(token.Dot, cur, p.arena.NewIdentifier(nameTok.Text))
		case token.OpenParen:
			args := p.argList()
			if ident, ok := cur.(*ast.Identifier); ok {
				cur = p.arena.NewFunCall(ident, args)
			} else {
				cur = p.arena.NewBinOp(token.OpenParen, cur, args)
			}
		case token.OpenSquare:
			p.next()
			idx := p.expression()
			p.expectClose(token.CloseSquare, "]")
			cur = p.arena.NewBinOp(token.OpenSquare, cur, idx)
		default:
			return cur
		}
	}
}

func isTripleQuoted(tok token.Token) bool {
	text := tok.Text
	if tok.Kind == token.RawStringLiteral {
		text = text[1:]
	}
	return len(text) >= 6 && text[0] == text[1] && text[0] == text[2]
}
