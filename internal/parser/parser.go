// Package parser implements a forgiving recursive-descent parser over
// the token stream produced by internal/scanner, building the closed
// AST variant set defined in internal/ast.
package parser

import (
	"fmt"
	"io"

	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/scanner"
	"github.com/hzeller/bant/internal/token"
)

// Result is what Parse always returns, even on malformed input: a
// best-effort statement list plus whatever error state the parse
// accumulated. It never panics on bad input - see HadError.
type Result struct {
	Statements []ast.Node
	HadError   bool
	LastToken  token.Token
}

// Parser consumes a Scanner's token stream and allocates every node it
// builds out of a shared ast.Arena. One token of lookahead, no
// backtracking: on the first syntax error it stops advancing, records
// the error, and returns whatever statements it has already built.
type Parser struct {
	s      *scanner.Scanner
	arena  *ast.Arena
	errOut io.Writer
	fileID string

	hadError bool
	lastSeen token.Token
}

// New creates a Parser over s, allocating nodes from arena and writing
// diagnostics to errOut prefixed with fileID (typically the file's
// path, for error messages like "BUILD:12:3: unexpected token").
func New(s *scanner.Scanner, arena *ast.Arena, errOut io.Writer, fileID string) *Parser {
	return &Parser{s: s, arena: arena, errOut: errOut, fileID: fileID}
}

// Parse consumes the entire token stream and returns the parsed
// statement list. Parsing is total: it always returns, never panics,
// and HadError is set whenever the input was not fully well-formed.
func (p *Parser) Parse() Result {
	var statements []ast.Node
	for {
		tok := p.s.Peek()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.StringLiteral || tok.Kind == token.RawStringLiteral {
			// A bare top-level string literal is a Python-style
			// docstring: legal, and simply discarded.
			p.s.Next()
			continue
		}
		stmt, ok := p.statement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
		if !ok {
			break
		}
	}
	return Result{Statements: statements, HadError: p.hadError, LastToken: p.lastSeen}
}

func (p *Parser) errorf(format string, args ...any) {
	p.hadError = true
	if p.errOut == nil {
		return
	}
	pos := p.s.PosMap().GetRange(p.s.Peek().Text)
	fmt.Fprintf(p.errOut, "%s:%s: "+format+"\n", append([]any{p.fileID, pos}, args...)...)
}

func (p *Parser) next() token.Token {
	t := p.s.Next()
	p.lastSeen = t
	return t
}

func (p *Parser) peek() token.Token {
	return p.s.Peek()
}

// expectClose consumes kind if it is next, else reports that symbol
// was expected and leaves the cursor where it was (the caller's
// enclosing statement/expression is already broken at this point; the
// forgiving parser records the error and lets Parse() stop there).
func (p *Parser) expectClose(kind token.Kind, symbol string) {
	if p.peek().Kind != kind {
		p.errorf("expected closing %q, got %s", symbol, p.peek())
		return
	}
	p.next()
}

func (p *Parser) expectKind(kind token.Kind, symbol string) {
	if p.peek().Kind != kind {
		p.errorf("expected %q, got %s", symbol, p.peek())
		return
	}
	p.next()
}

func (p *Parser) expectIdentifier() token.Token {
	tok := p.peek()
	if tok.Kind != token.Identifier {
		p.errorf("expected identifier, got %s", tok)
		return tok
	}
	return p.next()
}
