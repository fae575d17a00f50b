// Package scanner tokenizes the Bazel-style BUILD file dialect.
package scanner

import (
	"github.com/hzeller/bant/internal/posmap"
	"github.com/hzeller/bant/internal/token"
)

// Scanner reads tokens from content, updating the supplied position
// map as it encounters newlines. It exposes one token of lookahead via
// Peek. A Scanner is stateless beyond its own cursor and the position
// map it was handed; it does not own either.
type Scanner struct {
	content string
	pos     int

	posMap *posmap.Map

	upcoming    token.Token
	hasUpcoming bool
}

// New creates a Scanner over content, recording newline offsets into
// posMap as it scans.
func New(content string, posMap *posmap.Map) *Scanner {
	return &Scanner{content: content, posMap: posMap}
}

// PosMap returns the position map this Scanner is updating.
func (s *Scanner) PosMap() *posmap.Map { return s.posMap }

// Peek returns the next token without consuming it. Calling Peek
// repeatedly returns the same token until Next is called.
func (s *Scanner) Peek() token.Token {
	if !s.hasUpcoming {
		s.upcoming = s.next()
		s.hasUpcoming = true
	}
	return s.upcoming
}

// Next consumes and returns the next token. Once EOF is returned, every
// subsequent call also returns EOF.
func (s *Scanner) Next() token.Token {
	if s.hasUpcoming {
		s.hasUpcoming = false
		return s.upcoming
	}
	return s.next()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool { return isIdentStart(c) || isDigit(c) }

func (s *Scanner) skipSpace() {
	for {
		for s.pos < len(s.content) && isSpace(s.content[s.pos]) {
			if s.content[s.pos] == '\n' {
				s.posMap.PushNewline(s.pos + 1)
			}
			s.pos++
		}
		if s.pos >= len(s.content) || s.content[s.pos] != '#' {
			return
		}
		for s.pos < len(s.content) && s.content[s.pos] != '\n' {
			s.pos++
		}
	}
}

func (s *Scanner) next() token.Token {
	s.skipSpace()
	if s.pos >= len(s.content) {
		return token.Token{Kind: token.EOF, Text: s.content[len(s.content):]}
	}

	c := s.content[s.pos]
	switch c {
	case '(', ')', '[', ']', '{', '}', ',', ':', '+', '-', '*', '/', '.', '%':
		start := s.pos
		s.pos++
		return token.Token{Kind: token.Kind(c), Text: s.content[start:s.pos]}
	case '=':
		return s.handleAssignOrRelational('=', token.Assign, token.Equal)
	case '<':
		return s.handleAssignOrRelational('<', token.LessThan, token.LessEqual)
	case '>':
		return s.handleAssignOrRelational('>', token.GreaterThan, token.GreaterEqual)
	case '!':
		return s.handleAssignOrRelational('!', token.Bang, token.NotEqual)
	case '"', '\'':
		return s.handleString()
	}
	if isDigit(c) {
		return s.handleNumber()
	}
	return s.handleIdentifierKeywordRawStringOrInvalid()
}

// handleAssignOrRelational scans a one- or two-character operator that
// starts with first, e.g. '=' vs '=='.
func (s *Scanner) handleAssignOrRelational(first byte, singleKind, doubleKind token.Kind) token.Token {
	start := s.pos
	s.pos++
	if s.pos < len(s.content) && s.content[s.pos] == '=' {
		s.pos++
		return token.Token{Kind: doubleKind, Text: s.content[start:s.pos]}
	}
	return token.Token{Kind: singleKind, Text: s.content[start:s.pos]}
}

func (s *Scanner) handleNumber() token.Token {
	start := s.pos
	dotSeen := false
	s.pos++
	for s.pos < len(s.content) {
		c := s.content[s.pos]
		if c == '.' {
			if dotSeen {
				return token.Token{Kind: token.Error, Text: s.content[start : s.pos+1]}
			}
			dotSeen = true
		} else if !isDigit(c) {
			break
		}
		s.pos++
	}
	return token.Token{Kind: token.NumberLiteral, Text: s.content[start:s.pos]}
}

func (s *Scanner) handleIdentifierKeywordRawStringOrInvalid() token.Token {
	start := s.pos
	c := s.content[start]

	// Raw string literals r"foo" start out looking like an identifier,
	// but the following quote gives it away.
	if (c == 'r' || c == 'R') && start+1 < len(s.content) {
		next := s.content[start+1]
		if next == '"' || next == '\'' {
			s.pos++
			tok := s.handleString()
			tok.Kind = token.RawStringLiteral
			tok.Text = s.content[start:s.pos]
			return tok
		}
	}

	if !isIdentStart(c) {
		s.pos++
		return token.Token{Kind: token.Error, Text: s.content[start:s.pos]}
	}
	for s.pos < len(s.content) && isIdentChar(s.content[s.pos]) {
		s.pos++
	}
	text := s.content[start:s.pos]
	if kw, ok := token.Keywords[text]; ok {
		return token.Token{Kind: kw, Text: text}
	}
	return token.Token{Kind: token.Identifier, Text: text}
}

func (s *Scanner) handleString() token.Token {
	start := s.pos
	quote := s.content[s.pos]
	s.pos++
	tripleQuote := false
	if s.pos+1 < len(s.content) && s.content[s.pos] == quote && s.content[s.pos+1] == quote {
		tripleQuote = true
		s.pos += 2
	}
	closeQuoteCount := 1
	if tripleQuote {
		closeQuoteCount = 3
	}
	lastWasEscape := false
	for s.pos < len(s.content) {
		c := s.content[s.pos]
		if c == quote && !lastWasEscape {
			closeQuoteCount--
			if closeQuoteCount == 0 {
				break
			}
		} else {
			if tripleQuote {
				closeQuoteCount = 3
			} else {
				closeQuoteCount = 1
			}
		}
		lastWasEscape = c == '\\'
		if c == '\n' {
			s.posMap.PushNewline(s.pos + 1)
		}
		s.pos++
	}
	if s.pos >= len(s.content) {
		return token.Token{Kind: token.Error, Text: s.content[start:s.pos]}
	}
	s.pos++ // consume final closing quote
	return token.Token{Kind: token.StringLiteral, Text: s.content[start:s.pos]}
}
