package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzeller/bant/internal/posmap"
	"github.com/hzeller/bant/internal/token"
)

func scan(content string) *Scanner {
	return New(content, posmap.New([]byte(content)))
}

func TestEmptyStringEOF(t *testing.T) {
	s := scan("")
	assert.Equal(t, token.EOF, s.Next().Kind)
	assert.Equal(t, token.EOF, s.Next().Kind, "EOF must be idempotent")
}

func TestUnknownToken(t *testing.T) {
	s := scan("@")
	assert.Equal(t, token.Error, s.Next().Kind)
	assert.Equal(t, token.EOF, s.Next().Kind)
}

func TestSimpleTokens(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
	}{
		{"(", token.OpenParen}, {")", token.CloseParen},
		{"[", token.OpenSquare}, {"]", token.CloseSquare},
		{"{", token.OpenBrace}, {"}", token.CloseBrace},
		{",", token.Comma}, {":", token.Colon},
		{"+", token.Plus}, {"-", token.Minus},
		{"*", token.Multiply}, {"/", token.Divide},
		{".", token.Dot}, {"%", token.Percent},
		{"=", token.Assign}, {"==", token.Equal},
		{"!=", token.NotEqual}, {"<=", token.LessEqual},
		{">=", token.GreaterEqual}, {">", token.GreaterThan},
		{"<", token.LessThan},
		{"not", token.Not}, {"!", token.Bang},
		{"for", token.For}, {"in", token.In},
		{"if", token.If}, {"else", token.Else},
		{"some_random_thing", token.Identifier},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			s := scan(c.text)
			tok := s.Next()
			assert.Equal(t, c.kind, tok.Kind)
			assert.Equal(t, c.text, tok.Text)
			assert.Equal(t, token.EOF, s.Next().Kind)
		})
	}
}

func TestNumberString(t *testing.T) {
	s := scan(`42 "hello world"`)
	tok := s.Next()
	require.Equal(t, token.NumberLiteral, tok.Kind)
	assert.Equal(t, "42", tok.Text)

	tok = s.Next()
	require.Equal(t, token.StringLiteral, tok.Kind)
	assert.Equal(t, `"hello world"`, tok.Text)

	assert.Equal(t, token.EOF, s.Next().Kind)
}

func TestNumberWithTwoDotsIsError(t *testing.T) {
	s := scan("1.2.3")
	tok := s.Next()
	assert.Equal(t, token.Error, tok.Kind)
}

func TestStringLiteralQuoteForms(t *testing.T) {
	cases := []string{
		`"double"`,
		`'single'`,
		`"hello \" ' world"`,
		`'hello " \' world'`,
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			s := scan(c)
			tok := s.Next()
			require.Equal(t, token.StringLiteral, tok.Kind)
			assert.Equal(t, c, tok.Text)
			assert.Equal(t, token.EOF, s.Next().Kind)
		})
	}
}

func TestTripleQuotedString(t *testing.T) {
	s := scan(`"""hello "" world"""`)
	tok := s.Next()
	require.Equal(t, token.StringLiteral, tok.Kind)
	assert.Equal(t, `"""hello "" world"""`, tok.Text)
	assert.Len(t, tok.Text, 21)
	assert.Equal(t, token.EOF, s.Next().Kind)
}

func TestTripleQuotedEmptyString(t *testing.T) {
	s := scan(`""""""`)
	tok := s.Next()
	require.Equal(t, token.StringLiteral, tok.Kind)
	assert.Equal(t, `""""""`, tok.Text)
}

func TestFiveQuotesIsError(t *testing.T) {
	s := scan(`"""""`)
	tok := s.Next()
	assert.Equal(t, token.Error, tok.Kind)
	assert.Equal(t, token.EOF, s.Next().Kind)
}

func TestRawStringLiteral(t *testing.T) {
	s := scan("  r'foo'  ")
	tok := s.Next()
	require.Equal(t, token.RawStringLiteral, tok.Kind)
	assert.Equal(t, "r'foo'", tok.Text)
	assert.Equal(t, token.EOF, s.Next().Kind)

	s = scan(`R"x"`)
	tok = s.Next()
	require.Equal(t, token.RawStringLiteral, tok.Kind)
	assert.Equal(t, `R"x"`, tok.Text)
}

func TestUnterminatedStringIsError(t *testing.T) {
	s := scan(`"never closed`)
	tok := s.Next()
	assert.Equal(t, token.Error, tok.Kind)
}

func TestCommentSkipped(t *testing.T) {
	s := scan("foo # this is a comment\nbar")
	assert.Equal(t, "foo", s.Next().Text)
	assert.Equal(t, "bar", s.Next().Text)
}

func TestScanningIsTotal(t *testing.T) {
	s := scan(`foo(bar, "baz") = [1, 2, .]`)
	for i := 0; i < 1000; i++ {
		if s.Peek().Kind == token.EOF {
			break
		}
		s.Next()
	}
	assert.Equal(t, token.EOF, s.Next().Kind)
}

func TestPeekIsStable(t *testing.T) {
	s := scan("foo bar")
	first := s.Peek()
	second := s.Peek()
	assert.Equal(t, first, second)
	assert.Equal(t, first, s.Next())
	assert.Equal(t, "bar", s.Next().Text)
}
