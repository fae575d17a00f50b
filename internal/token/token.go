// Package token defines the lexical tokens of the Bazel-style BUILD
// file dialect.
package token

// Kind identifies the lexical category of a Token. Single-character
// punctuation re-uses the rune value as its Kind, mirroring the
// original scanner's choice to fold ASCII punctuation directly into
// the enum space.
type Kind int

const (
	OpenParen    Kind = '('
	CloseParen   Kind = ')'
	OpenSquare   Kind = '['
	CloseSquare  Kind = ']'
	OpenBrace    Kind = '{'
	CloseBrace   Kind = '}'
	Comma        Kind = ','
	Colon        Kind = ':'
	Plus         Kind = '+'
	Minus        Kind = '-'
	Multiply     Kind = '*'
	Divide       Kind = '/'
	Dot          Kind = '.'
	Percent      Kind = '%'
	Assign       Kind = '='
	LessThan     Kind = '<'
	GreaterThan  Kind = '>'
	Bang         Kind = '!'

	// Two-character relational operators. Kept above the ASCII range so
	// they never collide with a single-character Kind.
	Equal        Kind = 256 + '='
	NotEqual     Kind = 256 + '!'
	LessEqual    Kind = 256 + '<'
	GreaterEqual Kind = 256 + '>'

	// Everything below starts a fresh iota run well clear of the ASCII
	// and 256+ASCII ranges used above, so each of these gets its own
	// distinct value instead of silently repeating GreaterEqual's.
	Identifier Kind = 512 + iota

	StringLiteral
	RawStringLiteral
	NumberLiteral

	For
	In
	NotIn // collapsed "not" "in" sequence
	If
	Else
	Not

	Error
	EOF
)

// Keywords maps the reserved identifier spellings to their Kind. Any
// identifier-shaped text not in this set scans as Identifier.
var Keywords = map[string]Kind{
	"in":   In,
	"for":  For,
	"if":   If,
	"else": Else,
	"not":  Not,
}

func (k Kind) String() string {
	switch k {
	case OpenParen, CloseParen, OpenSquare, CloseSquare, OpenBrace, CloseBrace,
		Comma, Colon, Plus, Minus, Multiply, Divide, Dot, Percent, Assign,
		LessThan, GreaterThan, Bang:
		return string(rune(k))
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Identifier:
		return "ident"
	case StringLiteral:
		return "string"
	case RawStringLiteral:
		return "rawstring"
	case NumberLiteral:
		return "number"
	case For:
		return "for"
	case In:
		return "in"
	case NotIn:
		return "not in"
	case If:
		return "if"
	case Else:
		return "else"
	case Not:
		return "not"
	case Error:
		return "<<ERROR>>"
	case EOF:
		return "<<EOF>>"
	default:
		return "<<UNKNOWN>>"
	}
}

// Token is a tagged pair of Kind and the substring of the original file
// content it was scanned from. Text is a view, not a copy: it remains
// valid only as long as the backing content buffer is alive.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return t.Kind.String() + "('" + t.Text + "')"
}
