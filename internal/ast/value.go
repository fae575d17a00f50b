package ast

import "strings"

// Value returns s's decoded string contents: quotes (single or
// triple) and the raw-string prefix stripped, and - for non-raw
// strings - common backslash escapes resolved. Most consumers (the
// header index, the DWYU engine, query parameter extraction) need this
// rather than Text, since Text is kept as the exact source bytes for
// the printer's round-trip guarantee.
func (s *StringScalar) Value() string {
	text := s.Text
	if s.IsRaw {
		text = text[1:] // drop the 'r'/'R' prefix
	}
	if len(text) == 0 {
		return ""
	}
	quoteLen := 1
	if s.IsTripleQuoted {
		quoteLen = 3
	}
	if len(text) < 2*quoteLen {
		return ""
	}
	inner := text[quoteLen : len(text)-quoteLen]
	if s.IsRaw {
		return inner
	}
	return unescape(inner)
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
