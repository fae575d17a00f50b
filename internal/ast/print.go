package ast

import (
	"strings"

	"github.com/hzeller/bant/internal/token"
)

// Print renders n back to source text. The result is always
// re-parseable, and re-parsing it and printing again yields the same
// text (the round-trip property exercised in parser_test.go) -
// printing never needs to guess at original formatting because every
// scalar already carries its exact source text.
func Print(n Node) string {
	var b strings.Builder
	print(&b, n)
	return b.String()
}

func print(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Identifier:
		b.WriteString(n.Name)
	case *IntScalar:
		b.WriteString(n.Text)
	case *StringScalar:
		b.WriteString(n.Text)
	case *List:
		printList(b, n)
	case *BinOp:
		printBinOp(b, n)
	case *UnaryExpr:
		printUnary(b, n)
	case *Assignment:
		print(b, n.Target)
		b.WriteString(" = ")
		print(b, n.Value)
	case *FunCall:
		print(b, n.Name)
		b.WriteByte('(')
		printItems(b, n.Args.Items)
		b.WriteByte(')')
	case *ListComprehension:
		printComprehension(b, n)
	case *Ternary:
		print(b, n.Positive)
		b.WriteString(" if ")
		print(b, n.Condition)
		b.WriteString(" else ")
		print(b, n.Negative)
	case nil:
	default:
		panic("ast.Print: unhandled node type")
	}
}

func printItems(b *strings.Builder, items []Node) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		print(b, item)
	}
}

func bracketsFor(kind ListKind) (open, close byte) {
	switch kind {
	case ListKindMap:
		return '{', '}'
	case ListKindTuple:
		return '(', ')'
	default:
		return '[', ']'
	}
}

func printList(b *strings.Builder, l *List) {
	open, close := bracketsFor(l.Kind)
	b.WriteByte(open)
	if l.Kind == ListKindTuple && len(l.Items) == 1 {
		// A single-element tuple must keep its trailing comma: without
		// it, re-parsing "(x)" yields a parenthesised expression, not a
		// one-element tuple (Parser - tuples vs. parens, spec scenario 3).
		print(b, l.Items[0])
		b.WriteByte(',')
	} else {
		printItems(b, l.Items)
	}
	b.WriteByte(close)
}

func printBinOp(b *strings.Builder, n *BinOp) {
	switch n.Op {
	case token.Dot:
		print(b, n.Left)
		b.WriteByte('.')
		print(b, n.Right)
	case token.OpenSquare:
		print(b, n.Left)
		b.WriteByte('[')
		print(b, n.Right)
		b.WriteByte(']')
	case token.Colon:
		print(b, n.Left)
		b.WriteString(": ")
		print(b, n.Right)
	case token.OpenParen:
		// A call whose callee is not a bare identifier (e.g. the result
		// of a '.' chain); Right is always a ListKindTuple args list.
		print(b, n.Left)
		b.WriteByte('(')
		printItems(b, n.Right.(*List).Items)
		b.WriteByte(')')
	default:
		print(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		print(b, n.Right)
	}
}

func printUnary(b *strings.Builder, n *UnaryExpr) {
	switch n.Op {
	case token.Bang:
		b.WriteByte('!')
	case token.Minus:
		b.WriteByte('-')
	default: // token.Not
		b.WriteString("not ")
	}
	print(b, n.Operand)
}

func printComprehension(b *strings.Builder, n *ListComprehension) {
	open, close := bracketsFor(n.Kind)
	b.WriteByte(open)
	print(b, n.Pattern)
	b.WriteString(" for ")
	for i, v := range n.Variables.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		print(b, v)
	}
	b.WriteString(" in ")
	print(b, n.Source)
	b.WriteByte(close)
}
