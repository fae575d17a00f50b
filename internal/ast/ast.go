// Package ast defines the closed set of syntax tree node variants the
// parser builds and the printer/query layers walk. Every node is
// allocated out of an internal/arena pool tied to the project that
// parsed it; Identifier, scalar, and string nodes hold their text as a
// view into that project's file content rather than a copy.
package ast

import "github.com/hzeller/bant/internal/token"

// Node is implemented by exactly the types in this file. The
// unexported marker method closes the variant set the way a sum type
// would in a language with one; see Walk for how callers traverse it
// and Print for how they render it back to source text.
type Node interface {
	astNode()
}

// Identifier is a bare name: a variable reference, a function name, or
// an attribute after a '.'.
type Identifier struct {
	Name string
}

// IntScalar is an unevaluated integer literal; Text is the literal
// digits exactly as scanned.
type IntScalar struct {
	Text string
}

// StringScalar is a string or raw-string literal. Text includes the
// surrounding quotes exactly as scanned, so the printer can round-trip
// it byte for byte; call Value to get the decoded string content
// instead (what query, headerindex, and dwyu actually match against).
type StringScalar struct {
	Text           string
	IsRaw          bool
	IsTripleQuoted bool
}

// ListKind distinguishes the three bracket families a List can denote.
type ListKind int

const (
	ListKindList ListKind = iota
	ListKindMap
	ListKindTuple
)

// List is an ordered sequence of Node under one of '[' ']', '{' '}', or
// '(' ')'. Every item of a ListKindMap list is a BinOp with
// Op == token.Colon.
type List struct {
	Kind  ListKind
	Items []Node
}

// BinOp is a binary operation: arithmetic, comparison, '.' attribute
// access, '[' index, or ':' map entry. Op is the operator's token kind;
// for index, Right is the bracketed expression and the closing ']' is
// implicit. For '.', Right is always an *Identifier.
type BinOp struct {
	Op    token.Kind
	Left  Node
	Right Node
}

// UnaryExpr is `not X` or `!X`.
type UnaryExpr struct {
	Op      token.Kind
	Operand Node
}

// Assignment is `target = value` at statement level, or a keyword
// argument inside a FunCall's argument list.
type Assignment struct {
	Target *Identifier
	Value  Node
}

// FunCall is `name(args...)`. Args is always a ListKindTuple list; its
// items are either plain expressions (positional arguments) or
// *Assignment (keyword arguments).
type FunCall struct {
	Name *Identifier
	Args *List
}

// ListComprehension is `pattern for variables in source`, found where
// a list body's first expression is immediately followed by `for`
// (tuple and map bodies have no comprehension form in the parser).
// Kind records which bracket family it was parsed under, so the
// printer can re-wrap it the same way. Variables is a ListKindList
// list of *Identifier.
type ListComprehension struct {
	Kind      ListKind
	Pattern   Node
	Variables *List
	Source    Node
}

// Ternary is `positive if condition else negative`.
type Ternary struct {
	Positive  Node
	Condition Node
	Negative  Node
}

func (*Identifier) astNode()         {}
func (*IntScalar) astNode()          {}
func (*StringScalar) astNode()       {}
func (*List) astNode()               {}
func (*BinOp) astNode()              {}
func (*UnaryExpr) astNode()          {}
func (*Assignment) astNode()         {}
func (*FunCall) astNode()            {}
func (*ListComprehension) astNode()  {}
func (*Ternary) astNode()            {}
