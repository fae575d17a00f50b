package ast

import (
	"github.com/hzeller/bant/internal/arena"
	"github.com/hzeller/bant/internal/token"
)

// Arena owns the per-project pools the parser allocates every node
// out of. One Arena is shared by every file in a project so that
// cross-file references (none exist today, but the allocator doesn't
// need to know that) would be valid without extra bookkeeping.
type Arena struct {
	identifiers        *arena.Pool[Identifier]
	intScalars         *arena.Pool[IntScalar]
	stringScalars      *arena.Pool[StringScalar]
	lists              *arena.Pool[List]
	binOps             *arena.Pool[BinOp]
	unaryExprs         *arena.Pool[UnaryExpr]
	assignments        *arena.Pool[Assignment]
	funCalls           *arena.Pool[FunCall]
	listComprehensions *arena.Pool[ListComprehension]
	ternaries          *arena.Pool[Ternary]
}

// NewArena creates an empty Arena. blockSize controls how many nodes
// of each variant are packed per allocated block; 0 picks a sane
// default.
func NewArena(blockSize int) *Arena {
	return &Arena{
		identifiers:        arena.NewPool[Identifier](blockSize),
		intScalars:         arena.NewPool[IntScalar](blockSize),
		stringScalars:      arena.NewPool[StringScalar](blockSize),
		lists:              arena.NewPool[List](blockSize),
		binOps:             arena.NewPool[BinOp](blockSize),
		unaryExprs:         arena.NewPool[UnaryExpr](blockSize),
		assignments:        arena.NewPool[Assignment](blockSize),
		funCalls:           arena.NewPool[FunCall](blockSize),
		listComprehensions: arena.NewPool[ListComprehension](blockSize),
		ternaries:          arena.NewPool[Ternary](blockSize),
	}
}

func (a *Arena) NewIdentifier(name string) *Identifier {
	return a.identifiers.New(Identifier{Name: name})
}

func (a *Arena) NewIntScalar(text string) *IntScalar {
	return a.intScalars.New(IntScalar{Text: text})
}

func (a *Arena) NewStringScalar(text string, isRaw, isTripleQuoted bool) *StringScalar {
	return a.stringScalars.New(StringScalar{Text: text, IsRaw: isRaw, IsTripleQuoted: isTripleQuoted})
}

func (a *Arena) NewList(kind ListKind, items []Node) *List {
	return a.lists.New(List{Kind: kind, Items: items})
}

func (a *Arena) NewBinOp(op token.Kind, left, right Node) *BinOp {
	return a.binOps.New(BinOp{Op: op, Left: left, Right: right})
}

func (a *Arena) NewUnaryExpr(op token.Kind, operand Node) *UnaryExpr {
	return a.unaryExprs.New(UnaryExpr{Op: op, Operand: operand})
}

func (a *Arena) NewAssignment(target *Identifier, value Node) *Assignment {
	return a.assignments.New(Assignment{Target: target, Value: value})
}

func (a *Arena) NewFunCall(name *Identifier, args *List) *FunCall {
	return a.funCalls.New(FunCall{Name: name, Args: args})
}

func (a *Arena) NewListComprehension(kind ListKind, pattern Node, variables *List, source Node) *ListComprehension {
	return a.listComprehensions.New(ListComprehension{Kind: kind, Pattern: pattern, Variables: variables, Source: source})
}

func (a *Arena) NewTernary(positive, condition, negative Node) *Ternary {
	return a.ternaries.New(Ternary{Positive: positive, Condition: condition, Negative: negative})
}
