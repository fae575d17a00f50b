package ast

// Visitor is the single traversal hook Walk calls at every node. It
// mirrors go/ast's Visitor: returning a non-nil Visitor continues the
// walk into the node's children with that (possibly different)
// Visitor; returning nil stops descending into this node's subtree.
//
// The original C++ source dispatches through a virtual base class with
// one method per node variant; Go has no sum types to match on
// directly outside this package; collapsing to a single Visit plus a
// type switch inside Walk is the idiomatic replacement (the same shape
// go/ast itself uses) for "visit everything" callers. The query layer
// and the header index only look at top-level statements and iterate
// them directly rather than through Walk.
type Visitor interface {
	Visit(n Node) Visitor
}

// VisitorFunc adapts a plain function to a Visitor that always
// continues the walk with itself.
type VisitorFunc func(n Node)

func (f VisitorFunc) Visit(n Node) Visitor {
	f(n)
	return f
}

// Walk traverses the AST rooted at n in a fixed, deterministic order
// (the same order the nodes appear in source), calling v.Visit at each
// node before descending into its children.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	switch n := n.(type) {
	case *Identifier, *IntScalar, *StringScalar:
		// leaves, nothing further to walk
	case *List:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *BinOp:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *UnaryExpr:
		Walk(v, n.Operand)
	case *Assignment:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *FunCall:
		Walk(v, n.Name)
		Walk(v, n.Args)
	case *ListComprehension:
		Walk(v, n.Pattern)
		Walk(v, n.Variables)
		Walk(v, n.Source)
	case *Ternary:
		Walk(v, n.Positive)
		Walk(v, n.Condition)
		Walk(v, n.Negative)
	default:
		panic("ast.Walk: unhandled node type, the variant set in ast.go grew without updating Walk")
	}
}
