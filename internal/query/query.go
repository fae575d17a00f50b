// Package query filters a parsed BUILD file's top-level statements for
// function calls matching a set of rule names (cc_library, cc_binary,
// cc_test, ...) and extracts their well-known keyword arguments into a
// TargetParameters record.
package query

import "github.com/hzeller/bant/internal/ast"

// TargetParameters is what FindTargets extracts from one matching
// top-level FunCall. Fields are populated only when the corresponding
// keyword argument has the expected shape; an absent or malformed
// argument leaves its field at its zero value.
type TargetParameters struct {
	Name       string
	SrcsList   []string
	HdrsList   []string
	DepsList   []string
	Alwayslink bool

	Call *ast.FunCall // the FunCall this was extracted from
}

// FindTargets walks statements (a parsed file's top-level AST) and
// returns a TargetParameters for every top-level FunCall whose name is
// in names.
func FindTargets(statements []ast.Node, names map[string]bool) []TargetParameters {
	var out []TargetParameters
	for _, stmt := range statements {
		call, ok := stmt.(*ast.FunCall)
		if !ok || call.Name == nil || !names[call.Name.Name] {
			continue
		}
		out = append(out, extractTargetParameters(call))
	}
	return out
}

func extractTargetParameters(call *ast.FunCall) TargetParameters {
	params := TargetParameters{Call: call}
	if call.Args == nil {
		return params
	}
	for _, item := range call.Args.Items {
		assign, ok := item.(*ast.Assignment)
		if !ok || assign.Target == nil {
			continue
		}
		switch assign.Target.Name {
		case "name":
			if s, ok := assign.Value.(*ast.StringScalar); ok {
				params.Name = s.Value()
			}
		case "srcs":
			ExtractStringList(assign.Value, &params.SrcsList)
		case "hdrs":
			ExtractStringList(assign.Value, &params.HdrsList)
		case "deps":
			ExtractStringList(assign.Value, &params.DepsList)
		case "alwayslink":
			// alwayslink is written either as a boolean identifier
			// (True/False, or lowercase "true") or as an integer
			// (alwayslink = 1); any integer other than 0 counts as set.
			switch v := assign.Value.(type) {
			case *ast.Identifier:
				params.Alwayslink = v.Name == "True" || v.Name == "true"
			case *ast.IntScalar:
				params.Alwayslink = v.Text != "0"
			}
		}
	}
	return params
}

// ExtractStringList appends the text of every string-scalar item of a
// ListKindList value to out, silently skipping any item that is not a
// string scalar (or the value at all, if it is not a ListKindList).
func ExtractStringList(value ast.Node, out *[]string) {
	list, ok := value.(*ast.List)
	if !ok || list.Kind != ast.ListKindList {
		return
	}
	for _, item := range list.Items {
		if s, ok := item.(*ast.StringScalar); ok {
			*out = append(*out, s.Value())
		}
	}
}
