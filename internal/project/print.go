package project

import (
	"fmt"
	"io"

	"github.com/hzeller/bant/internal/ast"
)

// PrintProject writes the reconstructed parse tree of every file in p
// to w, in discovery order. When errorsOnly is true, only files whose
// parse recorded an error are printed (the "-P -e" combination).
func PrintProject(w io.Writer, p *ParsedProject, errorsOnly bool) {
	for _, filename := range p.Order {
		f := p.Files[filename]
		if errorsOnly && f.Errors == "" {
			continue
		}
		fmt.Fprintf(w, "# %s\n", f.Filename)
		for _, stmt := range f.Statements {
			fmt.Fprintln(w, ast.Print(stmt))
		}
		if f.Errors != "" {
			fmt.Fprint(w, f.Errors)
		}
	}
}
