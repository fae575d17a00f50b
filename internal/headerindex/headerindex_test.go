package headerindex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lciErrors "github.com/hzeller/bant/internal/errors"
	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/project"
	"github.com/hzeller/bant/internal/target"
)

func fileWithLibrary(pkg target.Package, name string, hdrs ...string) *project.File {
	items := make([]ast.Node, len(hdrs))
	for i, h := range hdrs {
		items[i] = &ast.StringScalar{Text: `"` + h + `"`}
	}
	call := &ast.FunCall{
		Name: &ast.Identifier{Name: "cc_library"},
		Args: &ast.List{Kind: ast.ListKindTuple, Items: []ast.Node{
			&ast.Assignment{Target: &ast.Identifier{Name: "name"}, Value: &ast.StringScalar{Text: `"` + name + `"`}},
			&ast.Assignment{Target: &ast.Identifier{Name: "hdrs"}, Value: &ast.List{Kind: ast.ListKindList, Items: items}},
		}},
	}
	return &project.File{Package: pkg, Statements: []ast.Node{call}}
}

func TestBuildIndexesHeaders(t *testing.T) {
	pkg := target.Package{Path: "lib"}
	f := fileWithLibrary(pkg, "x", "x.h", "x_internal.h")
	p := &project.ParsedProject{
		Files: map[string]*project.File{"lib/BUILD": f},
		Order: []string{"lib/BUILD"},
	}

	counter := lciErrors.NewCounter()
	idx := Build(p, nil, counter)

	tgt, ok := idx.Lookup("lib/x.h")
	require.True(t, ok)
	assert.Equal(t, target.Target{Package: pkg, Name: "x"}, tgt)

	_, ok = idx.Lookup("lib/x_internal.h")
	assert.True(t, ok)
	assert.Equal(t, 0, counter.Total())
}

func TestBuildReportsDuplicateInMainWorkspace(t *testing.T) {
	pkgA := target.Package{Path: "a"}
	pkgB := target.Package{Path: "a"} // same package, two libraries, colliding header
	fA := fileWithLibrary(pkgA, "x", "shared.h")
	fB := fileWithLibrary(pkgB, "y", "shared.h")

	p := &project.ParsedProject{
		Files: map[string]*project.File{"a/BUILD": fA, "a/BUILD2": fB},
		Order: []string{"a/BUILD", "a/BUILD2"},
	}

	var errOut bytes.Buffer
	counter := lciErrors.NewCounter()
	idx := Build(p, &errOut, counter)

	tgt, ok := idx.Lookup("a/shared.h")
	require.True(t, ok)
	assert.Equal(t, "x", tgt.Name, "first writer wins")
	assert.Equal(t, 1, counter.Count(lciErrors.Semantic))
	assert.Contains(t, errOut.String(), "duplicate header provider")
}

func TestBuildDoesNotCountExternalWorkspaceDuplicates(t *testing.T) {
	pkg := target.Package{Project: "@ws", Path: "a"}
	fA := fileWithLibrary(pkg, "x", "shared.h")
	fB := fileWithLibrary(pkg, "y", "shared.h")

	p := &project.ParsedProject{
		Files: map[string]*project.File{"ext/BUILD": fA, "ext/BUILD2": fB},
		Order: []string{"ext/BUILD", "ext/BUILD2"},
	}

	counter := lciErrors.NewCounter()
	idx := Build(p, nil, counter)
	assert.Equal(t, 0, counter.Total())
	_, ok := idx.Lookup("a/shared.h")
	assert.True(t, ok)
}

func TestPrintPadsToWidestHeader(t *testing.T) {
	idx := New()
	idx.entries["a.h"] = target.Target{Package: target.Package{Path: "p"}, Name: "x"}
	idx.entries["longer/name.h"] = target.Target{Package: target.Package{Path: "p"}, Name: "y"}

	var buf bytes.Buffer
	Print(&buf, idx)
	assert.Equal(t, "a.h          \t//p:x\nlonger/name.h\t//p:y\n", buf.String())
}
