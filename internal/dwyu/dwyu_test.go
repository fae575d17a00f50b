package dwyu

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/config"
	lciErrors "github.com/hzeller/bant/internal/errors"
	"github.com/hzeller/bant/internal/headerindex"
	"github.com/hzeller/bant/internal/project"
	"github.com/hzeller/bant/internal/target"
)

func strScalar(v string) *ast.StringScalar { return &ast.StringScalar{Text: `"` + v + `"`} }

func strListNode(values ...string) *ast.List {
	items := make([]ast.Node, len(values))
	for i, v := range values {
		items[i] = strScalar(v)
	}
	return &ast.List{Kind: ast.ListKindList, Items: items}
}

func kw(name string, value ast.Node) ast.Node {
	return &ast.Assignment{Target: &ast.Identifier{Name: name}, Value: value}
}

func ccLibrary(name string, hdrs []string) ast.Node {
	return &ast.FunCall{
		Name: &ast.Identifier{Name: "cc_library"},
		Args: &ast.List{Kind: ast.ListKindTuple, Items: []ast.Node{
			kw("name", strScalar(name)),
			kw("hdrs", strListNode(hdrs...)),
		}},
	}
}

func ccLibraryWithSrcsDeps(name string, srcs, deps []string) ast.Node {
	return &ast.FunCall{
		Name: &ast.Identifier{Name: "cc_library"},
		Args: &ast.List{Kind: ast.ListKindTuple, Items: []ast.Node{
			kw("name", strScalar(name)),
			kw("srcs", strListNode(srcs...)),
			kw("deps", strListNode(deps...)),
		}},
	}
}

func TestDWYUEndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "y.cc"), []byte(`#include "x.h"`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.h"), []byte("// no includes\n"), 0o644))

	pkg := target.Package{}
	xFile := &project.File{Package: pkg, Statements: []ast.Node{ccLibrary("x", []string{"x.h"})}}
	yFile := &project.File{Package: pkg, Statements: []ast.Node{
		ccLibrary("unused", nil),
		ccLibraryWithSrcsDeps("y", []string{"y.cc"}, []string{":x", ":unused"}),
	}}

	p := &project.ParsedProject{
		Files: map[string]*project.File{"BUILD": xFile, "BUILD2": yFile},
		Order: []string{"BUILD", "BUILD2"},
	}

	counter := lciErrors.NewCounter()
	idx := headerindex.Build(p, nil, counter)

	cfg := config.Default(root)
	var errOut bytes.Buffer
	edits := Run(p, idx, cfg, &errOut, counter)

	require.Len(t, edits, 1)
	assert.Equal(t, "buildozer 'remove deps :unused' //:y", edits[0].String())
}

func TestDWYUUnreadableSourceSuppressesRemoveButStillAdds(t *testing.T) {
	root := t.TempDir()
	// y.cc is readable and needs :x; gen.cc is declared but not written
	// to disk: unreadable, so y's sources are not all accounted for.
	require.NoError(t, os.WriteFile(filepath.Join(root, "y.cc"), []byte(`#include "x.h"`+"\n"), 0o644))

	pkg := target.Package{}
	xFile := &project.File{Package: pkg, Statements: []ast.Node{ccLibrary("x", []string{"x.h"})}}
	yFile := &project.File{Package: pkg, Statements: []ast.Node{
		ccLibrary("unused", nil),
		ccLibraryWithSrcsDeps("y", []string{"y.cc", "gen.cc"}, []string{":unused"}),
	}}

	p := &project.ParsedProject{
		Files: map[string]*project.File{"BUILD": xFile, "BUILD2": yFile},
		Order: []string{"BUILD", "BUILD2"},
	}

	counter := lciErrors.NewCounter()
	idx := headerindex.Build(p, nil, counter)
	cfg := config.Default(root)

	edits := Run(p, idx, cfg, nil, counter)
	require.Len(t, edits, 1, ":unused is not removed, the missing :x is still added")
	assert.Equal(t, "buildozer 'add deps :x' //:y", edits[0].String())
}

func TestDWYUSkipsExternalWorkspaces(t *testing.T) {
	root := t.TempDir()
	extFile := &project.File{
		Package:    target.Package{Project: "@ws"},
		Statements: []ast.Node{ccLibraryWithSrcsDeps("y", []string{"y.cc"}, []string{":unused"})},
	}
	p := &project.ParsedProject{
		Files: map[string]*project.File{"ext/BUILD": extFile},
		Order: []string{"ext/BUILD"},
	}
	counter := lciErrors.NewCounter()
	idx := headerindex.Build(p, nil, counter)
	cfg := config.Default(root)

	edits := Run(p, idx, cfg, nil, counter)
	assert.Empty(t, edits)
}
