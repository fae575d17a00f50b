// Package headerindex builds the global header -> defining-target map
// the DWYU engine resolves #include paths against: every cc_library's
// hdrs, keyed by "package/path + / + header".
package headerindex

import (
	"fmt"
	"io"
	"sort"

	lciErrors "github.com/hzeller/bant/internal/errors"
	"github.com/hzeller/bant/internal/project"
	"github.com/hzeller/bant/internal/query"
	"github.com/hzeller/bant/internal/target"
)

// Index is the header-path -> defining-target map. First writer wins;
// later insertions for the same path are diagnosed but never replace
// the existing entry.
type Index struct {
	entries map[string]target.Target
}

// New creates an empty Index.
func New() *Index {
	return &Index{entries: make(map[string]target.Target)}
}

// Lookup returns the target that publishes headerPath, if any.
func (idx *Index) Lookup(headerPath string) (target.Target, bool) {
	t, ok := idx.entries[headerPath]
	return t, ok
}

// Entry is one row of the index, for ordered iteration/printing.
type Entry struct {
	HeaderPath string
	Target     target.Target
}

// Entries returns every (header, target) pair, ordered by header path
// - the "ordered map" spec.md asks for.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, 0, len(idx.entries))
	for h, t := range idx.entries {
		out = append(out, Entry{HeaderPath: h, Target: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HeaderPath < out[j].HeaderPath })
	return out
}

// insert records headerPath -> t. If headerPath is already present with
// a different target, it reports a diagnostic to errOut and keeps the
// existing entry; the diagnostic is only counted toward counter when
// t's package is in the main workspace (externals commonly redefine
// headers).
func (idx *Index) insert(headerPath string, t target.Target, errOut io.Writer, counter *lciErrors.Counter) {
	if existing, ok := idx.entries[headerPath]; ok {
		if existing == t {
			return
		}
		isMainWorkspace := t.Package.Project == ""
		if errOut != nil {
			fmt.Fprintf(errOut, "duplicate header provider for %q: %s already provides it, %s also declares it\n",
				headerPath, existing, t)
		}
		if isMainWorkspace {
			counter.Add(lciErrors.Semantic)
		}
		return
	}
	idx.entries[headerPath] = t
}

// Build walks every file of p and returns the header index built from
// every cc_library(name=N, hdrs=[...]) found, reporting duplicate
// providers to errOut and tallying main-workspace conflicts in
// counter.
func Build(p *project.ParsedProject, errOut io.Writer, counter *lciErrors.Counter) *Index {
	idx := New()
	ruleNames := map[string]bool{"cc_library": true}

	for _, filename := range p.Order {
		f := p.Files[filename]
		for _, params := range query.FindTargets(f.Statements, ruleNames) {
			if params.Name == "" {
				continue
			}
			t := target.Target{Package: f.Package, Name: params.Name}
			for _, h := range params.HdrsList {
				headerPath := h
				if f.Package.Path != "" {
					headerPath = f.Package.Path + "/" + h
				}
				idx.insert(headerPath, t, errOut, counter)
			}
		}
	}
	return idx
}
