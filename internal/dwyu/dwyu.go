// Package dwyu implements the "Depend On What You Use" analysis:
// cross-referencing each buildable target's sources against the header
// index to find deps that should be added or removed.
package dwyu

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hzeller/bant/internal/config"
	lciErrors "github.com/hzeller/bant/internal/errors"
	"github.com/hzeller/bant/internal/headerindex"
	"github.com/hzeller/bant/internal/include"
	"github.com/hzeller/bant/internal/project"
	"github.com/hzeller/bant/internal/query"
	"github.com/hzeller/bant/internal/target"
)

// maxConcurrentReads bounds how many targets' sources are read and
// scanned for includes at once. The header index is built and frozen
// before Run starts (spec.md §5), so concurrent lookups against it are
// safe; only the slice of per-target results needs to be assembled
// back into deterministic visit order before edits are emitted.
const maxConcurrentReads = 16

var buildableRuleNames = map[string]bool{
	"cc_library": true,
	"cc_binary":  true,
	"cc_test":    true,
}

// Edit is one buildozer command the analysis wants applied.
type Edit struct {
	Verb    string // "add" or "remove"
	Dep     string // canonical or ":relative" target string
	Subject target.Target
}

// String renders e the way spec.md §6 specifies:
// buildozer '<verb> deps <target>' <subject>
func (e Edit) String() string {
	return fmt.Sprintf("buildozer '%s deps %s' %s", e.Verb, e.Dep, e.Subject)
}

// targetResult is the per-target outcome of reading and scanning its
// sources, computed concurrently; edits are derived from it afterward
// in deterministic visit order.
type targetResult struct {
	self              target.Target
	declaredDepsOrder []string // raw dep strings, in BUILD-file declaration order
	needed            map[target.Target]bool
	allAccountedFor   bool
}

// Run performs the DWYU analysis over every main-workspace buildable
// target in p, using idx to resolve includes to their owning target
// and cfg for known-library trust and extra source search paths. It
// reports malformed dep strings and source read failures to errOut
// and tallies the malformed dep strings in counter; it never aborts
// the run.
func Run(p *project.ParsedProject, idx *headerindex.Index, cfg *config.Config, errOut io.Writer, counter *lciErrors.Counter) []Edit {
	knownLibraries := collectKnownLibraries(p)
	cache := include.NewCache()

	type job struct {
		pkg    target.Package
		params query.TargetParameters
	}
	var jobs []job
	for _, filename := range p.Order {
		f := p.Files[filename]
		if f.Package.Project != "" {
			continue // externals are skipped as a policy choice
		}
		for _, params := range query.FindTargets(f.Statements, buildableRuleNames) {
			if params.Name == "" {
				continue
			}
			jobs = append(jobs, job{pkg: f.Package, params: params})
		}
	}

	results := make([]*targetResult, len(jobs))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(maxConcurrentReads)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			results[i] = scanTarget(j.pkg, j.params, cfg, idx, cache, errOut)
			return nil
		})
	}
	_ = g.Wait() // scanTarget records failures as data; it never returns an error

	var edits []Edit
	for _, r := range results {
		edits = append(edits, computeEdits(r, knownLibraries, cfg, errOut, counter)...)
	}
	return edits
}

// collectKnownLibraries is every non-alwayslink cc_library across the
// whole project (including external workspaces - a vendored library is
// just as safe to stop depending on as a project-local one).
func collectKnownLibraries(p *project.ParsedProject) map[target.Target]bool {
	known := make(map[target.Target]bool)
	for _, filename := range p.Order {
		f := p.Files[filename]
		for _, params := range query.FindTargets(f.Statements, map[string]bool{"cc_library": true}) {
			if params.Name == "" || params.Alwayslink {
				continue
			}
			known[target.Target{Package: f.Package, Name: params.Name}] = true
		}
	}
	return known
}

func isKnownLibrary(t target.Target, known map[target.Target]bool, cfg *config.Config) bool {
	if known[t] {
		return true
	}
	if cfg == nil {
		return false
	}
	canonical := t.String()
	for _, prefix := range cfg.DWYU.KnownLibraries {
		if strings.HasPrefix(canonical, prefix) {
			return true
		}
	}
	return false
}

// scanTarget reads every source of one target (srcs ∪ hdrs), extracts
// the headers each includes, and resolves them against idx to build
// the target's "needed" set.
func scanTarget(pkg target.Package, params query.TargetParameters, cfg *config.Config, idx *headerindex.Index, cache *include.Cache, errOut io.Writer) *targetResult {
	r := &targetResult{
		self:              target.Target{Package: pkg, Name: params.Name},
		declaredDepsOrder: params.DepsList,
		needed:            make(map[target.Target]bool),
		allAccountedFor:   true,
	}

	sources := append(append([]string{}, params.SrcsList...), params.HdrsList...)
	for _, s := range sources {
		content, ok := readSource(pkg, s, cfg)
		if !ok {
			r.allAccountedFor = false
			if errOut != nil {
				fmt.Fprintf(errOut, "%s: could not read source %q, presumed generated\n", r.self, s)
			}
			continue
		}
		for _, headerPath := range cache.Extract(content) {
			provider, ok := idx.Lookup(headerPath)
			if !ok {
				r.allAccountedFor = false
				continue
			}
			if provider == r.self {
				continue
			}
			r.needed[provider] = true
		}
	}
	return r
}

// readSource tries to read s on disk, in the search order spec.md
// §4.10 specifies: package.path/s, bazel-out/host/bin/package.path/s,
// bazel-bin/package.path/s, then any additional cfg.DWYU roots.
func readSource(pkg target.Package, s string, cfg *config.Config) (string, bool) {
	root := ""
	if cfg != nil {
		root = cfg.Project.Root
	}
	pkgRelative := filepath.Join(pkg.Path, s)

	candidates := []string{
		pkgRelative,
		filepath.Join("bazel-out", "host", "bin", pkgRelative),
		filepath.Join("bazel-bin", pkgRelative),
	}
	if cfg != nil {
		for _, extra := range cfg.DWYU.SourceSearchPaths {
			candidates = append(candidates, filepath.Join(extra, pkgRelative))
		}
	}

	for _, c := range candidates {
		full := c
		if root != "" {
			full = filepath.Join(root, c)
		}
		if content, err := os.ReadFile(full); err == nil {
			return string(content), true
		}
	}
	return "", false
}

// computeEdits turns one target's scan result into its remove/add
// edit stream, following spec.md §4.10 steps 4-5.
func computeEdits(r *targetResult, knownLibraries map[target.Target]bool, cfg *config.Config, errOut io.Writer, counter *lciErrors.Counter) []Edit {
	if r == nil {
		return nil
	}
	needed := make(map[target.Target]bool, len(r.needed))
	for t := range r.needed {
		needed[t] = true
	}

	var edits []Edit
	for _, depStr := range r.declaredDepsOrder {
		dep, err := target.ParseTarget(depStr, r.self.Package)
		if err != nil {
			if errOut != nil {
				fmt.Fprintf(errOut, "%s: malformed dep %q: %v\n", r.self, depStr, err)
			}
			counter.Add(lciErrors.Semantic)
			continue
		}
		if needed[dep] {
			delete(needed, dep)
			continue
		}
		if r.allAccountedFor && isKnownLibrary(dep, knownLibraries, cfg) {
			// D is emitted exactly as it was declared in the BUILD
			// file, per spec.md §4.10 scenario 6 ("remove deps
			// :unused"), not recanonicalised.
			edits = append(edits, Edit{Verb: "remove", Dep: depStr, Subject: r.self})
		}
	}

	residual := make([]target.Target, 0, len(needed))
	for t := range needed {
		residual = append(residual, t)
	}
	sort.Slice(residual, func(i, j int) bool { return residual[i].Compare(residual[j]) < 0 })
	for _, t := range residual {
		edits = append(edits, Edit{Verb: "add", Dep: t.ToStringRelativeTo(r.self.Package), Subject: r.self})
	}

	return edits
}
