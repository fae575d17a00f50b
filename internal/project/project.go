// Package project discovers a workspace's BUILD files, parses each one,
// and aggregates the results into a single ParsedProject: one shared
// ast.Arena, one posmap.Map per file, and the package identity derived
// from each file's location on disk.
package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unsafe"

	"github.com/hzeller/bant/internal/ast"
	"github.com/hzeller/bant/internal/config"
	"github.com/hzeller/bant/internal/debug"
	"github.com/hzeller/bant/internal/parser"
	"github.com/hzeller/bant/internal/posmap"
	"github.com/hzeller/bant/internal/scanner"
	"github.com/hzeller/bant/internal/target"
)

// Stat records count/duration/bytes for one phase of loading, matching
// spec.md's "two statistics records (collect + parse)".
type Stat struct {
	Count    int
	Duration time.Duration
	Bytes    int64
}

// File is one parsed BUILD file: its content, the position map the
// scanner built while reading it, its derived package identity, and
// the statement list the parser produced (possibly partial).
type File struct {
	Filename   string
	Content    string
	PosMap     *posmap.Map
	Package    target.Package
	Statements []ast.Node
	Errors     string // the text written to the parser's error stream, if any
}

// ParsedProject is the result of FromFilesystem: every discovered BUILD
// file, parsed, plus the single arena every file's AST nodes were
// allocated from. The arena and every File's Content buffer share the
// project's lifetime; nothing in a File outlives the ParsedProject.
type ParsedProject struct {
	Files   map[string]*File // keyed by filename, insertion order not preserved
	Order   []string         // filenames in discovery order, for deterministic iteration
	Arena   *ast.Arena
	Collect Stat
	Parse   Stat

	// ErrorCount is the number of files whose parse had HadError set,
	// plus the number of BUILD files that could not be read - the CLI's
	// exit status per spec.md §6.
	ErrorCount int
}

const buildArenaBlockSize = 256

// FromFilesystem discovers and parses every BUILD/BUILD.bazel file
// reachable from cfg.Project.Root, honoring cfg's include/exclude globs
// and .gitignore. When includeExternal is false, external workspaces
// (bazel-<basename>/external) are not walked at all.
func FromFilesystem(cfg *config.Config, includeExternal bool, errOut io.Writer) (*ParsedProject, error) {
	root := cfg.Project.Root
	matcher := config.NewMatcher(cfg, root)

	collectStart := time.Now()
	mainFiles, externalFiles, err := CollectBuildFiles(root, includeExternal, matcher)
	if err != nil {
		return nil, err
	}
	allFiles := append(append([]string{}, mainFiles...), externalFiles...)

	project := &ParsedProject{
		Files: make(map[string]*File, len(allFiles)),
		Arena: ast.NewArena(buildArenaBlockSize),
	}
	project.Collect = Stat{Count: len(allFiles), Duration: time.Since(collectStart)}

	parseStart := time.Now()
	var parsedBytes int64
	for _, filename := range allFiles {
		content, readErr := os.ReadFile(filename)
		if readErr != nil {
			debug.Infof("%s: %v", filename, readErr)
			project.ErrorCount++
			continue
		}
		parsedBytes += int64(len(content))

		pkg := packageForFile(root, filename)
		posMap := posmap.New(content)
		// The scanner's string aliases content's bytes (never modified
		// after ReadFile), so token texts point into the same buffer the
		// position map resolves offsets against.
		text := unsafe.String(unsafe.SliceData(content), len(content))
		s := scanner.New(text, posMap)

		var errBuf strings.Builder
		p := parser.New(s, project.Arena, &errBuf, filename)
		result := p.Parse()

		f := &File{
			Filename:   filename,
			Content:    text,
			PosMap:     posMap,
			Package:    pkg,
			Statements: result.Statements,
			Errors:     errBuf.String(),
		}
		project.Files[filename] = f
		project.Order = append(project.Order, filename)
		if result.HadError {
			project.ErrorCount++
		}
	}
	project.Parse = Stat{Count: len(allFiles), Duration: time.Since(parseStart), Bytes: parsedBytes}

	return project, nil
}

// packageForFile derives a file's BazelPackage from its path on disk,
// relative to root. A path under ".../external/<ws>/..." belongs to
// external workspace "@<ws>"; otherwise it belongs to the main
// workspace, identified by its directory's path relative to root.
func packageForFile(root, filename string) target.Package {
	rel, err := filepath.Rel(root, filename)
	if err != nil {
		rel = filename
	}
	rel = filepath.ToSlash(rel)

	if idx := strings.Index(rel, "external/"); idx >= 0 {
		afterExternal := rel[idx+len("external/"):]
		if slash := strings.IndexByte(afterExternal, '/'); slash >= 0 {
			ws := afterExternal[:slash]
			pkgPath := dirOf(afterExternal[slash+1:])
			return target.Package{Project: "@" + ws, Path: pkgPath}
		}
	}

	return target.Package{Path: dirOf(rel)}
}

// dirOf is filepath.Dir for already-slash-normalized paths, with the
// project's "no leading/trailing slash, '.' means empty" convention.
func dirOf(slashPath string) string {
	idx := strings.LastIndexByte(slashPath, '/')
	if idx < 0 {
		return ""
	}
	return slashPath[:idx]
}

func isBuildFilename(name string) bool {
	return name == "BUILD" || name == "BUILD.bazel"
}

// CollectBuildFiles walks root the way spec.md §6 describes: a
// recursive walk excluding directories named "_tmp" and ".git", never
// following symlinks. When includeExternal is true, it additionally
// walks root/bazel-<basename(root)>/external, following symlinks there
// (the external workspace roots are themselves symlinks). matcher, if
// non-nil, additionally filters files by the project's include/exclude
// globs and .gitignore.
func CollectBuildFiles(root string, includeExternal bool, matcher *config.Matcher) (mainFiles, externalFiles []string, err error) {
	mainFiles, err = walkBuildFiles(root, root, false, matcher)
	if err != nil {
		return nil, nil, err
	}

	if includeExternal {
		externalRoot := filepath.Join(root, "bazel-"+filepath.Base(root), "external")
		if info, statErr := os.Stat(externalRoot); statErr == nil && info.IsDir() {
			externalFiles, err = walkBuildFiles(externalRoot, root, true, matcher)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	return mainFiles, externalFiles, nil
}

// walkBuildFiles recursively lists BUILD files under dir. relRoot is
// the root used to compute the relative path handed to matcher.
// followSymlinks governs whether a symlinked directory is descended
// into.
func walkBuildFiles(dir, relRoot string, followSymlinks bool, matcher *config.Matcher) ([]string, error) {
	var out []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		if entry.Type()&os.ModeSymlink != 0 {
			if !followSymlinks {
				continue
			}
			info, err := os.Stat(full) // follows the link
			if err != nil {
				continue // broken symlink, skip
			}
			if info.IsDir() {
				children, err := walkBuildFiles(full, relRoot, followSymlinks, matcher)
				if err != nil {
					return nil, err
				}
				out = append(out, children...)
			}
			continue
		}

		if entry.IsDir() {
			if name == "_tmp" || name == ".git" {
				continue
			}
			if matcher != nil {
				rel, _ := filepath.Rel(relRoot, full)
				if !matcher.Match(filepath.ToSlash(rel)) {
					continue
				}
			}
			children, err := walkBuildFiles(full, relRoot, followSymlinks, matcher)
			if err != nil {
				return nil, err
			}
			out = append(out, children...)
			continue
		}

		if !isBuildFilename(name) {
			continue
		}
		if matcher != nil {
			rel, _ := filepath.Rel(relRoot, full)
			if !matcher.Match(filepath.ToSlash(rel)) {
				continue
			}
		}
		out = append(out, full)
	}
	return out, nil
}
