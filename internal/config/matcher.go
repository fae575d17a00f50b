package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a path (relative to a project's root, always
// slash-separated) should be visited, combining a Config's Include/
// Exclude globs with an optional .gitignore.
type Matcher struct {
	include   []string
	exclude   []string
	gitignore []string
}

// NewMatcher builds a Matcher from cfg, loading root's .gitignore when
// cfg.RespectGitignore is set. A missing .gitignore is not an error.
func NewMatcher(cfg *Config, root string) *Matcher {
	m := &Matcher{include: cfg.Include, exclude: cfg.Exclude}
	if cfg.RespectGitignore {
		m.gitignore = loadGitignore(root)
	}
	return m
}

// Match reports whether relPath (slash-separated, relative to the
// project root) should be visited: it must match Include when Include
// is non-empty, and must match neither Exclude nor the loaded
// .gitignore patterns.
func (m *Matcher) Match(relPath string) bool {
	if len(m.include) > 0 && !matchesAny(m.include, relPath) {
		return false
	}
	if matchesAny(m.exclude, relPath) {
		return false
	}
	if matchesAny(m.gitignore, relPath) {
		return false
	}
	return true
}

func matchesAny(patterns []string, relPath string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
		// A gitignore-style directory pattern ("node_modules") should
		// also match anything underneath it, not just the bare name.
		if ok, _ := doublestar.Match(p+"/**", relPath); ok {
			return true
		}
	}
	return false
}

// loadGitignore reads root/.gitignore and converts each non-comment,
// non-blank line into a doublestar pattern anchored the way git
// anchors it: a leading "/" ties the pattern to root, otherwise it may
// match at any depth ("**/pattern").
func loadGitignore(root string) []string {
	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negate := strings.HasPrefix(line, "!")
		if negate {
			// Negated gitignore patterns (re-including a previously
			// excluded path) have no Include-side equivalent here;
			// skipping them just means the broader exclude still
			// applies, which is the conservative behavior.
			continue
		}
		anchored := strings.HasPrefix(line, "/")
		line = strings.TrimPrefix(line, "/")
		line = strings.TrimSuffix(line, "/")
		if anchored {
			patterns = append(patterns, line)
		} else {
			patterns = append(patterns, "**/"+line)
		}
	}
	return patterns
}
