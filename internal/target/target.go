// Package target implements the canonical package/target identifiers
// Bazel-style build files declare and reference: BazelPackage and
// BazelTarget, their parsing rules, their compact printed forms, and
// the total order the header index and DWYU engine rely on for
// deterministic output.
package target

import (
	"fmt"
	"strings"
)

// Package identifies a BUILD file's directory: Project is empty for
// the main workspace or "@name" for an external workspace; Path is
// slash-separated with no leading or trailing slash.
type Package struct {
	Project string
	Path    string
}

// String renders the package in canonical "//path" or "@proj//path"
// form.
func (p Package) String() string {
	return p.Project + "//" + p.Path
}

// Compare gives Package a total order: Project first (so every main
// workspace package, with empty Project, sorts before any external
// workspace), then Path, both ordinary lexicographic string compares.
func (p Package) Compare(other Package) int {
	if c := strings.Compare(p.Project, other.Project); c != 0 {
		return c
	}
	return strings.Compare(p.Path, other.Path)
}

// ParsePackage accepts "@proj//path", "//path", "@proj", and forms
// with a trailing ":target" (the target portion is stripped). Forms
// without "//" and without a leading "@" are rejected.
func ParsePackage(s string) (Package, error) {
	if s == "" {
		return Package{}, fmt.Errorf("target: empty package string")
	}
	project := ""
	rest := s
	if strings.HasPrefix(rest, "@") {
		idx := strings.Index(rest, "//")
		if idx < 0 {
			// Bare "@proj" shorthand: project only, empty path.
			if colon := strings.IndexByte(rest, ':'); colon >= 0 {
				rest = rest[:colon]
			}
			return Package{Project: rest}, nil
		}
		project = rest[:idx]
		rest = rest[idx:]
	}
	if !strings.HasPrefix(rest, "//") {
		return Package{}, fmt.Errorf("target: %q is not well-formed (must start with // or @)", s)
	}
	rest = rest[len("//"):]
	if colon := strings.IndexByte(rest, ':'); colon >= 0 {
		rest = rest[:colon]
	}
	rest = strings.Trim(rest, "/")
	return Package{Project: project, Path: rest}, nil
}

// LastPathElement returns the final slash-separated component of the
// package's path, used to decide whether a target's name matches it
// for the compact printed form.
func (p Package) LastPathElement() string {
	if p.Path == "" {
		return ""
	}
	if idx := strings.LastIndexByte(p.Path, '/'); idx >= 0 {
		return p.Path[idx+1:]
	}
	return p.Path
}

// Target is a fully-resolved reference to a build rule: the package
// that declares it plus its name within that package.
type Target struct {
	Package Package
	Name    string
}

// String renders t in full canonical form, "//path:name" (with the
// "@proj" prefix when external), never using the compact shorthand -
// use ToStringRelativeTo for that.
func (t Target) String() string {
	return t.Package.String() + ":" + t.Name
}

// ToStringRelativeTo renders t the way a human would write it by hand
// relative to ctx: a bare ":name" when the two share a package, else
// the full canonical form, using the compact "//a/b/c" shorthand when
// the target's name equals its package's last path element.
func (t Target) ToStringRelativeTo(ctx Package) string {
	if t.Package.Compare(ctx) == 0 {
		return ":" + t.Name
	}
	if t.Name == t.Package.LastPathElement() {
		return t.Package.String()
	}
	return t.String()
}

// Compare gives Target a total order (package, then name), for use as
// set/map keys and for deterministic edit-stream ordering.
func (t Target) Compare(other Target) int {
	if c := t.Package.Compare(other.Package); c != 0 {
		return c
	}
	return strings.Compare(t.Name, other.Name)
}

// LooksWellformed reports whether s could plausibly be a target
// reference at all - it begins with ':', "//", or '@'. It is a cheap
// pre-filter, not a parse.
func LooksWellformed(s string) bool {
	return strings.HasPrefix(s, ":") || strings.HasPrefix(s, "//") || strings.HasPrefix(s, "@")
}

// ParseTarget accepts ":name", "name", "@workspace", "//path",
// "//path:name", "@ws//path", "@ws//path:name". A bare relative target
// (":name" or a bare "name") inherits ctx's package. "@foo" shorthand
// canonicalises to "@foo//" with target name "foo". "//a/b/c" without
// a ":name" suffix canonicalises to "//a/b/c:c".
func ParseTarget(s string, ctx Package) (Target, error) {
	if s == "" {
		return Target{}, fmt.Errorf("target: empty target string")
	}

	if strings.HasPrefix(s, ":") {
		return Target{Package: ctx, Name: s[1:]}, nil
	}

	if strings.HasPrefix(s, "@") && !strings.Contains(s, "//") {
		// "@foo" shorthand: canonicalises to "@foo//" named "foo".
		name := s[1:]
		if colon := strings.IndexByte(name, ':'); colon >= 0 {
			// "@foo:bar" - explicit name overrides the shorthand.
			return Target{Package: Package{Project: "@" + name[:colon]}, Name: name[colon+1:]}, nil
		}
		return Target{Package: Package{Project: "@" + name}, Name: name}, nil
	}

	if !strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "@") {
		// Bare "name": relative target in ctx's package.
		return Target{Package: ctx, Name: s}, nil
	}

	pkgPart := s
	name := ""
	hasExplicitName := false
	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		pkgPart = s[:colon]
		name = s[colon+1:]
		hasExplicitName = true
	}
	pkg, err := ParsePackage(pkgPart)
	if err != nil {
		return Target{}, err
	}
	if !hasExplicitName {
		name = pkg.LastPathElement()
	}
	return Target{Package: pkg, Name: name}, nil
}
