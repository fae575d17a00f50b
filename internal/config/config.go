// Package config loads the project-local ".bant.kdl" file: the project
// root, include/exclude globs, whether to respect .gitignore, and DWYU
// tuning knobs. It is optional - a project with no ".bant.kdl" gets the
// defaults below, and CLI flags always override whatever the file says.
package config

// Config is the fully-resolved project configuration: the parsed
// ".bant.kdl" file (if any) with CLI overrides already applied.
type Config struct {
	Project Project
	DWYU    DWYU

	// Include and Exclude are doublestar glob patterns matched against
	// paths relative to Project.Root. A BUILD file is visited only if
	// it matches Include (when non-empty) and matches no Exclude
	// pattern.
	Include []string
	Exclude []string

	// RespectGitignore additionally excludes anything the project's
	// .gitignore would, on top of Exclude.
	RespectGitignore bool
}

// Project describes where the workspace lives.
type Project struct {
	Root string
}

// DWYU tunes the "depend on what you use" analysis.
type DWYU struct {
	// KnownLibraries are label prefixes (e.g. "@com_google_absl"),
	// matched against a dep's canonical target string. A declared dep
	// matching one is treated as a known library - eligible for a
	// "remove" edit when unused - even if no cc_library for it was
	// parsed.
	KnownLibraries []string

	// SourceSearchPaths are additional roots (relative to Project.Root)
	// searched for a target's sources/headers after the built-in
	// locations (the package directory, then bazel-out/host/bin and
	// bazel-bin).
	SourceSearchPaths []string
}

// Default returns the configuration used when no ".bant.kdl" exists.
func Default(root string) *Config {
	return &Config{
		Project:          Project{Root: root},
		RespectGitignore: true,
		Exclude: []string{
			"**/.git/**",
			"**/bazel-*/**",
		},
	}
}
