// Command bant navigates and analyzes Bazel-style BUILD files: it can
// list the BUILD files a project has, print their reconstructed parse
// tree, print the header-to-target index, or run the "Depend On What
// You Use" analysis and emit buildozer edits.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/hzeller/bant/internal/config"
	"github.com/hzeller/bant/internal/debug"
	lciErrors "github.com/hzeller/bant/internal/errors"
	"github.com/hzeller/bant/internal/dwyu"
	"github.com/hzeller/bant/internal/headerindex"
	"github.com/hzeller/bant/internal/project"
	"github.com/hzeller/bant/internal/version"
)

var exitCode int

func main() {
	app := &cli.App{
		Name:                   "bant",
		Usage:                  "Bazel-style BUILD file navigation and DWYU analysis",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"C"},
				Usage:   "change to `dir` before doing anything else",
			},
			&cli.BoolFlag{
				Name:    "no-external",
				Aliases: []string{"x"},
				Usage:   "exclude external workspaces (bazel-*/external)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress the info stream",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print collect/parse stats to stderr",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"L"},
				Usage:   "list the BUILD files found, without parsing the project",
			},
			&cli.BoolFlag{
				Name:    "print",
				Aliases: []string{"P"},
				Usage:   "print the reconstructed parse tree",
			},
			&cli.BoolFlag{
				Name:    "errors-only",
				Aliases: []string{"e"},
				Usage:   "with -P, restrict output to files that had a parse error",
			},
			&cli.BoolFlag{
				Name:    "headers",
				Aliases: []string{"H"},
				Usage:   "print the header-to-target table",
			},
			&cli.BoolFlag{
				Name:    "dwyu",
				Aliases: []string{"D"},
				Usage:   "emit buildozer edits from the Depend-On-What-You-Use analysis",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func run(c *cli.Context) error {
	if c.Bool("quiet") {
		debug.SetOutput(nil)
	} else {
		debug.SetOutput(os.Stderr)
	}
	debug.SetVerbose(c.Bool("verbose"))

	if err := countSet(c, "list", "print", "headers", "dwyu"); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	root := c.String("root")
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return cli.Exit(fmt.Sprintf("resolving root %q: %v", root, err), 1)
	}
	if err := os.Chdir(absRoot); err != nil {
		return cli.Exit(fmt.Sprintf("changing to %q: %v", absRoot, err), 1)
	}

	cfg, err := config.LoadKDL(absRoot)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cfg.Project.Root = absRoot
	includeExternal := !c.Bool("no-external")

	if c.Bool("list") {
		// bant.cc's Command::kListBazelFiles short-circuits before
		// ParsedProject::FromFilesystem: no parsing needed just to
		// enumerate the files on disk.
		matcher := config.NewMatcher(cfg, absRoot)
		main, external, err := project.CollectBuildFiles(absRoot, includeExternal, matcher)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		for _, f := range main {
			fmt.Println(f)
		}
		for _, f := range external {
			fmt.Println(f)
		}
		return nil
	}

	counter := lciErrors.NewCounter()
	proj, err := project.FromFilesystem(cfg, includeExternal, os.Stderr)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	switch {
	case c.Bool("print"):
		project.PrintProject(os.Stdout, proj, c.Bool("errors-only"))
	case c.Bool("headers"):
		idx := headerindex.Build(proj, os.Stderr, counter)
		headerindex.Print(os.Stdout, idx)
	case c.Bool("dwyu"):
		idx := headerindex.Build(proj, os.Stderr, counter)
		edits := dwyu.Run(proj, idx, cfg, os.Stderr, counter)
		dwyu.Print(os.Stdout, edits)
	default:
		// No command: parse silently, exit with the error count.
	}

	debug.Verbosef(os.Stderr, "collected %d files in %s, parsed %d files (%d bytes) in %s",
		proj.Collect.Count, proj.Collect.Duration, proj.Parse.Count, proj.Parse.Bytes, proj.Parse.Duration)

	exitCode = proj.ErrorCount
	return nil
}

// countSet errors out if more than one of the named boolean flags is
// set - -L, -P, -H, -D are mutually exclusive commands.
func countSet(c *cli.Context, names ...string) error {
	set := 0
	for _, n := range names {
		if c.Bool(n) {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("-L, -P, -H, -D are mutually exclusive")
	}
	return nil
}
