package project

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzeller/bant/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectBuildFilesSkipsTmpAndGit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "BUILD"), "")
	writeFile(t, filepath.Join(root, "pkg", "BUILD.bazel"), "")
	writeFile(t, filepath.Join(root, "_tmp", "BUILD"), "")
	writeFile(t, filepath.Join(root, ".git", "BUILD"), "")

	main, external, err := CollectBuildFiles(root, false, nil)
	require.NoError(t, err)
	assert.Empty(t, external)
	assert.Len(t, main, 2)
	for _, f := range main {
		assert.NotContains(t, f, "_tmp")
		assert.NotContains(t, f, ".git")
	}
}

func TestCollectBuildFilesWalksExternalSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "BUILD"), "")

	realExternal := t.TempDir()
	writeFile(t, filepath.Join(realExternal, "foo", "BUILD"), "")

	bazelOut := filepath.Join(root, "bazel-"+filepath.Base(root))
	require.NoError(t, os.MkdirAll(bazelOut, 0o755))
	require.NoError(t, os.Symlink(realExternal, filepath.Join(bazelOut, "external")))

	main, external, err := CollectBuildFiles(root, true, nil)
	require.NoError(t, err)
	assert.Len(t, main, 1)
	require.Len(t, external, 1)
	assert.Contains(t, external[0], filepath.Join("foo", "BUILD"))
}

func TestCollectBuildFilesHonorsMatcher(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep", "BUILD"), "")
	writeFile(t, filepath.Join(root, "skip", "BUILD"), "")

	cfg := &config.Config{Exclude: []string{"skip/**"}}
	matcher := config.NewMatcher(cfg, root)

	main, _, err := CollectBuildFiles(root, false, matcher)
	require.NoError(t, err)
	require.Len(t, main, 1)
	assert.Contains(t, main[0], filepath.Join("keep", "BUILD"))
}

func TestFromFilesystemParsesAndAggregates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "BUILD"), `cc_library(name = "x", hdrs = ["x.h"])`)
	writeFile(t, filepath.Join(root, "b", "BUILD"), `cc_library(name = (`) // malformed

	cfg := config.Default(root)
	p, err := FromFilesystem(cfg, false, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Collect.Count)
	assert.Equal(t, 1, p.ErrorCount)

	aFile := p.Files[filepath.Join(root, "a", "BUILD")]
	require.NotNil(t, aFile)
	assert.Equal(t, "a", aFile.Package.Path)
	require.Len(t, aFile.Statements, 1)
}

func TestPackageForFileExternalWorkspace(t *testing.T) {
	root := "/ws"
	filename := "/ws/bazel-ws/external/foo/pkg/BUILD"
	pkg := packageForFile(root, filename)
	assert.Equal(t, "@foo", pkg.Project)
	assert.Equal(t, "pkg", pkg.Path)
}
