package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesIncludeExclude(t *testing.T) {
	dir := t.TempDir()
	mk := func(rel string) string {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("class X {}"), 0o644))
		return path
	}

	root := mk("Root.java")
	nested := mk("src/main/App.java")
	mk("src/generated/Gen.java")
	mk("README.md")

	files, err := Files(dir, []string{"**/*.java"}, []string{"**/generated/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{root, nested}, files)
}

func TestFilesInvalidPattern(t *testing.T) {
	_, err := Files(t.TempDir(), []string{"[bad"}, nil)
	require.Error(t, err)
}

func TestFilesSkipsGitDir(t *testing.T) {
	dir := t.TempDir()
	gitFile := filepath.Join(dir, ".git", "Hook.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(gitFile), 0o755))
	require.NoError(t, os.WriteFile(gitFile, []byte("x"), 0o644))

	files, err := Files(dir, []string{"**/*.java"}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
