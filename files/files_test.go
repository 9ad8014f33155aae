package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCopyInto_SingleFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "report.csv")
	writeFile(t, src, "id,amount\n1,100\n")
	target := filepath.Join(tmp, "out")

	dest, err := CopyInto(src, target, "")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(target, "report.csv"), dest)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "id,amount\n1,100\n", string(got))
}

func TestCopyInto_SingleFileMatchingName(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "report.csv")
	writeFile(t, src, "a,b\n")

	dest, err := CopyInto(src, filepath.Join(tmp, "out"), "report.csv")

	require.NoError(t, err)
	assert.FileExists(t, dest)
}

func TestCopyInto_SingleFileNameMismatch(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "report.csv")
	writeFile(t, src, "a,b\n")

	_, err := CopyInto(src, filepath.Join(tmp, "out"), "other.csv")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCopyInto_DirectoryPicksFirstLexical(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	writeFile(t, filepath.Join(srcDir, "beta.csv"), "b\n")
	writeFile(t, filepath.Join(srcDir, "alpha.csv"), "a\n")

	dest, err := CopyInto(srcDir, filepath.Join(tmp, "out"), "")

	require.NoError(t, err)
	assert.Equal(t, "alpha.csv", filepath.Base(dest))
}

func TestCopyInto_DirectoryDescendsBeforeSiblings(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	writeFile(t, filepath.Join(srcDir, "a", "inner.csv"), "nested\n")
	writeFile(t, filepath.Join(srcDir, "b.csv"), "top\n")

	dest, err := CopyInto(srcDir, filepath.Join(tmp, "out"), "")

	require.NoError(t, err)
	assert.Equal(t, "inner.csv", filepath.Base(dest))
}

func TestCopyInto_SingleNestedFile(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	writeFile(t, filepath.Join(srcDir, "deep", "nested", "only.csv"), "id\n1\n")

	dest, err := CopyInto(srcDir, filepath.Join(tmp, "out"), "")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "out", "only.csv"), dest)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(got))
}

func TestCopyInto_NamedFileInNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	writeFile(t, filepath.Join(srcDir, "readme.txt"), "ignore\n")
	writeFile(t, filepath.Join(srcDir, "deep", "nested", "sales.csv"), "id\n1\n")

	dest, err := CopyInto(srcDir, filepath.Join(tmp, "out"), "sales.csv")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "out", "sales.csv"), dest)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(got))
}

func TestCopyInto_NamedFileAbsent(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	writeFile(t, filepath.Join(srcDir, "readme.txt"), "ignore\n")

	_, err := CopyInto(srcDir, filepath.Join(tmp, "out"), "sales.csv")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "sales.csv")
}

func TestCopyInto_EmptyDirectory(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))

	_, err := CopyInto(srcDir, filepath.Join(tmp, "out"), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCopyInto_MissingSource(t *testing.T) {
	tmp := t.TempDir()

	_, err := CopyInto(filepath.Join(tmp, "nope"), filepath.Join(tmp, "out"), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCopyInto_SameFileSingleSource(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "sales.csv")
	writeFile(t, src, "id,amount\n1,100\n")

	_, err := CopyInto(src, tmp, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "same file")
	got, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "id,amount\n1,100\n", string(got))
}

func TestCopyInto_SameFileDirectorySource(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "data")
	path := filepath.Join(srcDir, "only.csv")
	writeFile(t, path, "id\n1\n")

	_, err := CopyInto(srcDir, srcDir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "same file")
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(got))
}

func TestCopyInto_OverwritesExistingDestination(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "data.csv")
	writeFile(t, src, "new contents\n")
	target := filepath.Join(tmp, "out")
	writeFile(t, filepath.Join(target, "data.csv"), "old contents\n")

	dest, err := CopyInto(src, target, "")

	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new contents\n", string(got))
}
