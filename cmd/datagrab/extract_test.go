package main

import (
	"archive/zip"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, members map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestExtractCommand_MissingArgument(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "accepts 1 arg")
}

func TestExtractCommand_NotZip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	notZip := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(notZip, []byte("plain text"), 0o644))

	cmd := exec.Command(binaryPath, "extract", notZip)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "not a zip archive")
}

func TestExtract_WritesFiles(t *testing.T) {
	tmp := t.TempDir()
	zipPath := filepath.Join(tmp, "sales.zip")
	writeZip(t, zipPath, map[string]string{"sales.csv": "id,amount\n1,100\n"})
	dir := filepath.Join(tmp, "out")

	rootCmd.SetArgs([]string{"extract", zipPath, "--dir", dir})
	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "sales.csv"))
}
