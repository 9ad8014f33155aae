// Package archive extracts zip archives into local directories.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotZip is returned when the file to extract does not carry a .zip extension.
var ErrNotZip = errors.New("not a zip archive")

// ExtractZip extracts every member of the zip archive at zipPath into
// extractDir, creating the directory and any missing parents. An empty
// extractDir derives the directory from zipPath with its .zip suffix
// removed. Returns the extraction directory path.
//
// Extraction is not atomic: a failure partway through leaves the members
// extracted so far on disk.
func ExtractZip(zipPath, extractDir string) (string, error) {
	info, err := os.Stat(zipPath)
	if err != nil {
		return "", fmt.Errorf("stat archive: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("archive %s is a directory: %w", zipPath, fs.ErrNotExist)
	}

	ext := filepath.Ext(zipPath)
	if !strings.EqualFold(ext, ".zip") {
		return "", fmt.Errorf("%s: %w", zipPath, ErrNotZip)
	}

	if extractDir == "" {
		extractDir = strings.TrimSuffix(zipPath, ext)
	}
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return "", fmt.Errorf("create extraction directory: %w", err)
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = r.Close() }()

	for _, member := range r.File {
		if err := extractMember(member, extractDir); err != nil {
			return "", err
		}
	}

	slog.Info("extracted archive", "archive", zipPath, "dir", extractDir)
	return extractDir, nil
}

// extractMember writes one archive member under dir. Member names that
// would resolve outside dir are rejected.
func extractMember(member *zip.File, dir string) error {
	name := filepath.FromSlash(member.Name)
	if !filepath.IsLocal(name) {
		return fmt.Errorf("archive member %q escapes the extraction directory", member.Name)
	}
	target := filepath.Join(dir, name)

	if member.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", target, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", target, err)
	}

	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("open archive member %s: %w", member.Name, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, member.Mode())
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	return dst.Close()
}
