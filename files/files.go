// Package files locates files on disk and relocates them into target
// directories.
package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// CopyInto selects one file reachable from srcPath and copies it into
// targetDir, preserving its basename. srcPath may be a single file or a
// directory; directories are searched recursively in lexical order, so the
// selection is deterministic. A non-empty filename restricts the selection
// to files with that basename. The target directory is created if absent,
// and an existing destination file of the same name is overwritten — unless
// it is the selected source itself, which is an error rather than a
// truncating self-copy. Returns the destination path.
func CopyInto(srcPath, targetDir, filename string) (string, error) {
	src, err := selectSource(srcPath, filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create target directory: %w", err)
	}
	dest := filepath.Join(targetDir, filepath.Base(src))
	same, err := sameFile(src, dest)
	if err != nil {
		return "", err
	}
	if same {
		return "", fmt.Errorf("%s and %s are the same file", src, dest)
	}
	if err := copyFile(src, dest); err != nil {
		return "", err
	}

	slog.Info("copied file", "src", src, "dest", dest)
	return dest, nil
}

// selectSource resolves srcPath and the optional filename to the single
// file to copy.
func selectSource(srcPath, filename string) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("stat source: %w", err)
	}

	if !info.IsDir() {
		if filename != "" && filepath.Base(srcPath) != filename {
			return "", fmt.Errorf("file %q not found at %s: %w", filename, srcPath, fs.ErrNotExist)
		}
		return srcPath, nil
	}

	return findInTree(srcPath, filename)
}

// findInTree walks dir and returns the first regular file, or the first
// one whose basename equals filename when filename is non-empty.
func findInTree(dir, filename string) (string, error) {
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if filename != "" && d.Name() != filename {
			return nil
		}
		found = path
		return fs.SkipAll
	})
	if err != nil {
		return "", fmt.Errorf("walk %s: %w", dir, err)
	}

	if found == "" {
		if filename != "" {
			return "", fmt.Errorf("file %q not found under %s: %w", filename, dir, fs.ErrNotExist)
		}
		return "", fmt.Errorf("no files under %s: %w", dir, fs.ErrNotExist)
	}
	return found, nil
}

// sameFile reports whether dest already exists and refers to the same
// file as src.
func sameFile(src, dest string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", src, err)
	}
	destInfo, err := os.Stat(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", dest, err)
	}
	return os.SameFile(srcInfo, destInfo), nil
}

// copyFile copies src to dest, truncating dest if it already exists.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy to %s: %w", dest, err)
	}
	return out.Close()
}
