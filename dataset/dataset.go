// Package dataset fetches hosted datasets and loads them as dataframes.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"github.com/mateo/datagrab/files"
	"github.com/mateo/datagrab/table"
)

// Downloader fetches a dataset by handle and returns the local directory
// holding its files.
type Downloader interface {
	DatasetDownload(ctx context.Context, handle string) (string, error)
}

// Options configures Fetch.
type Options struct {
	// TargetDir is where the selected file is copied. Empty means a
	// "data" directory under the current working directory, resolved
	// when Fetch runs.
	TargetDir string
	// Filename selects a specific file from the dataset. Empty selects
	// the first file in lexical order.
	Filename string
}

// Fetch downloads the dataset named by handle through dl, copies one of
// its files into the target directory, and loads that copy as a
// dataframe.
func Fetch(ctx context.Context, dl Downloader, handle string, opts *Options) (dataframe.DataFrame, error) {
	if opts == nil {
		opts = &Options{}
	}

	targetDir := opts.TargetDir
	if targetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("resolve working directory: %w", err)
		}
		targetDir = filepath.Join(cwd, "data")
	}

	srcDir, err := dl.DatasetDownload(ctx, handle)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	local, err := files.CopyInto(srcDir, targetDir, opts.Filename)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	slog.Info("dataset ready", "handle", handle, "path", local)
	return table.LoadFile(local)
}
