// Package table loads tabular files from disk or over HTTP into
// dataframes.
package table

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	"github.com/mateo/datagrab/download"
)

// DefaultDownloadDir is where Load stores files fetched from URLs.
const DefaultDownloadDir = "data"

type parseFunc func(path string) (dataframe.DataFrame, error)

var parsers = map[Format]parseFunc{
	FormatCSV:  parseCSV,
	FormatTSV:  parseTSV,
	FormatXLSX: parseExcel,
	FormatXLSM: parseExcel,
}

// LoadOptions configures Load.
type LoadOptions struct {
	// DownloadDir is where URL sources are stored before parsing. Empty
	// means DefaultDownloadDir.
	DownloadDir string
	// Download configures the HTTP fetch for URL sources.
	Download *download.Options
}

// LoadFile parses a local tabular file into a dataframe. The parser is
// chosen by file extension; unrecognized extensions are rejected with
// ErrUnsupportedFormat.
func LoadFile(path string) (dataframe.DataFrame, error) {
	format := DetectFormat(path)
	if _, ok := parsers[format]; !ok {
		return dataframe.DataFrame{}, fmt.Errorf("file %s: %w", path, ErrUnsupportedFormat)
	}
	return parseAs(path, format)
}

// Load parses a local path or an http(s) URL into a dataframe. URL
// sources are downloaded into opts.DownloadDir first and the stored file
// is kept. Sources without a recognized extension are parsed as CSV.
func Load(ctx context.Context, pathOrURL string, opts *LoadOptions) (dataframe.DataFrame, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		dir := opts.DownloadDir
		if dir == "" {
			dir = DefaultDownloadDir
		}
		local, err := download.File(ctx, pathOrURL, dir, opts.Download)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		return loadLenient(local)
	}

	info, err := os.Stat(pathOrURL)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("stat table source: %w", err)
	}
	if info.IsDir() {
		return dataframe.DataFrame{}, fmt.Errorf("table source %s is a directory: %w", pathOrURL, fs.ErrNotExist)
	}
	return loadLenient(pathOrURL)
}

// loadLenient parses path by extension, falling back to CSV when the
// extension is unrecognized.
func loadLenient(path string) (dataframe.DataFrame, error) {
	format := DetectFormat(path)
	if _, ok := parsers[format]; !ok {
		format = FormatCSV
	}
	return parseAs(path, format)
}

func parseAs(path string, format Format) (dataframe.DataFrame, error) {
	df, err := parsers[format](path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	slog.Info("loaded table", "path", path, "format", format.String(), "rows", df.Nrow(), "cols", df.Ncol())
	return df, nil
}

func parseCSV(path string) (dataframe.DataFrame, error) {
	return parseDelimited(path, ',')
}

func parseTSV(path string) (dataframe.DataFrame, error) {
	return parseDelimited(path, '\t')
}

func parseDelimited(path string, delim rune) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	df := dataframe.ReadCSV(f, dataframe.WithDelimiter(delim), dataframe.HasHeader(true))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return df, nil
}

func parseExcel(path string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %q in %s is empty", sheets[0], path)
	}

	df := dataframe.LoadRecords(rectangular(rows))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return df, nil
}

// rectangular pads ragged spreadsheet rows to a uniform width and fills
// gaps in the header row with positional names.
func rectangular(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	for j, name := range out[0] {
		if name == "" {
			out[0][j] = fmt.Sprintf("col_%d", j+1)
		}
	}
	return out
}
