package table

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat reports a file whose extension maps to no known
// tabular format.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Format identifies a tabular file format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatTSV
	FormatXLSX
	FormatXLSM
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatXLSX:
		return "xlsx"
	case FormatXLSM:
		return "xlsm"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file path to its tabular format by extension. The
// comparison is case-insensitive.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".tsv":
		return FormatTSV
	case ".xlsx":
		return FormatXLSX
	case ".xlsm":
		return FormatXLSM
	default:
		return FormatUnknown
	}
}
