package table

import (
	"path"
	"strings"
)

// Format identifies the tabular layout of a source.
type Format uint8

const (
	// CSV is comma-separated text with a header row.
	CSV Format = iota
	// TSV is tab-separated text with a header row.
	TSV
	// XLSX is an Office Open XML workbook; the header is the first row of the sheet.
	XLSX
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case XLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// FormatFromName infers the format from a file name extension.
// Compression suffixes must be stripped first (see CompressionFromName).
func FormatFromName(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return CSV, true
	case ".tsv", ".tab":
		return TSV, true
	case ".xlsx", ".xlsm":
		return XLSX, true
	default:
		return CSV, false
	}
}

// Compression identifies a stream compression wrapped around a source.
type Compression uint8

const (
	// None means the source is stored as-is.
	None Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is Zstandard.
	Zstd
	// LZ4 is the LZ4 frame format.
	LZ4
	// XZ is the xz container format.
	XZ
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case XZ:
		return "xz"
	default:
		return "unknown"
	}
}

var compressionSuffixes = map[string]Compression{
	".gz":   Gzip,
	".gzip": Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".lz4":  LZ4,
	".xz":   XZ,
}

// CompressionFromName detects a compression suffix and returns the name with
// that suffix removed, e.g. "news.csv.zst" yields (Zstd, "news.csv").
func CompressionFromName(name string) (Compression, string) {
	ext := path.Ext(name)
	if c, ok := compressionSuffixes[strings.ToLower(ext)]; ok {
		return c, strings.TrimSuffix(name, ext)
	}
	return None, name
}
