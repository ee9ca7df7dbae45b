// Package codec decodes byte streams in the supported file formats into
// dataset Tables and encodes Tables back. The dataset core never sees format
// details; it consumes Tables and surfaces codec failures as opaque decode or
// encode errors.
package codec

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mlkit-go/datasets/dataset"
)

// Format tags one of the supported file formats.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// Failure classes for the codec boundary. The underlying parser error is
// carried in the wrapped message.
var (
	ErrDecode = errors.New("decode failed")
	ErrEncode = errors.New("encode failed")
)

// Codec reads a Table from a byte stream and writes one back, for a single
// format.
type Codec interface {
	Format() Format
	Decode(r io.Reader) (*dataset.Table, error)
	Encode(w io.Writer, t *dataset.Table) error
}

// ForFormat returns the codec for a format tag.
func ForFormat(f Format) (Codec, error) {
	switch f {
	case FormatCSV:
		return csvCodec{}, nil
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatParquet:
		return parquetCodec{}, nil
	default:
		return nil, errors.Wrapf(dataset.ErrInvalidArgument,
			"unsupported format %q, must be one of [csv, json, parquet]", f)
	}
}

// DetectFormat derives the format from a path's extension. It also works on
// URLs, since the query-less tail of the path carries the extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv", "json", "parquet":
		return Format(ext), nil
	default:
		return "", errors.Wrapf(dataset.ErrInvalidArgument,
			"cannot detect format of %q from its extension", path)
	}
}
