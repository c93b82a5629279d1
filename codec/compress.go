package codec

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Compression selects an optional compression layer around a dataset
// file. It is an explicit caller choice; CompressionForPath maps the
// usual extension conventions for callers that want them.
type Compression int

const (
	// CompressionNone stores the file uncompressed.
	CompressionNone Compression = iota
	// CompressionGzip wraps the file in a gzip stream (".gz").
	CompressionGzip
	// CompressionLZ4 wraps the file in an LZ4 frame (".lz4").
	CompressionLZ4
)

// CompressionForPath returns the compression implied by the path's
// final extension: ".gz" is gzip, ".lz4" is LZ4, anything else is none.
func CompressionForPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// wrapWriter layers the chosen compression over w. The returned closer
// must be closed to flush the compressed stream; it is a no-op for
// CompressionNone.
func wrapWriter(w io.Writer, comp Compression) (io.Writer, io.Closer, error) {
	switch comp {
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		return zw, zw, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw, nil
	default:
		return w, nopCloser{}, nil
	}
}

// wrapReader layers the chosen decompression over r.
func wrapReader(r io.Reader, comp Compression) (io.Reader, io.Closer, error) {
	switch comp {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr, nil
	case CompressionLZ4:
		return lz4.NewReader(r), nopCloser{}, nil
	default:
		return r, nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
