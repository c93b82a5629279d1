package codec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionForPath(t *testing.T) {
	assert.Equal(t, CompressionGzip, CompressionForPath("case.bin.gz"))
	assert.Equal(t, CompressionLZ4, CompressionForPath("case.bin.lz4"))
	assert.Equal(t, CompressionNone, CompressionForPath("case.bin"))
	assert.Equal(t, CompressionNone, CompressionForPath("case.in"))
	assert.Equal(t, CompressionGzip, CompressionForPath("CASE.BIN.GZ"))
}

func TestCompressedRoundTrip(t *testing.T) {
	d := testDataset()
	dir := t.TempDir()

	tests := []struct {
		name string
		comp Compression
		ext  string
	}{
		{"Gzip", CompressionGzip, ".bin.gz"},
		{"LZ4", CompressionLZ4, ".bin.lz4"},
		{"None", CompressionNone, ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "case"+tt.ext)
			require.NoError(t, WriteDataset(path, FormatBinary, tt.comp, d))

			got, err := ReadDataset(path, FormatBinary, tt.comp)
			require.NoError(t, err)
			assert.Equal(t, d.Boxes, got.Boxes)
			assert.Equal(t, d.World, got.World)
		})
	}
}

func TestCompressedTextRoundTrip(t *testing.T) {
	d := testDataset()
	path := filepath.Join(t.TempDir(), "case.in.gz")

	require.NoError(t, WriteDataset(path, FormatText, CompressionGzip, d))

	got, err := ReadDataset(path, FormatText, CompressionGzip)
	require.NoError(t, err)
	assert.Equal(t, d.Boxes, got.Boxes)
}
