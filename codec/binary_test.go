package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabbkit/aabbkit/box"
)

func testDataset() *box.Dataset {
	return &box.Dataset{
		Boxes: []box.Box{
			{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2},
			{MinX: 1.5, MinY: 1.25, MaxX: 3, MaxY: 3},
			{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6.75},
		},
		World: box.World{Width: 100, Height: 50},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	d := testDataset()

	var buf bytes.Buffer
	require.NoError(t, EncodeBinary(&buf, d))

	got, err := DecodeBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.Boxes, got.Boxes)
	assert.Equal(t, d.World, got.World)
}

func TestBinaryLayout(t *testing.T) {
	d := &box.Dataset{
		Boxes: []box.Box{{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}},
		World: box.World{Width: 10, Height: 20},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeBinary(&buf, d))

	raw := buf.Bytes()
	require.Len(t, raw, 24+4*4)

	assert.Equal(t, []byte("AASO"), raw[0:4])
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(raw[4:8]))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(raw[8:12]))
	assert.Equal(t, float32(10), math.Float32frombits(binary.LittleEndian.Uint32(raw[12:16])))
	assert.Equal(t, float32(20), math.Float32frombits(binary.LittleEndian.Uint32(raw[16:20])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(raw[20:24]))

	// Array order: min_x, min_y, max_x, max_y.
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(raw[24:28])))
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(raw[28:32])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(raw[32:36])))
	assert.Equal(t, float32(4), math.Float32frombits(binary.LittleEndian.Uint32(raw[36:40])))
}

func TestBinaryDecodeErrors(t *testing.T) {
	t.Run("ShortHeader", func(t *testing.T) {
		_, err := DecodeBinary(bytes.NewReader([]byte("AASO")))
		assert.ErrorIs(t, err, ErrShortHeader)
	})

	t.Run("InvalidMagic", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeBinary(&buf, testDataset()))
		raw := buf.Bytes()
		copy(raw[0:4], "NOPE")
		_, err := DecodeBinary(bytes.NewReader(raw))
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("InvalidVersion", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeBinary(&buf, testDataset()))
		raw := buf.Bytes()
		binary.LittleEndian.PutUint32(raw[4:8], 2)
		_, err := DecodeBinary(bytes.NewReader(raw))
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("TruncatedArray", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeBinary(&buf, testDataset()))
		raw := buf.Bytes()
		_, err := DecodeBinary(bytes.NewReader(raw[:len(raw)-3]))
		assert.ErrorIs(t, err, ErrTruncatedArray)
	})

	t.Run("ReservedIgnored", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeBinary(&buf, testDataset()))
		raw := buf.Bytes()
		binary.LittleEndian.PutUint32(raw[20:24], 0xDEADBEEF)
		_, err := DecodeBinary(bytes.NewReader(raw))
		assert.NoError(t, err)
	})
}

func TestBinaryEmptyDataset(t *testing.T) {
	d := &box.Dataset{World: box.World{Width: 1, Height: 1}}

	var buf bytes.Buffer
	require.NoError(t, EncodeBinary(&buf, d))
	require.Len(t, buf.Bytes(), 24)

	got, err := DecodeBinary(&buf)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}

func TestWriteDatasetCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "case.bin")

	d := testDataset()
	require.NoError(t, WriteDataset(path, FormatBinary, CompressionNone, d))

	got, err := ReadDataset(path, FormatBinary, CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, d.Boxes, got.Boxes)
	assert.Equal(t, d.World, got.World)
}
