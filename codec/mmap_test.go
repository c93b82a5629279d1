package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMMap(t *testing.T) {
	d := testDataset()
	path := filepath.Join(t.TempDir(), "case.bin")
	require.NoError(t, WriteDataset(path, FormatBinary, CompressionNone, d))

	md, err := OpenMMap(path)
	require.NoError(t, err)
	defer md.Close()

	require.Equal(t, d.Len(), md.Len())
	assert.Equal(t, d.World, md.World())
	for i := range d.Boxes {
		assert.Equal(t, d.Boxes[i], md.Box(i))
	}
	assert.Equal(t, d.Boxes, md.Dataset().Boxes)
}

func TestOpenMMapErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("ShortFile", func(t *testing.T) {
		path := filepath.Join(dir, "short.bin")
		require.NoError(t, os.WriteFile(path, []byte("AASO"), 0644))
		_, err := OpenMMap(path)
		assert.ErrorIs(t, err, ErrShortHeader)
	})

	t.Run("BadMagic", func(t *testing.T) {
		path := filepath.Join(dir, "magic.bin")
		require.NoError(t, os.WriteFile(path, make([]byte, 24), 0644))
		_, err := OpenMMap(path)
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("Truncated", func(t *testing.T) {
		d := testDataset()
		full := filepath.Join(dir, "full.bin")
		require.NoError(t, WriteDataset(full, FormatBinary, CompressionNone, d))
		raw, err := os.ReadFile(full)
		require.NoError(t, err)

		trunc := filepath.Join(dir, "trunc.bin")
		require.NoError(t, os.WriteFile(trunc, raw[:len(raw)-4], 0644))
		_, err = OpenMMap(trunc)
		assert.ErrorIs(t, err, ErrTruncatedArray)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := OpenMMap(filepath.Join(dir, "nope.bin"))
		assert.Error(t, err)
	})
}
