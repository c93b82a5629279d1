package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabbkit/aabbkit/box"
)

func TestTextRoundTrip(t *testing.T) {
	boxes := []box.Box{
		{MinX: 0.1, MinY: 0.2, MaxX: 2.3, MaxY: 2.4},
		{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeText(&buf, boxes))

	got, err := DecodeText(&buf)
	require.NoError(t, err)
	assert.Equal(t, boxes, got)
}

func TestTextEncoding(t *testing.T) {
	boxes := []box.Box{{MinX: 0, MinY: 0, MaxX: 1.5, MaxY: 2}}

	var buf bytes.Buffer
	require.NoError(t, EncodeText(&buf, boxes))
	assert.Equal(t, "1\n0 0 1.5 2\n", buf.String())
}

func TestTextDecodeErrors(t *testing.T) {
	t.Run("MissingCountLine", func(t *testing.T) {
		_, err := DecodeText(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("InvalidCount", func(t *testing.T) {
		_, err := DecodeText(strings.NewReader("abc\n"))
		assert.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("MissingBoxLine", func(t *testing.T) {
		_, err := DecodeText(strings.NewReader("2\n0 0 1 1\n"))
		assert.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("WrongTokenCount", func(t *testing.T) {
		_, err := DecodeText(strings.NewReader("1\n0 0 1\n"))
		assert.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("NonNumericValue", func(t *testing.T) {
		_, err := DecodeText(strings.NewReader("1\n0 0 one 1\n"))
		assert.ErrorIs(t, err, ErrMalformedLine)
	})
}

func TestTextFloat32Precision(t *testing.T) {
	// Values with no short decimal form must still round-trip exactly.
	boxes := []box.Box{{MinX: 0.1, MinY: 1.0 / 3.0, MaxX: 98.76543, MaxY: 100}}

	var buf bytes.Buffer
	require.NoError(t, EncodeText(&buf, boxes))

	got, err := DecodeText(&buf)
	require.NoError(t, err)
	assert.Equal(t, boxes, got)
}
