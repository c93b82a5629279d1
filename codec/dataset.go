package codec

import (
	"io"

	"github.com/aabbkit/aabbkit/box"
)

// EncodeDataset serializes d to w in the given format, layering the
// chosen compression. The text form drops the world dimensions; they
// are carried only by the binary header.
func EncodeDataset(w io.Writer, format Format, comp Compression, d *box.Dataset) error {
	cw, closer, err := wrapWriter(w, comp)
	if err != nil {
		return err
	}
	if format == FormatText {
		err = EncodeText(cw, d.Boxes)
	} else {
		err = EncodeBinary(cw, d)
	}
	if err != nil {
		_ = closer.Close()
		return err
	}
	return closer.Close()
}

// DecodeDataset deserializes a dataset from r. For FormatText the
// returned World is zero; callers that need it must carry it
// separately.
func DecodeDataset(r io.Reader, format Format, comp Compression) (*box.Dataset, error) {
	cr, closer, err := wrapReader(r, comp)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	if format == FormatText {
		boxes, err := DecodeText(cr)
		if err != nil {
			return nil, err
		}
		return &box.Dataset{Boxes: boxes}, nil
	}
	return DecodeBinary(cr)
}

// WriteDataset serializes d to path. Missing parent directories are
// created and the write is atomic.
func WriteDataset(path string, format Format, comp Compression, d *box.Dataset) error {
	return saveToFile(path, func(w io.Writer) error {
		return EncodeDataset(w, format, comp, d)
	})
}

// ReadDataset deserializes a dataset from path.
func ReadDataset(path string, format Format, comp Compression) (*box.Dataset, error) {
	var d *box.Dataset
	err := loadFromFile(path, func(r io.Reader) error {
		var err error
		d, err = DecodeDataset(r, format, comp)
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}
