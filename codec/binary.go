package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/aabbkit/aabbkit/box"
)

// soaWriter writes AASO files field by field.
type soaWriter struct {
	w         io.Writer
	byteOrder binary.ByteOrder
}

func newSoAWriter(w io.Writer) *soaWriter {
	return &soaWriter{
		w:         w,
		byteOrder: binary.LittleEndian, // Native on x86/ARM
	}
}

func (sw *soaWriter) writeHeader(header *FileHeader) error {
	header.Magic = soaMagic
	header.Version = Version
	return binary.Write(sw.w, sw.byteOrder, header)
}

// writeFloat32Slice writes a float32 slice as raw bytes (zero-copy).
func (sw *soaWriter) writeFloat32Slice(vals []float32) error {
	if len(vals) == 0 {
		return nil
	}
	byteSlice := unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*4)
	_, err := sw.w.Write(byteSlice)
	return err
}

// soaReader reads AASO files field by field.
type soaReader struct {
	r         io.Reader
	byteOrder binary.ByteOrder
}

func newSoAReader(r io.Reader) *soaReader {
	return &soaReader{
		r:         r,
		byteOrder: binary.LittleEndian,
	}
}

func (sr *soaReader) readHeader() (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(sr.r, sr.byteOrder, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShortHeader, err)
	}
	if err := header.validate(); err != nil {
		return nil, err
	}
	return &header, nil
}

func (sr *soaReader) readFloat32Slice(count int, field string) ([]float32, error) {
	if count == 0 {
		return nil, nil
	}
	vals := make([]float32, count)
	byteSlice := unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), count*4)
	if _, err := io.ReadFull(sr.r, byteSlice); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTruncatedArray, field, err)
	}
	return vals, nil
}

// EncodeBinary writes d to w in the AASO structure-of-arrays layout.
func EncodeBinary(w io.Writer, d *box.Dataset) error {
	sw := newSoAWriter(w)

	header := FileHeader{
		Count:  uint32(len(d.Boxes)),
		WorldW: d.World.Width,
		WorldH: d.World.Height,
	}
	if err := sw.writeHeader(&header); err != nil {
		return err
	}

	n := len(d.Boxes)
	minX := make([]float32, n)
	minY := make([]float32, n)
	maxX := make([]float32, n)
	maxY := make([]float32, n)
	for i, b := range d.Boxes {
		minX[i] = b.MinX
		minY[i] = b.MinY
		maxX[i] = b.MaxX
		maxY[i] = b.MaxY
	}

	// Fixed array order: min_x, min_y, max_x, max_y.
	if err := sw.writeFloat32Slice(minX); err != nil {
		return err
	}
	if err := sw.writeFloat32Slice(minY); err != nil {
		return err
	}
	if err := sw.writeFloat32Slice(maxX); err != nil {
		return err
	}
	return sw.writeFloat32Slice(maxY)
}

// DecodeBinary reads an AASO dataset from r.
func DecodeBinary(r io.Reader) (*box.Dataset, error) {
	sr := newSoAReader(r)

	header, err := sr.readHeader()
	if err != nil {
		return nil, err
	}

	n := int(header.Count)
	minX, err := sr.readFloat32Slice(n, "min_x")
	if err != nil {
		return nil, err
	}
	minY, err := sr.readFloat32Slice(n, "min_y")
	if err != nil {
		return nil, err
	}
	maxX, err := sr.readFloat32Slice(n, "max_x")
	if err != nil {
		return nil, err
	}
	maxY, err := sr.readFloat32Slice(n, "max_y")
	if err != nil {
		return nil, err
	}

	boxes := make([]box.Box, n)
	for i := range boxes {
		boxes[i] = box.Box{MinX: minX[i], MinY: minY[i], MaxX: maxX[i], MaxY: maxY[i]}
	}
	return &box.Dataset{
		Boxes: boxes,
		World: box.World{Width: header.WorldW, Height: header.WorldH},
	}, nil
}

// saveToFile writes a file atomically: missing parent directories are
// created, content goes to a temp file in the target directory and the
// temp file is renamed over the destination.
func saveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	// Buffered writer to batch the many small array writes.
	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}

// loadFromFile opens a file and hands a buffered reader to readFunc.
func loadFromFile(filename string, readFunc func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewReaderSize(f, 256*1024)
	return readFunc(buf)
}
