package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/aabbkit/aabbkit/box"
	"github.com/aabbkit/aabbkit/internal/mmap"
)

const headerSize = 24

// MappedDataset is a zero-copy view of an uncompressed AASO file. The
// coordinate slices alias the mapped file and stay valid until Close.
type MappedDataset struct {
	m     *mmap.Mapping
	world box.World

	MinX []float32
	MinY []float32
	MaxX []float32
	MaxY []float32
}

// OpenMMap maps an AASO file and validates its header. The mapping is
// advised for sequential access, which matches the oracle's scan.
func OpenMMap(path string) (*MappedDataset, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	md, err := newMappedDataset(m)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	_ = m.Advise(mmap.AccessSequential)
	return md, nil
}

func newMappedDataset(m *mmap.Mapping) (*MappedDataset, error) {
	data := m.Bytes()
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	var header FileHeader
	copy(header.Magic[:], data[0:4])
	header.Version = binary.LittleEndian.Uint32(data[4:8])
	header.Count = binary.LittleEndian.Uint32(data[8:12])
	header.WorldW = math.Float32frombits(binary.LittleEndian.Uint32(data[12:16]))
	header.WorldH = math.Float32frombits(binary.LittleEndian.Uint32(data[16:20]))
	if err := header.validate(); err != nil {
		return nil, err
	}

	n := int(header.Count)
	need := headerSize + 4*4*n
	if len(data) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedArray, need, len(data))
	}

	md := &MappedDataset{
		m:     m,
		world: box.World{Width: header.WorldW, Height: header.WorldH},
	}
	if n > 0 {
		// The arrays start at offset 24, which keeps float32 alignment.
		base := (*float32)(unsafe.Pointer(&data[headerSize]))
		all := unsafe.Slice(base, 4*n)
		md.MinX = all[0*n : 1*n]
		md.MinY = all[1*n : 2*n]
		md.MaxX = all[2*n : 3*n]
		md.MaxY = all[3*n : 4*n]
	}
	return md, nil
}

// Len returns the number of boxes.
func (md *MappedDataset) Len() int { return len(md.MinX) }

// World returns the world dimensions from the header.
func (md *MappedDataset) World() box.World { return md.world }

// Box returns the i-th box by value.
func (md *MappedDataset) Box(i int) box.Box {
	return box.Box{MinX: md.MinX[i], MinY: md.MinY[i], MaxX: md.MaxX[i], MaxY: md.MaxY[i]}
}

// Dataset copies the mapped contents into an owned Dataset, for
// callers that outlive the mapping.
func (md *MappedDataset) Dataset() *box.Dataset {
	boxes := make([]box.Box, md.Len())
	for i := range boxes {
		boxes[i] = md.Box(i)
	}
	return &box.Dataset{Boxes: boxes, World: md.world}
}

// Close unmaps the file. The coordinate slices must not be used after.
func (md *MappedDataset) Close() error {
	return md.m.Close()
}
