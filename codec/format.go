package codec

import "errors"

// Version is the only supported AASO file format version.
const Version = 1

// soaMagic identifies AASO dataset files.
var soaMagic = [4]byte{'A', 'A', 'S', 'O'}

var (
	// ErrShortHeader is returned when a binary file ends before the
	// 24-byte header is complete.
	ErrShortHeader = errors.New("file too small for AASO header")
	// ErrInvalidMagic is returned when the magic bytes are not "AASO".
	ErrInvalidMagic = errors.New("invalid magic; expected \"AASO\"")
	// ErrInvalidVersion is returned for any version other than 1.
	ErrInvalidVersion = errors.New("unsupported AASO version")
	// ErrTruncatedArray is returned when a coordinate array ends early.
	ErrTruncatedArray = errors.New("unexpected EOF reading coordinate array")
	// ErrMalformedLine is returned for a text dataset line that is
	// missing or does not hold exactly four values.
	ErrMalformedLine = errors.New("malformed dataset line")
	// ErrMalformedPair is returned for a pair-list line that does not
	// hold exactly two values.
	ErrMalformedPair = errors.New("malformed pair line")
)

// FileHeader is the 24-byte header at the start of every AASO file.
// All fields are little-endian.
type FileHeader struct {
	Magic    [4]byte // "AASO"
	Version  uint32  // must be 1
	Count    uint32  // number of boxes
	WorldW   float32 // world width (metadata only)
	WorldH   float32 // world height (metadata only)
	Reserved uint32  // written as 0, ignored on read
}

func (h *FileHeader) validate() error {
	if h.Magic != soaMagic {
		return ErrInvalidMagic
	}
	if h.Version != Version {
		return ErrInvalidVersion
	}
	return nil
}

// Format selects the dataset serialization layout.
type Format int

const (
	// FormatBinary is the AASO structure-of-arrays binary layout.
	FormatBinary Format = iota
	// FormatText is the line-oriented plain-text layout.
	FormatText
)

// String returns the conventional extension-like name of the format.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "bin"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}
