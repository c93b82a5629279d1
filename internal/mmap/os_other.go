//go:build !unix

package mmap

import (
	"io"
	"os"
)

// Fallback for platforms without mmap support in this package: read the
// whole file into memory. Callers see the same Mapping API.
func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}

func osAdvise(_ []byte, _ AccessPattern) error {
	return nil
}
