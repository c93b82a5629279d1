package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aabbkit/aabbkit/box"
)

// IsHeaderRow reports whether the fields of a pair-list row look like a
// column header rather than data: at least two fields, each starting
// with "id" case-insensitively (e.g. "id1,id2"). It is applied to the
// first row only.
func IsHeaderRow(fields []string) bool {
	if len(fields) < 2 {
		return false
	}
	a := strings.ToLower(strings.TrimSpace(fields[0]))
	b := strings.ToLower(strings.TrimSpace(fields[1]))
	return strings.HasPrefix(a, "id") && strings.HasPrefix(b, "id")
}

// ReadPairs reads a pair list from r. Fields may be separated by
// commas or whitespace; empty lines are skipped and a header row on
// the first line is detected with IsHeaderRow and skipped. A data line
// that does not hold exactly two integers is a format error.
func ReadPairs(r io.Reader) ([]box.Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pairs []box.Pair
	first := true
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := splitPairLine(line)
		if first {
			first = false
			if IsHeaderRow(fields) {
				continue
			}
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 values, got %d", ErrMalformedPair, lineNo, len(fields))
		}
		a, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedPair, lineNo, err)
		}
		b, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedPair, lineNo, err)
		}
		pairs = append(pairs, box.Pair{A: uint32(a), B: uint32(b)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ReadPairsFile reads a pair list from path.
func ReadPairsFile(path string) ([]box.Pair, error) {
	var pairs []box.Pair
	err := loadFromFile(path, func(r io.Reader) error {
		var err error
		pairs, err = ReadPairs(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// WritePairsCSV writes pairs as CSV with an "id1,id2" header row.
func WritePairsCSV(path string, pairs []box.Pair) error {
	return saveToFile(path, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		if _, err := fmt.Fprintln(bw, "id1,id2"); err != nil {
			return err
		}
		for _, p := range pairs {
			if _, err := fmt.Fprintf(bw, "%d,%d\n", p.A, p.B); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}

// WritePairsText writes pairs as bare whitespace-separated lines.
func WritePairsText(path string, pairs []box.Pair) error {
	return saveToFile(path, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, p := range pairs {
			if _, err := fmt.Fprintf(bw, "%d %d\n", p.A, p.B); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}

// splitPairLine splits on commas if any are present, otherwise on
// whitespace, so both pair-list forms share one read path.
func splitPairLine(line string) []string {
	if strings.ContainsRune(line, ',') {
		parts := strings.Split(line, ",")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				fields = append(fields, p)
			}
		}
		return fields
	}
	return strings.Fields(line)
}
