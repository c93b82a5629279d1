package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aabbkit/aabbkit/box"
)

// EncodeText writes boxes in the line-oriented form: the count on the
// first line, then one "min_x min_y max_x max_y" line per box. The
// world is not part of the text form.
func EncodeText(w io.Writer, boxes []box.Box) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(boxes)); err != nil {
		return err
	}
	for _, b := range boxes {
		if _, err := fmt.Fprintf(bw, "%s %s %s %s\n",
			formatFloat(b.MinX), formatFloat(b.MinY),
			formatFloat(b.MaxX), formatFloat(b.MaxY)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeText reads boxes from the line-oriented form.
func DecodeText(r io.Reader) ([]box.Box, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing count line", ErrMalformedLine)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid count %q", ErrMalformedLine, sc.Text())
	}

	boxes := make([]box.Box, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d boxes, got %d", ErrMalformedLine, n, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: expected 4 values, got %d", ErrMalformedLine, i+2, len(fields))
		}
		var vals [4]float32
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, i+2, err)
			}
			vals[j] = float32(v)
		}
		boxes = append(boxes, box.Box{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]})
	}
	return boxes, nil
}

// formatFloat renders a float32 with the shortest decimal form that
// round-trips exactly, so a text round trip is lossless.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
