// Package codec provides lossless serialization of AABB datasets and
// pair lists.
//
// Two dataset formats are supported, selected explicitly by the caller:
//
//   - FormatBinary: the "AASO" structure-of-arrays layout, a 24-byte
//     little-endian header followed by the min_x, min_y, max_x and
//     max_y arrays as contiguous float32 runs. This is the fast path
//     for large datasets and the format the oracle consumes.
//   - FormatText: a line-oriented form, the box count on the first
//     line and one "min_x min_y max_x max_y" line per box.
//
// Binary files may additionally be compressed with gzip or LZ4; the
// compression is an explicit parameter, with CompressionForPath as a
// convenience for the usual extension conventions.
//
// Pair lists (the oracle's output and the judge's input) are either
// comma-separated with an optional "id1,id2" header row or plain
// whitespace-separated pairs, one per line.
//
// File writes create missing parent directories and go through a
// temp-file rename so a crashed writer never leaves a truncated
// fixture behind.
package codec
