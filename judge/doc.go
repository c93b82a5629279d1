// Package judge decides whether a candidate algorithm's pair output
// matches the oracle's ground truth.
//
// Both inputs are read as raw pair lists, each pair is normalized by
// sorting its endpoints (so (a,b) and (b,a) are the same pair) and the
// lists are compared as multisets: order is irrelevant but duplicate
// pairs are counted, not deduplicated. On mismatch the two one-sided
// multiset differences are reported for diagnosis.
//
// A missing input file is a distinct outcome from a content mismatch,
// and the two map to distinct process exit codes so calling tooling
// can tell "could not evaluate" from "evaluated and failed".
package judge
