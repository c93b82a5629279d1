package judge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/aabbkit/aabbkit/box"
	"github.com/aabbkit/aabbkit/codec"
)

// MaxReportedDiffs caps how many differences Report prints per side.
// The cap is cosmetic; the verdict always reflects the full diff.
const MaxReportedDiffs = 5

// ErrMissingInput is returned when an expected or actual pair file does
// not exist. It is a "could not evaluate" condition, distinct from a
// mismatch.
type ErrMissingInput struct {
	Role string // "expected" or "actual"
	Path string
}

func (e *ErrMissingInput) Error() string {
	return fmt.Sprintf("%s file not found: %s", e.Role, e.Path)
}

// Outcome classifies a judge run for process exit purposes.
type Outcome int

const (
	// OutcomeMatch means the pair multisets are identical.
	OutcomeMatch Outcome = 0
	// OutcomeMissingInput means an input file could not be read.
	OutcomeMissingInput Outcome = 1
	// OutcomeMismatch means the multisets differ.
	OutcomeMismatch Outcome = 2
)

// ExitCode returns the conventional process exit code for the outcome.
func (o Outcome) ExitCode() int { return int(o) }

// PairSet is a multiset of canonical pairs: each key is a pair with
// sorted endpoints, each value its occurrence count.
type PairSet map[box.Pair]int

// BuildPairSet normalizes raw pairs and counts multiplicities.
func BuildPairSet(pairs []box.Pair) PairSet {
	set := make(PairSet, len(pairs))
	for _, p := range pairs {
		set[p.Canonical()]++
	}
	return set
}

// Subtract returns the one-sided multiset difference s - other:
// pairs whose count in s exceeds their count in other, with the excess
// as the count.
func (s PairSet) Subtract(other PairSet) PairSet {
	diff := make(PairSet)
	for p, n := range s {
		if rest := n - other[p]; rest > 0 {
			diff[p] = rest
		}
	}
	return diff
}

// Equal reports whether two multisets are structurally identical.
func (s PairSet) Equal(other PairSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p, n := range s {
		if other[p] != n {
			return false
		}
	}
	return true
}

// Diff is one reported multiset difference.
type Diff struct {
	Pair  box.Pair
	Count int
}

// Result is the verdict of a comparison.
type Result struct {
	// Missing holds expected-minus-actual, Extra actual-minus-expected,
	// both sorted by pair for deterministic reporting.
	Missing []Diff
	Extra   []Diff
}

// Match reports whether the two sources held the same pair multiset.
func (r *Result) Match() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Outcome returns OutcomeMatch or OutcomeMismatch. Missing-input
// conditions never produce a Result; see CompareFiles.
func (r *Result) Outcome() Outcome {
	if r.Match() {
		return OutcomeMatch
	}
	return OutcomeMismatch
}

// Report writes a human-readable verdict, capping each side at
// MaxReportedDiffs entries.
func (r *Result) Report(w io.Writer) {
	if r.Match() {
		fmt.Fprintln(w, "OK: pairs match")
		return
	}
	if len(r.Missing) > 0 {
		fmt.Fprintln(w, "Missing from actual:")
		reportDiffs(w, r.Missing)
	}
	if len(r.Extra) > 0 {
		fmt.Fprintln(w, "Extra in actual:")
		reportDiffs(w, r.Extra)
	}
}

func reportDiffs(w io.Writer, diffs []Diff) {
	for i, d := range diffs {
		if i == MaxReportedDiffs {
			fmt.Fprintf(w, "  ... and %d more\n", len(diffs)-MaxReportedDiffs)
			return
		}
		fmt.Fprintf(w, "  %d,%d  x%d\n", d.Pair.A, d.Pair.B, d.Count)
	}
}

// Compare builds the two one-sided differences between the expected
// and actual multisets.
func Compare(expected, actual PairSet) *Result {
	return &Result{
		Missing: sortedDiffs(expected.Subtract(actual)),
		Extra:   sortedDiffs(actual.Subtract(expected)),
	}
}

func sortedDiffs(set PairSet) []Diff {
	diffs := make([]Diff, 0, len(set))
	for p, n := range set {
		diffs = append(diffs, Diff{Pair: p, Count: n})
	}
	sort.Slice(diffs, func(i, j int) bool {
		if diffs[i].Pair.A != diffs[j].Pair.A {
			return diffs[i].Pair.A < diffs[j].Pair.A
		}
		return diffs[i].Pair.B < diffs[j].Pair.B
	})
	return diffs
}

// ComparePairs compares two raw pair lists.
func ComparePairs(expected, actual []box.Pair) *Result {
	return Compare(BuildPairSet(expected), BuildPairSet(actual))
}

// CompareFiles reads and compares two pair-list files. A missing file
// is reported as *ErrMissingInput before any comparison happens.
func CompareFiles(expectedPath, actualPath string) (*Result, error) {
	if err := checkExists("expected", expectedPath); err != nil {
		return nil, err
	}
	if err := checkExists("actual", actualPath); err != nil {
		return nil, err
	}

	expected, err := codec.ReadPairsFile(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("expected %s: %w", expectedPath, err)
	}
	actual, err := codec.ReadPairsFile(actualPath)
	if err != nil {
		return nil, fmt.Errorf("actual %s: %w", actualPath, err)
	}
	return ComparePairs(expected, actual), nil
}

func checkExists(role, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ErrMissingInput{Role: role, Path: path}
		}
		return err
	}
	return nil
}

// ConventionalPaths maps a testcase identifier to the conventional
// expected and actual pair-file locations.
func ConventionalPaths(testcase string) (expected, actual string) {
	return filepath.Join("testcase", testcase+".csv"), filepath.Join("out", testcase+".csv")
}
