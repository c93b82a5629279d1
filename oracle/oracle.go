package oracle

import (
	"fmt"

	"github.com/aabbkit/aabbkit/box"
)

// DefaultMaxChecks is the pre-flight ceiling on estimated pairwise
// checks. The value is a cost heuristic, not a correctness bound, and
// can be raised per call with WithMaxChecks or bypassed with WithForce.
const DefaultMaxChecks uint64 = 200_000_000

// ErrTooManyChecks is returned when the estimated check count exceeds
// the configured ceiling and the run was not forced.
type ErrTooManyChecks struct {
	Estimated uint64
	MaxChecks uint64
}

func (e *ErrTooManyChecks) Error() string {
	return fmt.Sprintf("refusing brute-force run: estimated %d pair checks > %d (force to override)",
		e.Estimated, e.MaxChecks)
}

// Options configures a brute-force run.
type Options struct {
	// MaxChecks is the guard threshold.
	MaxChecks uint64
	// Force disables the guard entirely.
	Force bool
}

// DefaultOptions contains the default oracle configuration.
var DefaultOptions = Options{
	MaxChecks: DefaultMaxChecks,
}

// WithMaxChecks raises or lowers the guard threshold.
func WithMaxChecks(n uint64) func(*Options) {
	return func(o *Options) {
		o.MaxChecks = n
	}
}

// WithForce bypasses the guard.
func WithForce() func(*Options) {
	return func(o *Options) {
		o.Force = true
	}
}

// Source is a read-only view of a dataset. Both *box.Dataset and
// *codec.MappedDataset satisfy it.
type Source interface {
	Len() int
	Box(i int) box.Box
}

// EstimateChecks returns the number of pairwise checks for n boxes.
func EstimateChecks(n int) uint64 {
	if n < 2 {
		return 0
	}
	return uint64(n) * uint64(n-1) / 2
}

// Pairs returns every colliding pair (i, j) with i < j, in
// lexicographic enumeration order. Re-running on the same source
// always yields the same ordered list.
func Pairs(src Source, optFns ...func(*Options)) ([]box.Pair, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	n := src.Len()
	if est := EstimateChecks(n); !opts.Force && est > opts.MaxChecks {
		return nil, &ErrTooManyChecks{Estimated: est, MaxChecks: opts.MaxChecks}
	}

	var pairs []box.Pair
	for i := 0; i < n; i++ {
		bi := src.Box(i)
		for j := i + 1; j < n; j++ {
			if bi.Intersects(src.Box(j)) {
				pairs = append(pairs, box.Pair{A: uint32(i), B: uint32(j)})
			}
		}
	}
	return pairs, nil
}
