// Package oracle computes the exact set of colliding box pairs by
// exhaustive pairwise checking. It is the trusted reference any faster
// broad-phase algorithm is judged against, so it deliberately contains
// no spatial indexing of any kind.
//
// The only guard is a pre-flight cost estimate: N*(N-1)/2 pairwise
// checks are compared against a threshold before any work starts, and
// the run is refused unless the caller forces it. Output order is
// deterministic: pairs are emitted in lexicographic (i, j) order with
// i < j.
package oracle
