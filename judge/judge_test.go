package judge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabbkit/aabbkit/box"
)

func TestCompareSymmetry(t *testing.T) {
	// (3,7) and (7,3) are the same pair after normalization.
	result := ComparePairs(
		[]box.Pair{{A: 3, B: 7}},
		[]box.Pair{{A: 7, B: 3}},
	)
	assert.True(t, result.Match())
	assert.Equal(t, OutcomeMatch, result.Outcome())
}

func TestCompareMultiplicity(t *testing.T) {
	// Duplicates count: expected has (1,2) twice, actual once.
	result := ComparePairs(
		[]box.Pair{{A: 1, B: 2}, {A: 1, B: 2}},
		[]box.Pair{{A: 1, B: 2}},
	)
	require.False(t, result.Match())
	assert.Equal(t, OutcomeMismatch, result.Outcome())
	require.Len(t, result.Missing, 1)
	assert.Equal(t, Diff{Pair: box.Pair{A: 1, B: 2}, Count: 1}, result.Missing[0])
	assert.Empty(t, result.Extra)
}

func TestCompareOrderInsensitive(t *testing.T) {
	result := ComparePairs(
		[]box.Pair{{A: 0, B: 1}, {A: 2, B: 3}, {A: 4, B: 5}},
		[]box.Pair{{A: 5, B: 4}, {A: 0, B: 1}, {A: 3, B: 2}},
	)
	assert.True(t, result.Match())
}

func TestCompareDiffs(t *testing.T) {
	result := ComparePairs(
		[]box.Pair{{A: 0, B: 1}, {A: 2, B: 3}},
		[]box.Pair{{A: 0, B: 1}, {A: 8, B: 9}},
	)
	require.False(t, result.Match())
	assert.Equal(t, []Diff{{Pair: box.Pair{A: 2, B: 3}, Count: 1}}, result.Missing)
	assert.Equal(t, []Diff{{Pair: box.Pair{A: 8, B: 9}, Count: 1}}, result.Extra)
}

func TestPairSet(t *testing.T) {
	set := BuildPairSet([]box.Pair{{A: 2, B: 1}, {A: 1, B: 2}, {A: 0, B: 3}})
	assert.Equal(t, 2, set[box.Pair{A: 1, B: 2}])
	assert.Equal(t, 1, set[box.Pair{A: 0, B: 3}])

	other := BuildPairSet([]box.Pair{{A: 1, B: 2}})
	diff := set.Subtract(other)
	assert.Equal(t, PairSet{{A: 1, B: 2}: 1, {A: 0, B: 3}: 1}, diff)

	assert.False(t, set.Equal(other))
	assert.True(t, set.Equal(BuildPairSet([]box.Pair{{A: 1, B: 2}, {A: 2, B: 1}, {A: 3, B: 0}})))
}

func TestReportCapsOutput(t *testing.T) {
	var expected []box.Pair
	for i := uint32(0); i < 10; i++ {
		expected = append(expected, box.Pair{A: i, B: i + 1})
	}
	result := ComparePairs(expected, nil)
	require.Len(t, result.Missing, 10)

	var buf bytes.Buffer
	result.Report(&buf)
	out := buf.String()
	assert.Contains(t, out, "Missing from actual:")
	assert.Contains(t, out, "... and 5 more")
}

func TestReportMatch(t *testing.T) {
	var buf bytes.Buffer
	ComparePairs(nil, nil).Report(&buf)
	assert.Equal(t, "OK: pairs match\n", buf.String())
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	expPath := filepath.Join(dir, "expected.csv")
	actPath := filepath.Join(dir, "actual.csv")

	t.Run("MissingExpected", func(t *testing.T) {
		_, err := CompareFiles(expPath, actPath)
		var missing *ErrMissingInput
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "expected", missing.Role)
	})

	require.NoError(t, os.WriteFile(expPath, []byte("id1,id2\n0,1\n2,3\n"), 0644))

	t.Run("MissingActual", func(t *testing.T) {
		_, err := CompareFiles(expPath, actPath)
		var missing *ErrMissingInput
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "actual", missing.Role)
	})

	t.Run("HeaderAndOrderInsensitive", func(t *testing.T) {
		// Actual has no header, reversed pairs, whitespace form.
		require.NoError(t, os.WriteFile(actPath, []byte("3 2\n1 0\n"), 0644))
		result, err := CompareFiles(expPath, actPath)
		require.NoError(t, err)
		assert.True(t, result.Match())
	})

	t.Run("Mismatch", func(t *testing.T) {
		require.NoError(t, os.WriteFile(actPath, []byte("0,1\n"), 0644))
		result, err := CompareFiles(expPath, actPath)
		require.NoError(t, err)
		assert.Equal(t, OutcomeMismatch, result.Outcome())
	})
}

func TestOutcomeExitCodes(t *testing.T) {
	assert.Equal(t, 0, OutcomeMatch.ExitCode())
	assert.Equal(t, 1, OutcomeMissingInput.ExitCode())
	assert.Equal(t, 2, OutcomeMismatch.ExitCode())
}

func TestConventionalPaths(t *testing.T) {
	exp, act := ConventionalPaths("7")
	assert.Equal(t, filepath.Join("testcase", "7.csv"), exp)
	assert.Equal(t, filepath.Join("out", "7.csv"), act)
}
