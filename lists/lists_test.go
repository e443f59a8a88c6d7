package lists_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/lists"
)

const sample = `3   4
4   3
2   5
1   3
3   9
3   3`

func TestParse(t *testing.T) {
	l, r, err := lists.Parse(sample + "\n")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 2, 1, 3, 3}, l)
	assert.Equal(t, []int64{4, 3, 5, 3, 9, 3}, r)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"1 2 3", "1", "a 2", "1 b"} {
		_, _, err := lists.Parse(in)
		assert.ErrorIs(t, err, lists.ErrMalformedInput, "input %q", in)
	}
}

func TestDistanceAndSimilarity(t *testing.T) {
	l, r, err := lists.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(11), lists.Distance(l, r))
	assert.Equal(t, []int64{3, 4, 2, 1, 3, 3}, l, "Distance must not sort its input")
	assert.Equal(t, int64(31), lists.Similarity(l, r))
}

func TestSolver(t *testing.T) {
	ctx := context.Background()
	s := lists.Solver{}
	assert.Equal(t, 1, s.Day())
	p1, err := s.Part1(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, int64(11), p1)
	p2, err := s.Part2(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, int64(31), p2)
}
