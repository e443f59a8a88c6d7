package calibrate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/calibrate"
)

const sample = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20`

func TestConcat(t *testing.T) {
	assert.Equal(t, int64(12345), calibrate.Concat(12, 345))
	assert.Equal(t, int64(1510), calibrate.Concat(15, 10))
	assert.Equal(t, int64(70), calibrate.Concat(7, 0))
	assert.Equal(t, int64(9), calibrate.Concat(0, 9))
}

func TestSolvable(t *testing.T) {
	cases := []struct {
		eq       calibrate.Equation
		basic    bool
		extended bool
	}{
		{calibrate.Equation{Target: 190, Operands: []int64{10, 19}}, true, true},
		{calibrate.Equation{Target: 3267, Operands: []int64{81, 40, 27}}, true, true},
		{calibrate.Equation{Target: 156, Operands: []int64{15, 6}}, false, true},
		{calibrate.Equation{Target: 7290, Operands: []int64{6, 8, 6, 15}}, false, true},
		{calibrate.Equation{Target: 83, Operands: []int64{17, 5}}, false, false},
		{calibrate.Equation{Target: 5, Operands: []int64{5}}, true, true},
		{calibrate.Equation{Target: 0}, false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.basic, tc.eq.Solvable(calibrate.Add, calibrate.Mul), "%v", tc.eq)
		assert.Equal(t, tc.extended, tc.eq.Solvable(calibrate.Add, calibrate.Mul, calibrate.Concat), "%v", tc.eq)
	}
}

func TestParse(t *testing.T) {
	eqs, err := calibrate.Parse(sample + "\n")
	require.NoError(t, err)
	require.Len(t, eqs, 9)
	assert.Equal(t, calibrate.Equation{Target: 292, Operands: []int64{11, 6, 16, 20}}, eqs[8])

	for _, in := range []string{"12 3 4", "x: 1 2", "12: 1 y", "12:"} {
		_, err := calibrate.Parse(in)
		assert.ErrorIs(t, err, calibrate.ErrMalformedInput, "input %q", in)
	}
}

func TestSolver(t *testing.T) {
	ctx := context.Background()
	s := calibrate.Solver{}
	assert.Equal(t, 7, s.Day())
	p1, err := s.Part1(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, int64(3749), p1)
	p2, err := s.Part2(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, int64(11387), p2)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Part1(cctx, sample)
	assert.ErrorIs(t, err, context.Canceled)
}
