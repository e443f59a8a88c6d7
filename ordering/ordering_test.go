package ordering_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/ordering"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47`

func mustParse(t *testing.T, in string) *ordering.Manual {
	t.Helper()
	m, err := ordering.Parse(in)
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := mustParse(t, "\n"+sample+"\n\n")
	assert.Equal(t, 21, m.Rules.Len())
	require.Len(t, m.Updates, 6)
	assert.Equal(t, ordering.Update{75, 47, 61, 53, 29}, m.Updates[0])
	assert.Equal(t, ordering.Update{97, 13, 75, 29, 47}, m.Updates[5])
	assert.True(t, m.Rules.Before(47, 53))
	assert.False(t, m.Rules.Before(53, 47))
	assert.False(t, m.Rules.Before(47, 47))
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{
		"47-53\n\n1,2",
		"a|53\n\n1,2",
		"47|b\n\n1,2",
		"5|5\n\n5",
		"1|2\n\n1,x",
		"1|2\n\n1,,2",
		"1|2\n\n1|2",
	} {
		_, err := ordering.Parse(in)
		assert.ErrorIs(t, err, ordering.ErrMalformedInput, "input %q", in)
	}

	_, err := ordering.Parse("1|2\n\n1,2,1")
	assert.ErrorIs(t, err, ordering.ErrMalformedInput)
	assert.ErrorIs(t, err, ordering.ErrDuplicatePage)
}

func TestNewRules_Dedup(t *testing.T) {
	r := ordering.NewRules([]ordering.Rule{{Before: 1, After: 2}, {Before: 1, After: 2}, {Before: 2, After: 3}})
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Before(1, 2))
	assert.False(t, r.Before(1, 3), "rules are not transitive")
}

func TestMiddle(t *testing.T) {
	assert.Equal(t, ordering.Page(61), ordering.Update{75, 47, 61, 53, 29}.Middle())
	assert.Equal(t, ordering.Page(3), ordering.Update{1, 2, 3, 4}.Middle())
	assert.Equal(t, ordering.Page(9), ordering.Update{9}.Middle())
	assert.Panics(t, func() { ordering.Update{}.Middle() })
}

func TestValid_Sample(t *testing.T) {
	m := mustParse(t, sample)
	want := []bool{true, true, true, false, false, false}
	for i, u := range m.Updates {
		assert.Equal(t, want[i], m.Rules.Valid(u), "update %v", u)
	}
	assert.True(t, m.Rules.Valid(nil))
	assert.True(t, m.Rules.Valid(ordering.Update{1, 2}), "pages without rules never conflict")
}

func TestRepair_Sample(t *testing.T) {
	m := mustParse(t, sample)
	want := []ordering.Update{
		{97, 75, 47, 61, 53},
		{61, 29, 13},
		{97, 75, 47, 29, 13},
	}
	for i, u := range m.Updates[3:] {
		before := slices.Clone(u)
		fixed, err := m.Rules.Repair(u)
		require.NoError(t, err)
		assert.Equal(t, want[i], fixed)
		assert.True(t, m.Rules.Valid(fixed))
		assert.Equal(t, before, u, "input left untouched")
	}
}

// TestTopologicalSort_PartialOrder repairs an update whose rules leave some
// pages unordered relative to each other.
func TestTopologicalSort_PartialOrder(t *testing.T) {
	r := ordering.NewRules([]ordering.Rule{{Before: 1, After: 3}, {Before: 2, After: 3}})
	fixed, err := r.TopologicalSort(ordering.Update{3, 2, 1})
	require.NoError(t, err)
	assert.ElementsMatch(t, []ordering.Page{1, 2, 3}, fixed)
	assert.Equal(t, ordering.Page(3), fixed[2])
	assert.True(t, r.Valid(fixed))

	again, err := r.TopologicalSort(ordering.Update{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, fixed, again, "deterministic")

	empty, err := r.TopologicalSort(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTopologicalSort_Hooks(t *testing.T) {
	m := mustParse(t, sample)
	var visits, exits []ordering.Page
	fixed, err := m.Rules.TopologicalSort(ordering.Update{61, 13, 29},
		ordering.WithOnVisit(func(p ordering.Page) error { visits = append(visits, p); return nil }),
		ordering.WithOnExit(func(p ordering.Page) error { exits = append(exits, p); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, ordering.Update{61, 29, 13}, fixed)
	assert.Equal(t, []ordering.Page{61, 13, 29}, visits)
	assert.Equal(t, []ordering.Page{13, 29, 61}, exits)

	stop := errors.New("stop")
	_, err = m.Rules.TopologicalSort(ordering.Update{61, 13, 29},
		ordering.WithOnVisit(func(p ordering.Page) error {
			if p == 13 {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)

	_, err = m.Rules.TopologicalSort(ordering.Update{61, 13, 29},
		ordering.WithOnExit(func(ordering.Page) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestTopologicalSort_Errors(t *testing.T) {
	cyclic := ordering.NewRules([]ordering.Rule{{Before: 1, After: 2}, {Before: 2, After: 3}, {Before: 3, After: 1}})
	_, err := cyclic.TopologicalSort(ordering.Update{1, 2, 3})
	assert.ErrorIs(t, err, ordering.ErrCycleDetected)
	assert.False(t, cyclic.Valid(ordering.Update{1, 2, 3}))

	// the cycle only exists when all three pages are present
	fixed, err := cyclic.TopologicalSort(ordering.Update{2, 1})
	require.NoError(t, err)
	assert.Equal(t, ordering.Update{1, 2}, fixed)

	_, err = cyclic.TopologicalSort(ordering.Update{1, 1})
	assert.ErrorIs(t, err, ordering.ErrDuplicatePage)

	var nilRules *ordering.Rules
	_, err = nilRules.TopologicalSort(ordering.Update{1})
	assert.ErrorIs(t, err, ordering.ErrRulesNil)
	assert.Zero(t, nilRules.Len())
	assert.True(t, nilRules.Valid(ordering.Update{2, 1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cyclic.TopologicalSort(ordering.Update{1, 2}, ordering.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManual_Sums(t *testing.T) {
	ctx := context.Background()
	m := mustParse(t, sample)
	correct, err := m.CorrectMiddles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(143), correct)
	repaired, err := m.RepairedMiddles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(123), repaired)

	_, err = (&ordering.Manual{}).CorrectMiddles(ctx)
	assert.ErrorIs(t, err, ordering.ErrRulesNil)
}

func TestSolver(t *testing.T) {
	ctx := context.Background()
	s := ordering.Solver{}
	assert.Equal(t, 5, s.Day())
	assert.Equal(t, "Print Queue", s.Name())
	p1, err := s.Part1(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, int64(143), p1)
	p2, err := s.Part2(ctx, sample)
	require.NoError(t, err)
	assert.Equal(t, int64(123), p2)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Part1(cctx, sample)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Part2(cctx, sample)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Part1(ctx, "1-2\n\n1,2")
	assert.ErrorIs(t, err, ordering.ErrMalformedInput)
	_, err = s.Part2(ctx, "1|2\n2|3\n3|1\n\n1,2,3")
	assert.ErrorIs(t, err, ordering.ErrCycleDetected)
}
