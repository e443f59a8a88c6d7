package ordering

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Rules is an immutable set of ordering rules, safe for concurrent reads.
type Rules struct {
	after map[Page][]Page // ascending, deduplicated successors
	pairs map[Rule]struct{}
}

// NewRules builds a rule set. Repeated rules are kept once.
func NewRules(rules []Rule) *Rules {
	r := &Rules{
		after: make(map[Page][]Page),
		pairs: make(map[Rule]struct{}, len(rules)),
	}
	for _, rule := range rules {
		if _, ok := r.pairs[rule]; ok {
			continue
		}
		r.pairs[rule] = struct{}{}
		r.after[rule.Before] = append(r.after[rule.Before], rule.After)
	}
	for _, next := range r.after {
		slices.Sort(next)
	}
	return r
}

// Len returns the number of distinct rules.
func (r *Rules) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pairs)
}

// Before reports whether a rule a|b exists. A nil *Rules holds none.
func (r *Rules) Before(a, b Page) bool {
	if r == nil {
		return false
	}
	_, ok := r.pairs[Rule{Before: a, After: b}]
	return ok
}

// Valid reports whether u breaks no rule: no page is preceded by a page that
// a rule says must follow it.
func (r *Rules) Valid(u Update) bool {
	for j := 1; j < len(u); j++ {
		for i := range j {
			if r.Before(u[j], u[i]) {
				return false
			}
		}
	}
	return true
}

// Repair returns u reordered to satisfy every applicable rule.
// It is equivalent to TopologicalSort.
func (r *Rules) Repair(u Update, options ...Option) (Update, error) {
	return r.TopologicalSort(u, options...)
}

// CorrectMiddles sums the middle pages of the updates that are already valid.
func (m *Manual) CorrectMiddles(ctx context.Context) (int64, error) {
	return m.sum(ctx, func(ctx context.Context, u Update) (Page, bool, error) {
		if !m.Rules.Valid(u) {
			return 0, false, nil
		}
		return u.Middle(), true, nil
	})
}

// RepairedMiddles repairs every invalid update and sums their middle pages.
func (m *Manual) RepairedMiddles(ctx context.Context) (int64, error) {
	return m.sum(ctx, func(ctx context.Context, u Update) (Page, bool, error) {
		if m.Rules.Valid(u) {
			return 0, false, nil
		}
		fixed, err := m.Rules.Repair(u, WithContext(ctx))
		if err != nil {
			return 0, false, err
		}
		return fixed.Middle(), true, nil
	})
}

// sum runs pick on every update in parallel and adds up the pages it keeps.
func (m *Manual) sum(ctx context.Context, pick func(context.Context, Update) (Page, bool, error)) (int64, error) {
	if m.Rules == nil {
		return 0, ErrRulesNil
	}
	var total atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, u := range m.Updates {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, ok, err := pick(ctx, u)
			if err != nil {
				return err
			}
			if ok {
				total.Add(int64(p))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}

// Parse reads "a|b" rule lines, a blank line, then comma-separated updates.
// Leading blank lines and blank lines after the separator are ignored.
func Parse(input string) (*Manual, error) {
	var (
		rules   []Rule
		updates []Update
		inRules = true
	)
	for n, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			// the first blank line after a rule ends the rules section
			if len(rules) > 0 {
				inRules = false
			}
			continue
		}
		if inRules {
			rule, err := parseRule(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
			}
			rules = append(rules, rule)
			continue
		}
		u, err := parseUpdate(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, n+1, err)
		}
		updates = append(updates, u)
	}
	return &Manual{Rules: NewRules(rules), Updates: updates}, nil
}

func parseRule(line string) (Rule, error) {
	a, b, ok := strings.Cut(line, "|")
	if !ok {
		return Rule{}, fmt.Errorf("rule %q has no '|'", line)
	}
	before, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return Rule{}, err
	}
	after, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return Rule{}, err
	}
	if before == after {
		return Rule{}, fmt.Errorf("rule %q orders a page against itself", line)
	}
	return Rule{Before: Page(before), After: Page(after)}, nil
}

func parseUpdate(line string) (Update, error) {
	fields := strings.Split(line, ",")
	u := make(Update, len(fields))
	seen := make(map[Page]bool, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		p := Page(v)
		if seen[p] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePage, p)
		}
		seen[p] = true
		u[i] = p
	}
	return u, nil
}
