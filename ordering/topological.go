package ordering

import (
	"fmt"
)

// topoSorter holds the state of one sort over an update's pages.
type topoSorter struct {
	rules  *Rules
	opts   SortOptions
	member map[Page]bool // pages of the update; rules on other pages are skipped
	state  map[Page]int  // White, Gray or Black
	order  []Page        // post-order
}

// TopologicalSort returns the pages of u ordered so that every applicable rule
// a|b places a before b. u itself is not modified.
// If r is nil, returns ErrRulesNil.
// If u lists a page twice, returns ErrDuplicatePage.
// If the applicable rules form a cycle, returns ErrCycleDetected.
// Successors are explored in ascending page order, so the result is
// deterministic for a given u.
func (r *Rules) TopologicalSort(u Update, options ...Option) (Update, error) {
	// 1. Validate rules pointer
	if r == nil {
		return nil, ErrRulesNil
	}
	// 2. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Build the vertex set of the induced subgraph
	member := make(map[Page]bool, len(u))
	for _, p := range u {
		if member[p] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePage, p)
		}
		member[p] = true
	}
	sorter := &topoSorter{
		rules:  r,
		opts:   opts,
		member: member,
		state:  make(map[Page]int, len(u)),
		order:  make([]Page, 0, len(u)),
	}
	// 4. Drive DFS from every unvisited page, in update order
	for _, p := range u {
		if sorter.state[p] == White {
			if err := sorter.visit(p); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce the print order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit explores p and every page that must follow it.
func (t *topoSorter) visit(p Page) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	// 2. A Gray page is on the stack: back-edge
	if t.state[p] == Gray {
		return fmt.Errorf("%w: page %d", ErrCycleDetected, p)
	}
	// 3. Already placed
	if t.state[p] == Black {
		return nil
	}
	// 4. Mark in progress
	t.state[p] = Gray
	if t.opts.OnVisit != nil {
		if err := t.opts.OnVisit(p); err != nil {
			return err
		}
	}
	// 5. Explore successors present in the update
	for _, next := range t.rules.after[p] {
		if !t.member[next] {
			continue
		}
		if err := t.visit(next); err != nil {
			return err
		}
	}
	// 6. Mark done and record in post-order
	t.state[p] = Black
	if t.opts.OnExit != nil {
		if err := t.opts.OnExit(p); err != nil {
			return err
		}
	}
	t.order = append(t.order, p)

	return nil
}
