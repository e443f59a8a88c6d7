package trail

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// UphillQuery returns the orthogonal neighbours exactly one unit higher than
// the queried cell.
type UphillQuery struct{}

// Query implements grid.Querier.
func (UphillQuery) Query(g *grid.Grid, p grid.Pos) []grid.Pos {
	h, ok := g.Get(p)
	if !ok || !isHeight(h) {
		return nil
	}
	up := make([]grid.Pos, 0, 4)
	for _, d := range grid.Cardinal {
		n := p.Add(d)
		if ch, ok := g.Get(n); ok && isHeight(ch) && ch == h+1 {
			up = append(up, n)
		}
	}
	return up
}

func isHeight(ch rune) bool { return ch >= '0' && ch <= '9' }

// Trailheads returns every height-0 cell, row-major.
func Trailheads(g *grid.Grid) []grid.Pos {
	cells := g.FindAll(grid.Is(Trailhead))
	out := make([]grid.Pos, len(cells))
	for i, c := range cells {
		out[i] = c.Pos
	}
	return out
}

// walkItem pairs a cell with its depth.
type walkItem struct {
	pos   grid.Pos
	depth int
}

// walker encapsulates mutable Walk state.
type walker struct {
	grid    *grid.Grid
	opts    WalkOptions
	queue   []walkItem
	visited map[grid.Pos]bool
	res     *WalkResult
}

// Walk explores breadth-first from head along uphill steps.
// Returns ErrGridNil, ErrNotTrailhead, ErrOptionViolation, a context error,
// or the wrapped OnVisit error.
func Walk(g *grid.Grid, head grid.Pos, opts ...Option) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ch, ok := g.Get(head); !ok || ch != Trailhead {
		return nil, fmt.Errorf("%w: %v", ErrNotTrailhead, head)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		visited: make(map[grid.Pos]bool),
		res:     &WalkResult{Depth: make(map[grid.Pos]int)},
	}
	w.enqueue(head, 0)
	return w.res, w.loop()
}

// enqueue marks p visited at depth d and queues it.
func (w *walker) enqueue(p grid.Pos, d int) {
	w.visited[p] = true
	w.res.Depth[p] = d
	w.queue = append(w.queue, walkItem{pos: p, depth: d})
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if w.grid.At(item.pos) == Summit {
			w.res.Summits = append(w.res.Summits, item.pos)
		}
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("trail: OnVisit error at %v: %w", item.pos, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, n := range grid.Query[[]grid.Pos](w.grid, UphillQuery{}, item.pos) {
			if !w.visited[n] {
				w.enqueue(n, next)
			}
		}
	}
	return nil
}

// Score returns the number of summits reachable from head.
func Score(g *grid.Grid, head grid.Pos) (int, error) {
	res, err := Walk(g, head)
	if err != nil {
		return 0, err
	}
	return len(res.Summits), nil
}

// Rating returns the number of distinct uphill trails from p to any summit,
// or 0 if p is off-grid.
// memo caches per-cell trail counts; pass the same map for every trailhead of
// one grid and a fresh one for each new grid. A nil memo is allowed: Rating
// then allocates a private table that only serves the one call.
func Rating(g *grid.Grid, p grid.Pos, memo map[grid.Pos]int) int {
	if _, ok := g.Get(p); !ok {
		return 0
	}
	if memo == nil {
		memo = make(map[grid.Pos]int)
	}
	return rating(g, p, memo)
}

// rating counts trails from an on-grid p. Uphill neighbours are always on-grid.
func rating(g *grid.Grid, p grid.Pos, memo map[grid.Pos]int) int {
	if n, ok := memo[p]; ok {
		return n
	}
	var n int
	if g.At(p) == Summit {
		n = 1
	} else {
		for _, up := range grid.Query[[]grid.Pos](g, UphillQuery{}, p) {
			n += rating(g, up, memo)
		}
	}
	memo[p] = n
	return n
}
