package patrol

import (
	"tailscale.com/util/deephash"

	"github.com/katalvlaran/gridlab/grid"
)

// Guard is the patrolling agent. Facing is one of grid.Up, grid.Right,
// grid.Down or grid.Left.
type Guard struct {
	Pos    grid.Pos
	Facing grid.Dir
}

// Step applies one state-machine transition against l, updating the guard
// and marking cells the guard leaves.
func (g *Guard) Step(l *Lab) Movement {
	next := g.Pos.Add(g.Facing)
	switch {
	case !l.OnGrid(next):
		l.mark(g.Pos)
		return OffMap
	case l.IsObstacle(next):
		g.Facing = g.Facing.TurnRight()
		return Turned
	default:
		l.mark(g.Pos)
		g.Pos = next
		return Straight
	}
}

// facingIndex numbers the cardinal facings clockwise from Up.
func facingIndex(d grid.Dir) int {
	switch d {
	case grid.Up:
		return 0
	case grid.Right:
		return 1
	case grid.Down:
		return 2
	case grid.Left:
		return 3
	}
	panic("patrol: guard facing " + d.String() + " is not cardinal")
}

// Route is the result of one simulation.
type Route struct {
	Outcome Outcome
	// Steps counts transitions taken, turns included.
	Steps int
	// Visited lists the cells marked on the lab, row-major.
	Visited []grid.Pos
}

// Fingerprint returns a content hash of r. Two runs with equal fingerprints
// took the same route to the same outcome.
func (r Route) Fingerprint() deephash.Sum {
	return deephash.Hash(&r)
}

// Simulate walks start across l until the guard exits or repeats a
// (position, facing) state, marking visited cells on l.
// Run it on a Clone to keep the original plan unmarked.
//
// Behavior:
//  1. If start is off-grid, return an empty Exited route.
//  2. Before each step, test and set the bit for (position, facing).
//     An already-set bit ends the walk as StuckInLoop.
//  3. OffMap ends the walk as Exited.
//
// Time:   O(R×C×4) steps at most.
// Memory: R×C×4 bits.
func (l *Lab) Simulate(start Guard) Route {
	if !l.OnGrid(start.Pos) {
		return Route{Outcome: Exited}
	}
	seen := make([]uint64, (l.dim.Rows*l.dim.Cols*4+63)/64)
	g := start
	steps := 0
	outcome := Exited

	for {
		state := (g.Pos.Row*l.dim.Cols+g.Pos.Col)*4 + facingIndex(g.Facing)
		word, bit := state/64, uint64(1)<<(state%64)
		if seen[word]&bit != 0 {
			outcome = StuckInLoop
			break
		}
		seen[word] |= bit

		mv := g.Step(l)
		steps++
		if mv == OffMap {
			break
		}
	}

	return Route{Outcome: outcome, Steps: steps, Visited: l.VisitedCells()}
}
