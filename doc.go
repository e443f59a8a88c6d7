// Package gridlab is a toolkit for spatial puzzle solving on character grids,
// together with the daily solvers built on it.
//
// What:
//
//   - grid: immutable rectangular character tables, positions and directions,
//     bounds-checked reads, rays and blocks, and the Querier extension point.
//   - mask: a 0/1 occupancy bitmap over a set of positions, sized to their
//     bounding box plus a border.
//   - region: maximal 4-connected regions with area, perimeter and side counts.
//   - patrol: the guard state machine with exact loop detection and parallel
//     obstruction trials.
//   - wrap: a generic modular counter confined to [min, max].
//
// Solvers, one package per day, implement solver.Solver:
//
//	lists      day 1   sorted distance and similarity of two ID columns
//	wordsearch day 4   XMAS rays and X-MAS crosses
//	ordering   day 5   print-queue rule checks and topological repair
//	patrol     day 6   guard route and loop-causing obstructions
//	calibrate  day 7   operator insertion with +, × and ||
//	antenna    day 8   antinodes and resonant harmonics
//	trail      day 10  trailhead scores and ratings
//	garden     day 12  fence prices by perimeter and by sides
//	robots     day 14  toroidal swarm safety factor and formation search
//
// The cmd/aoc command runs them against input files and logs timings.
//
// Conventions:
//
//   - Malformed input is reported once, at parse time, as a wrapped sentinel
//     error. Off-grid reads during traversal are ordinary "absent" results.
//   - Tunables are functional options with DefaultOptions and deferred
//     validation surfacing as ErrOptionViolation.
//   - Parallel sections use errgroup with disjoint result slots or atomic
//     accumulators, so results never depend on scheduling.
package gridlab
