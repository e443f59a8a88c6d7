// Package trail scores hiking trails on a topographic height map.
//
// A trail starts at height 0, ends at height 9, and climbs exactly one unit
// per orthogonal step. Cells holding '.' are impassable.
//
// What:
//
//   - Walk: breadth-first exploration of every cell reachable uphill from a
//     trailhead, recording visit order and depth, with hooks and an optional
//     depth limit.
//   - Score: the number of distinct summits reachable from a trailhead.
//   - Rating: the number of distinct uphill trails from a trailhead to any
//     summit, counted over a caller-owned memo table so shared sub-trails are
//     counted once per cell.
//
// Complexity:
//
//   - Walk / Score: O(R×C) per trailhead.
//   - Rating:       O(R×C) per memo table, shared across trailheads.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrNotTrailhead: the start cell does not hold height 0.
//   - ErrOptionViolation: invalid option (negative MaxDepth).
//   - ErrMalformedInput: Solver input is not a digit grid.
package trail
