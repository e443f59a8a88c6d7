// Package patrol simulates a guard walking a lab floor plan and finds the
// single-cell obstructions that would trap the guard in a loop.
//
// What:
//
//   - Lab: a mutable copy of a character grid. '#' marks an obstacle, the
//     guard marker is one of '^', '>', 'v', '<', and cells the guard has left
//     are overwritten with 'X'.
//   - Guard: a position and a cardinal facing. Guard.Step applies one
//     transition of the patrol state machine.
//   - Lab.Simulate: runs the guard until it leaves the map or re-enters a
//     (position, facing) state it has already been in.
//   - LoopObstructions: places one new obstacle on each cell of the guard's
//     unobstructed route and reports the placements that produce a loop.
//
// State machine:
//
//  1. Look at the cell ahead of the guard.
//  2. Off-grid: mark the current cell visited and stop (Exited).
//  3. Obstacle: turn 90° clockwise without moving (Turned).
//  4. Otherwise: mark the current cell visited and step forward (Straight).
//
// Loop detection is exact. A bounded lab has at most rows×cols×4 guard states,
// and Simulate keeps one bit per state, so a repeated state is proof of a loop
// and no step budget is involved.
//
// Concurrency:
//
// LoopObstructions runs each trial on a private Clone of the lab inside an
// errgroup bounded by WithWorkers. Trials share nothing mutable and each one
// writes only its own result slot.
//
// Complexity:
//
//   - Simulate:         O(R×C) time, O(R×C) bits for the seen set.
//   - LoopObstructions: O(V×R×C) over V visited cells.
//
// Errors:
//
//   - ErrNoGuard: the floor plan has no guard marker.
//   - ErrLabNil: a nil lab was passed to LoopObstructions.
//   - ErrOptionViolation: invalid option (negative worker count).
//   - ErrMalformedInput: the Solver could not parse its input.
package patrol
