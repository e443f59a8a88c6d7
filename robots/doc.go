// Package robots simulates a swarm of security robots moving across a
// toroidal floor and analyses the swarm's layout.
//
// Each robot has a position and a constant velocity. Positions are
// wrap.Counter values, so a single Timeshift(t) multiplies the velocity by t
// and wraps in one step no matter how large t is.
//
// What:
//
//   - Parse: reads "p=col,row v=vcol,vrow" lines into a Swarm.
//   - Swarm.Timeshift, Swarm.Positions, Swarm.String: movement and rendering.
//   - Swarm.Quadrants, Swarm.InQuadrant, Swarm.SafetyFactor: the four
//     quadrants exclude the middle row and column, and the safety factor is
//     the product of their robot counts.
//   - Swarm.LongestRun and FindFormation: the earliest second in
//     [0, rows×cols) at which some row holds a contiguous run of at least
//     MinRun robots. The swarm's motion repeats with period dividing
//     rows×cols, so no later second can be the first.
//
// Concurrency:
//
// FindFormation splits the search range into contiguous chunks, each scanned
// by an errgroup task on its own Clone of the swarm. The earliest hit is kept
// in an atomic minimum, and chunks starting past it stop early, so the result
// is the same for every worker count.
//
// Errors:
//
//   - ErrMalformedInput: a line does not match the robot pattern, or a
//     position lies outside the floor.
//   - ErrNoFormation: no second in the search range forms a run.
//   - ErrOptionViolation: invalid option.
package robots
