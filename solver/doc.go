// Package solver defines the contract every daily puzzle solver implements and
// the registry the command-line runner dispatches through.
//
// A Solver is a pair of pure functions from the raw puzzle text to an integer
// answer. Part1 and Part2 are synchronous; solvers that parallelise internally
// honour ctx cancellation between units of work.
//
// Run executes both parts and times them. Registry maps day numbers to
// solvers and rejects duplicates at registration time.
//
// Errors:
//
//   - ErrNilSolver: Register was given a nil solver.
//   - ErrDuplicateDay: a solver for that day is already registered.
//   - ErrUnknownDay: Lookup found no solver for the day.
package solver
