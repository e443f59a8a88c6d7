// Package ordering checks and repairs print-queue updates against a set of
// page-ordering rules.
//
// A rule a|b says that whenever an update contains both a and b, a must be
// printed somewhere before b. Rules whose pages are not both present in an
// update do not apply to it.
//
// What:
//
//   - Valid: reports whether an update already satisfies every applicable rule.
//   - TopologicalSort / Repair: reorders an update with a depth-first
//     topological sort over the rule subgraph induced by its pages, with
//     cancellation, pre-/post-order hooks and cycle detection.
//   - CorrectMiddles / RepairedMiddles: sum the middle pages of the valid
//     updates, or of the invalid updates once repaired, checking updates in
//     parallel.
//
// Complexity:
//
//   - Valid:           O(K²) for an update of K pages.
//   - TopologicalSort: O(K + E), E = rules among the update's pages.
//
// Errors:
//
//   - ErrRulesNil: nil *Rules.
//   - ErrDuplicatePage: an update lists the same page twice.
//   - ErrCycleDetected: the applicable rules contradict each other.
//   - ErrMalformedInput: Parse could not read a rule or update line.
//   - context.Canceled: sort or sum cancelled via context.
//   - hook errors: propagated from OnVisit or OnExit.
package ordering
