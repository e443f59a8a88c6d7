// Package grid treats a rectangular block of text as a 2D table of characters,
// addressed by (row, col), and provides the primitives every spatial puzzle in
// this module is built on.
//
// What:
//
//   - Pos and Dir: value-type coordinates and offsets, composed with Pos.Add.
//   - Grid: an immutable row-major character table with bounds-checked reads.
//   - Finder: a per-character predicate used by FindAll for row-major scans.
//   - Querier: the extension point. Any position-centred computation
//     (adjacency, fencing, rays) is a Querier injected through Query, never a
//     method hard-coded into Grid.
//   - Ray and Block: fixed-length sequence extraction in one of 8 directions and
//     rectangular sub-block copies, both stopping cleanly at grid edges.
//
// Why:
//
//   - Off-grid reads are a normal part of traversal (edge detection, neighbour
//     lookups), so Get reports absence with a bool instead of failing.
//   - A malformed grid (empty, ragged rows) is a data error and is rejected once,
//     at Parse time.
//
// Complexity:
//
//   - Parse:   O(R×C) time and memory.
//   - Get/At/OnGrid: O(1).
//   - FindAll, Unique: O(R×C).
//   - Ray:     O(n) for a ray of length n.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
