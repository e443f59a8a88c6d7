// Package region partitions a character grid into maximal 4-connected regions
// of equal characters and measures their geometry.
//
// What:
//
//   - Find(g, kind): every region ("plot") holding kind, discovered with an
//     explicit work stack, so region size never threatens the goroutine stack.
//   - All(g): regions for every distinct character of g.
//   - Region.Area, Region.Perimeter, Region.Sides: cell count, boundary edge
//     count, and corner count of the boundary polygon (equal to its number of
//     straight sides).
//   - Analyze: fence cost Σ area×perimeter and bulk cost Σ area×sides over all
//     regions, computed in parallel per character.
//
// Guarantees:
//
//   - For every character c, the regions returned by Find(g, c) are pairwise
//     disjoint and their union is exactly the set of cells holding c.
//   - Regions are maximal: no two 4-adjacent cells holding c land in different
//     regions.
//   - Output is deterministic: regions are ordered by their first cell and cells
//     are sorted row-major.
//
// Corner counting:
//
// Each member cell is checked against the four L-shaped neighbourhoods
// (up-right, up-left, down-left, down-right). With v and h the orthogonal
// neighbours of the L and d its diagonal, the cell contributes a convex corner
// when neither v nor h is in the region, and a concave corner when both are but
// d is not. Lookups go through a mask.Mask padded by one cell, so probes one
// step outside the region's bounding box read as "absent".
//
// Complexity:
//
//   - Find:    O(R×C) time, O(R×C) memory for the consumed flags.
//   - Sides:   O(A) for a region of area A, plus the mask's O(H×W).
//   - Analyze: O(K×R×C) total work over K distinct characters, spread over
//     the worker limit.
//
// Options:
//
//   - WithWorkers(n): cap concurrent per-character analyses (0 = GOMAXPROCS).
//   - WithOnRegion(fn): called once per region after analysis, in
//     deterministic order, from the calling goroutine.
//
// Errors:
//
//   - ErrGridNil: nil grid passed to Analyze.
//   - ErrOptionViolation: invalid option (e.g. negative worker count).
//   - context errors when ctx is cancelled mid-analysis.
package region
