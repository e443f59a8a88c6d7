// Package mask builds padded boolean sub-grids over arbitrary position sets.
//
// A Mask covers the bounding box of the positions it was built from, plus a
// symmetric border. Callers always address cells in the original coordinate
// space; the shift into the padded storage is internal. Reads anywhere in the
// padding band return 0, and reads beyond it report absence instead of
// failing, so neighbourhood patterns can probe one step outside a region
// without bounds checks.
//
// Complexity:
//
//   - New: O(P + H×W) where P = positions, H×W = padded size.
//   - Get/Has: O(1).
//
// Errors:
//
//   - ErrNoPositions: the position set is empty.
//   - ErrNegativeBorder: border < 0.
package mask
