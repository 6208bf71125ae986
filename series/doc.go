// Package series turns user-entered sample data into ordered 2-D points.
//
// Input format:
//
//	x0,y0; x1,y1; x2,y2
//
// Pairs are separated by ';' and the two coordinates of a pair by ','.
// Whitespace and line breaks around tokens are ignored, empty pairs are
// skipped and a final pair without a trailing ';' is still accepted.
//
// Literal policy:
//
//   - Strict (default): a literal that is not a finite number, or a pair that
//     does not hold exactly two coordinates, fails with ErrMalformedInput.
//   - Lenient (WithLenient): such literals read as 0 and a missing y defaults
//     to 0. A pair holding a single literal takes it as y and reuses the x of
//     the preceding pair. Empty pairs are still skipped, so this approximates
//     the historical desktop scanner rather than reproducing it.
//
// Insertion order is preserved; it is meaningful for Newton interpolation,
// where the forward form anchors at the first point and the backward form at
// the last one.
//
// The package also carries small geometry helpers used when sampling and
// plotting: equidistance detection, bounding boxes and range mapping.
package series
