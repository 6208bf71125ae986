// Package interp evaluates the unique polynomial through a set of samples.
//
// Three constructions of the same polynomial are provided:
//
//   - Lagrange:       P(x) = Σ y_i · L_i(x),  L_i(x) = Π_{j≠i} (x - x_j)/(x_i - x_j)
//   - NewtonForward:  P(x) = y_0 + Σ_k f[x_0..x_k] · Π_{j<k} (x - x_j)
//   - NewtonBackward: P(x) = y_{n-1} + Σ_k f[x_{n-1-k}..x_{n-1}] · Π_{j<k} (x - x_{n-1-j})
//
// For pairwise-distinct abscissas all three agree up to rounding; this is the
// main property the tests check. The Newton forms read a divdiff.Table and
// are evaluated by nested multiplication; Lagrange recomputes its basis on
// every call (O(n²)), which is cheap for the tens of points a user enters.
//
// Degenerate input:
//
//   - n == 0: every variant returns 0.
//   - n == 1: every variant returns y_0.
//   - repeated abscissas: the result is ±Inf or NaN, never a panic.
//     DuplicateAbscissa and Validate let callers detect this up front.
//
// Coefficients solves the Vandermonde system with gonum's QR factorization to
// obtain the power-basis form c_0 + c_1·x + … of the same polynomial.
package interp
