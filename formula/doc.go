// Package formula renders interpolation polynomials as text for an external
// formula renderer.
//
// Every variant yields a Formula with two parts:
//
//   - Px:    the closed form with numeric coefficients, e.g.
//     P(x) = 1 + 2 \cdot (x - 0) + 1 \cdot (x - 0)(x - 1)
//   - Steps: the derivation. Lagrange lists one basis polynomial per sample;
//     Newton lists the symbolic general formula followed by one line per
//     divided-difference cell, each derived from the two cells below it.
//
// Markup: '_' and '{}' for subscripts, \cdot for products and
// {numerator \above denominator} for fractions. The renderer interprets it;
// this package only emits text.
//
// Sign rule: a value v is shown as '+' |v| when v ≥ 0 and '-' |v| otherwise,
// and the leading term of a sum drops the '+'. The same rule turns
// (x - x_i) with negative x_i into (x + |x_i|), and a - b with negative b into
// a + |b|. NaN is shown with '+'.
//
// Numbers use %g with a configurable number of significant digits
// (DefaultPrecision = 4). All buffers are local to a call, so one Formatter
// may be shared freely.
package formula
