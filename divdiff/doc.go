// Package divdiff builds the triangular table of Newton divided differences.
//
// What is a divided difference?
//
//	For samples (x_0,y_0) … (x_{n-1},y_{n-1}) the order-0 differences are the
//	ordinates themselves and every higher order is built from the one below:
//
//	  f[x_i]                 = y_i
//	  f[x_i, …, x_{i+k}]     = (f[x_{i+1}, …, x_{i+k}] - f[x_i, …, x_{i+k-1}]) / (x_{i+k} - x_i)
//
// Table layout:
//
//	order 0 │ y_0   y_1   y_2   y_3        (not stored, read through Value)
//	order 1 │ d10   d11   d12
//	order 2 │ d20   d21
//	order 3 │ d30                          (kept: leading coefficient of P)
//
// Row k holds n-k cells. All orders 1..n-1 are retained, including the single
// top cell, which is the leading coefficient of the interpolating polynomial.
// Datasets with zero or one point have no rows.
//
// Numeric policy:
//
//	Repeated abscissas divide by zero. The table is still built and the
//	affected cells hold ±Inf or NaN, deterministically; Finite reports it.
//	Nothing panics.
//
// Complexity:
//
//	Time   O(n²)   Memory O(n²)
//
// A Table is immutable once built and may be shared between goroutines.
package divdiff
