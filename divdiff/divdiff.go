package divdiff

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finter/series"
)

// Build computes every divided difference of points, orders 1..n-1.
//
// Algorithm:
//  1. Copy abscissas and ordinates (the table never aliases caller memory).
//  2. prev := ordinates.
//  3. For k = 1..n-1:
//     row[i] = (prev[i+1] - prev[i]) / (x[i+k] - x[i]),  i = 0..n-k-1
//     prev = row.
//
// Build never fails; see the package comment for duplicate abscissas.
func Build(points []series.Point) *Table {
	n := len(points)
	t := &Table{
		xs: series.Abscissas(points),
		ys: series.Ordinates(points),
	}
	if n < 2 {
		return t
	}

	t.rows = make([][]float64, 0, n-1)
	prev := t.ys
	for k := 1; k < n; k++ {
		row := make([]float64, n-k)
		for i := range row {
			row[i] = (prev[i+1] - prev[i]) / (t.xs[i+k] - t.xs[i])
		}
		t.rows = append(t.rows, row)
		prev = row
	}

	return t
}

// Len returns the number of samples the table was built from.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.xs)
}

// Orders returns the highest stored order (n-1), or 0 when no rows exist.
func (t *Table) Orders() int {
	if t == nil {
		return 0
	}

	return len(t.rows)
}

// Value returns f[x_index, …, x_{index+order}].
// Order 0 reads the sample ordinate.
func (t *Table) Value(order, index int) (float64, error) {
	if t == nil || order < 0 || order > len(t.rows) {
		return 0, fmt.Errorf("%w: order %d", ErrOutOfRange, order)
	}
	size := len(t.xs) - order
	if index < 0 || index >= size {
		return 0, fmt.Errorf("%w: order %d index %d (row size %d)", ErrOutOfRange, order, index, size)
	}

	return t.value(order, index), nil
}

// value is the unchecked accessor used internally and by evaluators
// that already iterate inside the table bounds.
func (t *Table) value(order, index int) float64 {
	if order == 0 {
		return t.ys[index]
	}

	return t.rows[order-1][index]
}

// First returns f[x_0, …, x_order], the coefficient of the forward Newton form.
// ok is false when order is outside 0..Orders() or the table is empty.
func (t *Table) First(order int) (v float64, ok bool) {
	if t == nil || len(t.xs) == 0 || order < 0 || order > len(t.rows) {
		return 0, false
	}

	return t.value(order, 0), true
}

// Last returns the last cell of the given order, f[x_{n-1-order}, …, x_{n-1}],
// the coefficient of the backward Newton form.
func (t *Table) Last(order int) (v float64, ok bool) {
	if t == nil || len(t.xs) == 0 || order < 0 || order > len(t.rows) {
		return 0, false
	}

	return t.value(order, len(t.xs)-1-order), true
}

// Row returns a copy of the given order. Order 0 returns the ordinates.
func (t *Table) Row(order int) ([]float64, error) {
	if t == nil || order < 0 || order > len(t.rows) {
		return nil, fmt.Errorf("%w: order %d", ErrOutOfRange, order)
	}
	src := t.ys
	if order > 0 {
		src = t.rows[order-1]
	}
	out := make([]float64, len(src))
	copy(out, src)

	return out, nil
}

// Abscissa returns x_i.
func (t *Table) Abscissa(i int) (float64, error) {
	if t == nil || i < 0 || i >= len(t.xs) {
		return 0, fmt.Errorf("%w: abscissa %d", ErrOutOfRange, i)
	}

	return t.xs[i], nil
}

// Cells lists every stored cell (orders 1..n-1) row by row, left to right.
func (t *Table) Cells() []Cell {
	if t == nil {
		return nil
	}
	n := len(t.xs)
	cells := make([]Cell, 0, n*(n-1)/2)
	for k, row := range t.rows {
		for i, v := range row {
			cells = append(cells, Cell{Order: k + 1, Index: i, Value: v})
		}
	}

	return cells
}

// Finite reports whether every stored cell is a finite number.
// A false result on data without NaN inputs means repeated abscissas.
func (t *Table) Finite() bool {
	if t == nil {
		return true
	}
	for _, row := range t.rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
