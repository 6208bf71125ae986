package interp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/finter/divdiff"
	"github.com/katalvlaran/finter/series"
)

// LagrangeAt evaluates the Lagrange form at x.
func LagrangeAt(points []series.Point, x float64) float64 {
	n := len(points)
	switch n {
	case 0:
		return 0
	case 1:
		return points[0].Y
	}

	sum := 0.0
	for i, pi := range points {
		num, den := 1.0, 1.0
		for j, pj := range points {
			if j == i {
				continue
			}
			num *= x - pj.X
			den *= pi.X - pj.X
		}
		sum += pi.Y * num / den
	}

	return sum
}

// NewtonForwardAt evaluates the progressive Newton form at x.
//
// Nested form: P = c_0 + (x-x_0)(c_1 + (x-x_1)(c_2 + …)), c_k = f[x_0..x_k].
// A nil table is built on the fly.
func NewtonForwardAt(points []series.Point, table *divdiff.Table, x float64) float64 {
	n := len(points)
	switch n {
	case 0:
		return 0
	case 1:
		return points[0].Y
	}
	if table == nil {
		table = divdiff.Build(points)
	}

	top := n - 1
	if table.Orders() < top {
		top = table.Orders()
	}
	p, _ := table.First(top)
	for k := top - 1; k >= 0; k-- {
		c, _ := table.First(k)
		p = p*(x-points[k].X) + c
	}

	return p
}

// NewtonBackwardAt evaluates the regressive Newton form at x.
//
// Nested form: P = c_0 + (x-x_{n-1})(c_1 + (x-x_{n-2})(c_2 + …)),
// c_k = f[x_{n-1-k}..x_{n-1}].
func NewtonBackwardAt(points []series.Point, table *divdiff.Table, x float64) float64 {
	n := len(points)
	switch n {
	case 0:
		return 0
	case 1:
		return points[0].Y
	}
	if table == nil {
		table = divdiff.Build(points)
	}

	top := n - 1
	if table.Orders() < top {
		top = table.Orders()
	}
	p, _ := table.Last(top)
	for k := top - 1; k >= 0; k-- {
		c, _ := table.Last(k)
		p = p*(x-points[n-1-k].X) + c
	}

	return p
}

// Evaluate dispatches on v. table may be nil, in which case the Newton
// variants build one; a table built from a different number of points
// fails with ErrTableMismatch.
func Evaluate(v Variant, points []series.Point, table *divdiff.Table, x float64) (float64, error) {
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if v == Lagrange {
		return LagrangeAt(points, x), nil
	}

	table, err := tableFor(points, table)
	if err != nil {
		return 0, err
	}
	if v == NewtonForward {
		return NewtonForwardAt(points, table, x), nil
	}

	return NewtonBackwardAt(points, table, x), nil
}

// Sample evaluates v at steps evenly spaced abscissas covering [from, to],
// both ends included, for curve plotting.
func Sample(v Variant, points []series.Point, table *divdiff.Table, from, to float64, steps int) ([]series.Point, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSteps, steps)
	}
	if !finite(from) || !finite(to) || from >= to {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadRange, from, to)
	}
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if v != Lagrange {
		var err error
		if table, err = tableFor(points, table); err != nil {
			return nil, err
		}
	}

	out := make([]series.Point, steps)
	span := to - from
	last := float64(steps - 1)
	for i := range out {
		x := from + span*float64(i)/last
		if i == steps-1 {
			x = to
		}
		var y float64
		switch v {
		case Lagrange:
			y = LagrangeAt(points, x)
		case NewtonForward:
			y = NewtonForwardAt(points, table, x)
		default:
			y = NewtonBackwardAt(points, table, x)
		}
		out[i] = series.Point{X: x, Y: y}
	}

	return out, nil
}

// DuplicateAbscissa returns the first pair of indices i < j with x_i == x_j.
func DuplicateAbscissa(points []series.Point) (i, j int, ok bool) {
	seen := make(map[float64]int, len(points))
	for idx, p := range points {
		if first, dup := seen[p.X]; dup {
			return first, idx, true
		}
		seen[p.X] = idx
	}

	return 0, 0, false
}

// Validate returns ErrDegenerateDataset when two samples share an abscissa.
func Validate(points []series.Point) error {
	if i, j, ok := DuplicateAbscissa(points); ok {
		return fmt.Errorf("%w: points %d and %d share x=%g", ErrDegenerateDataset, i, j, points[i].X)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func tableFor(points []series.Point, table *divdiff.Table) (*divdiff.Table, error) {
	if table == nil {
		return divdiff.Build(points), nil
	}
	if table.Len() != len(points) {
		return nil, fmt.Errorf("%w: table has %d samples, points %d", ErrTableMismatch, table.Len(), len(points))
	}

	return table, nil
}
