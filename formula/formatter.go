package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/finter/divdiff"
	"github.com/katalvlaran/finter/interp"
	"github.com/katalvlaran/finter/series"
)

// Formatter produces Formula values. The zero value is not usable; call NewFormatter.
type Formatter struct {
	opts Options
}

// NewFormatter returns a Formatter configured by opts.
func NewFormatter(opts ...Option) *Formatter {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Formatter{opts: o}
}

// Precision returns the configured significant digits.
func (f *Formatter) Precision() int { return f.opts.Precision }

// Format renders variant v for points. A nil table is built from points.
func (f *Formatter) Format(v interp.Variant, points []series.Point, table *divdiff.Table) (Formula, error) {
	if !v.Valid() {
		return Formula{}, fmt.Errorf("%w: %d", interp.ErrUnknownVariant, int(v))
	}
	if table == nil {
		table = divdiff.Build(points)
	}
	if table.Len() != len(points) {
		return Formula{}, fmt.Errorf("%w: table has %d samples, points %d", interp.ErrTableMismatch, table.Len(), len(points))
	}

	out := Formula{Variant: v, Px: Empty}
	if len(points) == 0 {
		return out, nil
	}

	switch v {
	case interp.Lagrange:
		out.Px = f.lagrangePx(points)
		out.Steps = f.lagrangeSteps(points)
	default:
		backward := v == interp.NewtonBackward
		out.Px = f.newtonPx(points, table, backward)
		out.Steps = append([]string{newtonGeneral(len(points), backward)}, f.newtonCells(points, table)...)
	}

	return out, nil
}

// Number formats v with the configured significant digits.
// Infinities use the \infty markup.
func (f *Formatter) Number(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return `\infty`
	case math.IsInf(v, -1):
		return `-\infty`
	}

	return strconv.FormatFloat(v, 'g', f.opts.Precision, 64)
}

// lagrangePx: P(x) = y_0 \cdot L_{0}(x) ± |y_1| \cdot L_{1}(x) …
func (f *Formatter) lagrangePx(points []series.Point) string {
	var sb strings.Builder
	sb.WriteString("P(x) = ")
	for i, p := range points {
		f.writeTerm(&sb, p.Y, i == 0)
		fmt.Fprintf(&sb, ` \cdot L_{%d}(x)`, i)
	}

	return sb.String()
}

// lagrangeSteps: L_{i}(x) = {(x - x_j)… \above (x_i - x_j)…} = {(x - x_j)… \above Π}
func (f *Formatter) lagrangeSteps(points []series.Point) []string {
	if len(points) == 1 {
		return []string{"L_{0}(x) = 1"}
	}

	steps := make([]string, 0, len(points))
	for i, pi := range points {
		var num, den strings.Builder
		prod := 1.0
		for j, pj := range points {
			if j == i {
				continue
			}
			f.writeFactor(&num, pj.X)
			den.WriteByte('(')
			f.writeDifference(&den, pi.X, pj.X)
			den.WriteByte(')')
			prod *= pi.X - pj.X
		}
		steps = append(steps, fmt.Sprintf(`L_{%d}(x) = {%s \above %s} = {%s \above %s}`,
			i, num.String(), den.String(), num.String(), f.Number(prod)))
	}

	return steps
}

// newtonPx: P(x) = y_a ± |c_1| \cdot (x - x_a) ± |c_2| \cdot (x - x_a)(x - x_b) …
func (f *Formatter) newtonPx(points []series.Point, table *divdiff.Table, backward bool) string {
	n := len(points)
	var sb strings.Builder
	sb.WriteString("P(x) = ")

	var product strings.Builder
	for k := 0; k <= table.Orders(); k++ {
		c, _ := coefficient(table, k, backward)
		f.writeTerm(&sb, c, k == 0)
		if k > 0 {
			f.writeFactor(&product, points[anchor(n, k-1, backward)].X)
			sb.WriteString(` \cdot `)
			sb.WriteString(product.String())
		}
	}

	return sb.String()
}

// newtonGeneral is the symbolic form with f[…] coefficients and x_{i} factors.
func newtonGeneral(n int, backward bool) string {
	var sb, product strings.Builder
	sb.WriteString("P(x) = ")
	for k := 0; k < n; k++ {
		first, last := 0, k
		if backward {
			first, last = n-1-k, n-1
		}
		if k > 0 {
			fmt.Fprintf(&product, "(x - x_{%d})", anchor(n, k-1, backward))
			sb.WriteString(" + ")
		}
		sb.WriteString(label(first, last))
		if k > 0 {
			sb.WriteString(` \cdot `)
			sb.WriteString(product.String())
		}
	}

	return sb.String()
}

// newtonCells derives every stored cell from the two below it:
// f[x_a;…;x_b] = {f[upper] - f[lower] \above x_b - x_a} = {v_u - v_l \above x_b - x_a} = r
func (f *Formatter) newtonCells(points []series.Point, table *divdiff.Table) []string {
	cells := table.Cells()
	steps := make([]string, 0, len(cells))
	for _, c := range cells {
		a, b := c.Span()
		lower, _ := table.Value(c.Order-1, c.Index)
		upper, _ := table.Value(c.Order-1, c.Index+1)

		var values, span strings.Builder
		f.writeDifference(&values, upper, lower)
		f.writeDifference(&span, points[b].X, points[a].X)

		steps = append(steps, fmt.Sprintf(`%s = {%s - %s \above x_{%d} - x_{%d}} = {%s \above %s} = %s`,
			label(a, b), label(a+1, b), label(a, b-1), b, a,
			values.String(), span.String(), f.Number(c.Value)))
	}

	return steps
}

// coefficient returns the k-th Newton coefficient for the chosen anchor.
func coefficient(table *divdiff.Table, k int, backward bool) (float64, bool) {
	if backward {
		return table.Last(k)
	}

	return table.First(k)
}

// anchor is the sample index of the j-th factor of the Newton products.
func anchor(n, j int, backward bool) int {
	if backward {
		return n - 1 - j
	}

	return j
}

// label names a divided difference. Spans of more than three samples are
// abbreviated to their ends.
func label(first, last int) string {
	var sb strings.Builder
	sb.WriteString("f[")
	if last-first > 2 {
		fmt.Fprintf(&sb, "x_{%d};...;x_{%d}", first, last)
	} else {
		for i := first; i <= last; i++ {
			if i > first {
				sb.WriteByte(';')
			}
			fmt.Fprintf(&sb, "x_{%d}", i)
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// writeTerm appends v as a summand: "v" / "-|v|" when leading, " + |v|" / " - |v|" otherwise.
func (f *Formatter) writeTerm(sb *strings.Builder, v float64, leading bool) {
	sign, mag := signOf(v)
	switch {
	case leading && sign == '-':
		sb.WriteByte('-')
	case !leading:
		sb.WriteByte(' ')
		sb.WriteByte(sign)
		sb.WriteByte(' ')
	}
	sb.WriteString(f.Number(mag))
}

// writeFactor appends (x - x_i), or (x + |x_i|) for negative x_i.
func (f *Formatter) writeFactor(sb *strings.Builder, xi float64) {
	sb.WriteString("(x")
	f.writeMinus(sb, xi)
	sb.WriteByte(')')
}

// writeDifference appends "a - b", normalised to "a + |b|" for negative b.
func (f *Formatter) writeDifference(sb *strings.Builder, a, b float64) {
	f.writeTerm(sb, a, true)
	f.writeMinus(sb, b)
}

// writeMinus appends " - b", or " + |b|" for negative b.
func (f *Formatter) writeMinus(sb *strings.Builder, b float64) {
	sign, mag := signOf(b)
	if sign == '+' {
		sb.WriteString(" - ")
	} else {
		sb.WriteString(" + ")
	}
	sb.WriteString(f.Number(mag))
}

// signOf splits v into its display sign and magnitude.
func signOf(v float64) (byte, float64) {
	if math.IsNaN(v) || v >= 0 {
		return '+', math.Abs(v)
	}

	return '-', -v
}
