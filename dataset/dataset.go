package dataset

import (
	"fmt"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/katalvlaran/finter/divdiff"
	"github.com/katalvlaran/finter/formula"
	"github.com/katalvlaran/finter/interp"
	"github.com/katalvlaran/finter/series"
)

// Dataset is a named, ordered set of samples with its derived state.
type Dataset struct {
	mu sync.RWMutex // guards every field below

	name        string
	points      []series.Point
	equidistant bool
	table       *divdiff.Table

	opts Options
}

// New creates a Dataset from a copy of points.
// Fails with ErrNameTooLong or ErrBadPoint.
func New(name string, points []series.Point, opts ...Option) (*Dataset, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	name, err := resolveName(name, o)
	if err != nil {
		return nil, err
	}
	if err := checkPoints(points); err != nil {
		return nil, err
	}

	d := &Dataset{name: name, opts: o}
	d.replace(append([]series.Point(nil), points...))

	return d, nil
}

// Name returns the display name.
func (d *Dataset) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.name
}

// SetName renames the dataset. An empty name selects the fallback name.
func (d *Dataset) SetName(name string) error {
	name, err := resolveName(name, d.opts)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.name = name
	d.mu.Unlock()

	return nil
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.points)
}

// Points returns a copy of the points in insertion order.
func (d *Dataset) Points() []series.Point {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]series.Point(nil), d.points...)
}

// Equidistant reports whether consecutive abscissas share one gap.
func (d *Dataset) Equidistant() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.equidistant
}

// Table returns the divided-difference table of the current points.
func (d *Dataset) Table() *divdiff.Table {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.table
}

// Snapshot copies every field under a single read lock.
func (d *Dataset) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Snapshot{
		Name:        d.name,
		Points:      append([]series.Point(nil), d.points...),
		Equidistant: d.equidistant,
		Table:       d.table,
	}
}

// SetPoints replaces all points and recomputes the derived state.
func (d *Dataset) SetPoints(points []series.Point) error {
	if err := checkPoints(points); err != nil {
		return err
	}
	cp := append([]series.Point(nil), points...)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.replace(cp)

	return nil
}

// SetPoint overwrites the i-th point.
func (d *Dataset) SetPoint(i int, p series.Point) error {
	if err := checkPoints([]series.Point{p}); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.points) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(d.points))
	}
	cp := append([]series.Point(nil), d.points...)
	cp[i] = p
	d.replace(cp)

	return nil
}

// AddPoint appends p.
func (d *Dataset) AddPoint(p series.Point) error {
	if err := checkPoints([]series.Point{p}); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	cp := make([]series.Point, len(d.points), len(d.points)+1)
	copy(cp, d.points)
	d.replace(append(cp, p))

	return nil
}

// RemovePoint deletes the i-th point, keeping the order of the rest.
func (d *Dataset) RemovePoint(i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.points) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(d.points))
	}
	cp := make([]series.Point, 0, len(d.points)-1)
	cp = append(cp, d.points[:i]...)
	cp = append(cp, d.points[i+1:]...)
	d.replace(cp)

	return nil
}

// Evaluate computes P(x) with variant v.
func (d *Dataset) Evaluate(v interp.Variant, x float64) (float64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return interp.Evaluate(v, d.points, d.table, x)
}

// Sample evaluates variant v at steps evenly spaced abscissas in [from, to].
func (d *Dataset) Sample(v interp.Variant, from, to float64, steps int) ([]series.Point, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return interp.Sample(v, d.points, d.table, from, to, steps)
}

// Formula renders variant v with f.
func (d *Dataset) Formula(f *formula.Formatter, v interp.Variant) (formula.Formula, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return f.Format(v, d.points, d.table)
}

// Coefficients returns the power-basis coefficients of the interpolant.
func (d *Dataset) Coefficients() ([]float64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return interp.Coefficients(d.points)
}

// Describe lists the points as "x=%.2f y=%.2f", one line each.
func (d *Dataset) Describe() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	lines := make([]string, len(d.points))
	for i, p := range d.points {
		lines[i] = p.String()
	}

	return lines
}

// replace installs points and recomputes the derived state. Caller holds d.mu
// for writing (or owns d exclusively).
func (d *Dataset) replace(points []series.Point) {
	d.points = points
	d.equidistant = series.IsEquidistantWithin(points, d.opts.Epsilon)
	d.table = divdiff.Build(points)
}

// resolveName applies the fallback to an empty name and the rune limit to
// any other.
func resolveName(name string, o Options) (string, error) {
	if name == "" {
		return o.FallbackName, nil
	}
	if n := utf8.RuneCountInString(name); n > o.MaxNameLen {
		return "", fmt.Errorf("%w: %d runes (max %d)", ErrNameTooLong, n, o.MaxNameLen)
	}

	return name, nil
}

func checkPoints(points []series.Point) error {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d (%v, %v)", ErrBadPoint, i, p.X, p.Y)
		}
	}

	return nil
}
