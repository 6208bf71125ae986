package series

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// IsEquidistant reports whether consecutive abscissas, in insertion order,
// are evenly spaced within DefaultEpsilon (relative).
func IsEquidistant(points []Point) bool {
	return IsEquidistantWithin(points, DefaultEpsilon)
}

// IsEquidistantWithin is IsEquidistant with an explicit tolerance.
// Fewer than three points have at most one gap and are always equidistant.
func IsEquidistantWithin(points []Point, eps float64) bool {
	if len(points) < 3 {
		return true
	}

	step := points[1].X - points[0].X
	for i := 2; i < len(points); i++ {
		gap := points[i].X - points[i-1].X
		if !scalar.EqualWithinRel(gap, step, eps) {
			return false
		}
	}

	return true
}

// Bounds returns the bounding box of points; ok is false for an empty slice.
// Non-finite coordinates are skipped.
func Bounds(points []Point) (r Rect, ok bool) {
	r = Rect{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		r.MinX = math.Min(r.MinX, p.X)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxY = math.Max(r.MaxY, p.Y)
		ok = true
	}
	if !ok {
		return Rect{}, false
	}

	return r, true
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Map linearly maps v from [fromMin, fromMax] onto [toMin, toMax].
// A degenerate source range maps everything onto toMin.
func Map(v, fromMin, fromMax, toMin, toMax float64, clamp bool) float64 {
	if fromMax == fromMin {
		return toMin
	}
	v = (v-fromMin)/(fromMax-fromMin)*(toMax-toMin) + toMin
	if !clamp {
		return v
	}
	lo, hi := toMin, toMax
	if lo > hi {
		lo, hi = hi, lo
	}

	return Clamp(v, lo, hi)
}

// Abscissas returns the x coordinates in order.
func Abscissas(points []Point) []float64 {
	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}

	return xs
}

// Ordinates returns the y coordinates in order.
func Ordinates(points []Point) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}

	return ys
}
