package series

import (
	"errors"
	"fmt"
)

// Sentinel errors for series parsing.
var (
	// ErrMalformedInput indicates a pair token or numeric literal that could not be read.
	ErrMalformedInput = errors.New("series: malformed input")
)

const (
	// PairSeparator separates two consecutive pairs.
	PairSeparator = ";"

	// CoordSeparator separates x from y inside one pair.
	CoordSeparator = ","

	// DefaultEpsilon is the relative tolerance used to compare abscissa gaps.
	DefaultEpsilon = 1e-9
)

// Point is one sample of the interpolated function.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// String renders the point the way the data point list shows it.
func (p Point) String() string {
	return fmt.Sprintf("x=%.2f y=%.2f", p.X, p.Y)
}

// Options configures ParseWith.
type Options struct {
	// Lenient substitutes 0 for unreadable literals instead of failing.
	Lenient bool
}

// Option is a functional option for ParseWith.
type Option func(*Options)

// WithLenient switches the parser to the zero-substitution policy.
func WithLenient() Option {
	return func(o *Options) {
		o.Lenient = true
	}
}

// WithStrict restores the default rejecting policy. Useful when an option
// slice is assembled from configuration.
func WithStrict() Option {
	return func(o *Options) {
		o.Lenient = false
	}
}

// DefaultOptions returns the strict parser configuration.
func DefaultOptions() Options {
	return Options{Lenient: false}
}

// Rect is an axis-aligned bounding box over a set of points.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }
