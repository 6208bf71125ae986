package dataset

import (
	"errors"

	"github.com/katalvlaran/finter/divdiff"
	"github.com/katalvlaran/finter/series"
)

// Sentinel errors for dataset operations.
var (
	// ErrNameTooLong indicates a name longer than the configured rune limit.
	ErrNameTooLong = errors.New("dataset: name too long")

	// ErrIndexOutOfRange indicates a point index outside 0..Len()-1.
	ErrIndexOutOfRange = errors.New("dataset: point index out of range")

	// ErrBadPoint indicates a point with a non-finite coordinate.
	ErrBadPoint = errors.New("dataset: point is not finite")
)

// DefaultMaxNameLen is the default rune limit for dataset names.
const DefaultMaxNameLen = 255

// Snapshot is a consistent copy of a Dataset taken under one read lock.
// The table is immutable and shared, the point slice is owned by the caller.
type Snapshot struct {
	Name        string
	Points      []series.Point
	Equidistant bool
	Table       *divdiff.Table
}

// Options configures a Dataset.
type Options struct {
	MaxNameLen int
	Epsilon    float64

	// FallbackName replaces an empty name. It is not subject to MaxNameLen.
	FallbackName string
}

// Option is a functional option for New.
type Option func(*Options)

// WithMaxNameLen sets the rune limit for names. Panics when n < 1.
func WithMaxNameLen(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("dataset: max name length must be >= 1")
		}
		o.MaxNameLen = n
	}
}

// WithEpsilon sets the relative tolerance of the equidistance check.
// Panics when eps is negative.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic("dataset: epsilon must be >= 0")
		}
		o.Epsilon = eps
	}
}

// WithFallbackName sets the name used whenever the dataset is given an
// empty one, in New or SetName.
func WithFallbackName(name string) Option {
	return func(o *Options) { o.FallbackName = name }
}

// DefaultOptions returns MaxNameLen 255 and series.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		MaxNameLen: DefaultMaxNameLen,
		Epsilon:    series.DefaultEpsilon,
	}
}
