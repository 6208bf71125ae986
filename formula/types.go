package formula

import (
	"errors"

	"github.com/katalvlaran/finter/interp"
)

// ErrBadPrecision indicates a non-positive number of significant digits.
var ErrBadPrecision = errors.New("formula: precision must be >= 1")

// DefaultPrecision is the number of significant digits used for coefficients.
const DefaultPrecision = 4

// Empty is the closed form of a dataset without points.
const Empty = "P(x) = 0"

// Formula is the rendered text of one variant for one dataset.
type Formula struct {
	Variant interp.Variant
	Px      string
	Steps   []string
}

// Lines returns the strings to display: the derivation when stepByStep is
// set and one exists, otherwise the closed form alone.
func (f Formula) Lines(stepByStep bool) []string {
	if stepByStep && len(f.Steps) > 0 {
		out := make([]string, len(f.Steps))
		copy(out, f.Steps)

		return out
	}

	return []string{f.Px}
}

// Options configures a Formatter.
type Options struct {
	Precision int
}

// Option is a functional option for NewFormatter.
type Option func(*Options)

// WithPrecision sets the significant digits used for numbers.
// Panics with ErrBadPrecision when digits < 1.
func WithPrecision(digits int) Option {
	return func(o *Options) {
		if digits < 1 {
			panic(ErrBadPrecision.Error())
		}
		o.Precision = digits
	}
}

// DefaultOptions returns Options{Precision: DefaultPrecision}.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}
