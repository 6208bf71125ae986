package interp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for evaluation.
var (
	// ErrUnknownVariant indicates a Variant outside the closed set.
	ErrUnknownVariant = errors.New("interp: unknown variant")

	// ErrDegenerateDataset indicates two samples sharing the same abscissa.
	ErrDegenerateDataset = errors.New("interp: duplicate abscissa")

	// ErrTableMismatch indicates a divided-difference table built from other samples.
	ErrTableMismatch = errors.New("interp: table does not match points")

	// ErrBadRange indicates a sampling range that is empty, reversed or not finite.
	ErrBadRange = errors.New("interp: invalid sampling range")

	// ErrBadSteps indicates fewer than two samples were requested.
	ErrBadSteps = errors.New("interp: steps must be >= 2")

	// ErrIllConditioned indicates the Vandermonde solve lost precision.
	// Coefficients still returns its best estimate alongside this error.
	ErrIllConditioned = errors.New("interp: ill-conditioned system")
)

// Variant selects one of the interpolation constructions.
type Variant int

const (
	// Lagrange evaluates the Lagrange form.
	Lagrange Variant = iota

	// NewtonForward evaluates the progressive Newton form anchored at the first point.
	NewtonForward

	// NewtonBackward evaluates the regressive Newton form anchored at the last point.
	NewtonBackward
)

var variantNames = [...]string{
	Lagrange:       "lagrange",
	NewtonForward:  "newton-forward",
	NewtonBackward: "newton-backward",
}

// Variants lists every variant in display order.
func Variants() []Variant {
	return []Variant{Lagrange, NewtonForward, NewtonBackward}
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v >= Lagrange && v <= NewtonBackward
}

// String returns the stable lower-case name of the variant.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("variant(%d)", int(v))
	}

	return variantNames[v]
}

// ParseVariant maps a name (or a common alias) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lagrange":
		return Lagrange, nil
	case "newton-forward", "forward", "progressive":
		return NewtonForward, nil
	case "newton-backward", "backward", "regressive":
		return NewtonBackward, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
