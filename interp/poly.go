package interp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/finter/series"
)

// Coefficients returns c such that P(x) = c[0] + c[1]·x + … + c[n-1]·x^(n-1)
// interpolates points.
//
// The Vandermonde system is solved with a QR factorization. Duplicate
// abscissas fail with ErrDegenerateDataset. A poorly conditioned system
// (widely spread or many abscissas) returns the computed coefficients
// together with an error wrapping ErrIllConditioned.
func Coefficients(points []series.Point) ([]float64, error) {
	n := len(points)
	switch n {
	case 0:
		return []float64{}, nil
	case 1:
		return []float64{points[0].Y}, nil
	}
	if err := Validate(points); err != nil {
		return nil, err
	}

	a := vandermonde(series.Abscissas(points), n-1)
	b := mat.NewDense(n, 1, series.Ordinates(points))
	c := mat.NewDense(n, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)
	err := qr.SolveTo(c, false, b)

	cc := make([]float64, n)
	for i := range cc {
		cc[i] = c.At(i, 0)
	}
	if err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return cc, fmt.Errorf("%w: %v", ErrIllConditioned, err)
		}

		return nil, err
	}

	return cc, nil
}

// Horner evaluates the power-basis polynomial c at x.
func Horner(c []float64, x float64) float64 {
	p := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		p = p*x + c[i]
	}

	return p
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}

	return x
}
