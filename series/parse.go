package series

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

var errNonFinite = errors.New("non-finite literal")

// Parse reads text with the strict policy. See ParseWith.
func Parse(text string) ([]Point, error) {
	return ParseWith(text)
}

// ParseWith reads a "x,y;x,y;..." blob into an ordered slice of points.
//
// Empty input (or input made only of separators and whitespace) yields an
// empty, non-nil slice. Errors wrap ErrMalformedInput and name the offending
// pair by its position in the input.
//
// Complexity: O(len(text)).
func ParseWith(text string, opts ...Option) ([]Point, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tokens := strings.Split(text, PairSeparator)
	points := make([]Point, 0, len(tokens))
	prevX := 0.0
	for idx, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		p, err := parsePair(token, o.Lenient, prevX)
		if err != nil {
			return nil, fmt.Errorf("pair %d %q: %w", idx, token, err)
		}
		points = append(points, p)
		prevX = p.X
	}

	return points, nil
}

// parsePair splits one "x,y" token.
// In lenient mode a lone literal is read as y paired with prevX, the x of the
// preceding pair, and with more than two literals the last two win.
func parsePair(token string, lenient bool, prevX float64) (Point, error) {
	parts := strings.Split(token, CoordSeparator)
	if len(parts) != 2 && !lenient {
		return Point{}, fmt.Errorf("%w: expected 2 coordinates, got %d", ErrMalformedInput, len(parts))
	}

	var xs, ys string
	if len(parts) == 1 {
		ys = parts[0]
	} else {
		xs, ys = parts[len(parts)-2], parts[len(parts)-1]
	}

	var (
		p   Point
		err error
	)
	if len(parts) == 1 {
		p.X = prevX
	} else if p.X, err = parseLiteral(xs, lenient); err != nil {
		return Point{}, err
	}
	if p.Y, err = parseLiteral(ys, lenient); err != nil {
		return Point{}, err
	}

	return p, nil
}

func parseLiteral(s string, lenient bool) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := cast.ToFloat64E(s)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = errNonFinite
	}
	if err != nil {
		if lenient {
			return 0, nil
		}

		return 0, fmt.Errorf("%w: literal %q: %v", ErrMalformedInput, s, err)
	}

	return v, nil
}

// Format renders points back into the input format, so that
// Parse(Format(p)) reproduces p for values representable in %g.
func Format(points []Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteString(PairSeparator)
		}
		fmt.Fprintf(&sb, "%g%s%g", p.X, CoordSeparator, p.Y)
	}

	return sb.String()
}
