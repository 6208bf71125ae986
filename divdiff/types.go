package divdiff

import "errors"

var (
	// ErrOutOfRange indicates that an (order, index) pair lies outside the table.
	ErrOutOfRange = errors.New("divdiff: cell out of range")
)

// Table is the triangular divided-difference structure of one dataset.
//
// xs and ys are private copies of the sample coordinates; rows[k-1] is order k.
type Table struct {
	xs   []float64
	ys   []float64
	rows [][]float64
}

// Cell addresses one entry of the table together with its value.
// Order 0 cells are the sample ordinates.
type Cell struct {
	Order int
	Index int
	Value float64
}

// Span returns the first and last sample index the cell covers.
func (c Cell) Span() (first, last int) {
	return c.Index, c.Index + c.Order
}
