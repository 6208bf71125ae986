package divdiff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/finter/divdiff"
	"github.com/katalvlaran/finter/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubic samples y = x³ at x = 0..3; every order is exact in binary.
func cubic() []series.Point {
	return []series.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 8}, {X: 3, Y: 27}}
}

// TestBuild_Cubic checks every row of a hand-computed table, including the
// single top cell that carries the leading coefficient.
func TestBuild_Cubic(t *testing.T) {
	tbl := divdiff.Build(cubic())

	require.Equal(t, 4, tbl.Len())
	require.Equal(t, 3, tbl.Orders(), "orders 1..n-1 must all be kept")

	want := [][]float64{
		{0, 1, 8, 27},
		{1, 7, 19},
		{3, 6},
		{1},
	}
	for k, row := range want {
		got, err := tbl.Row(k)
		require.NoError(t, err)
		assert.Equal(t, row, got, "order %d", k)
	}
}

func TestBuild_RowSizesShrink(t *testing.T) {
	pts := make([]series.Point, 7)
	for i := range pts {
		pts[i] = series.Point{X: float64(i) * 0.5, Y: math.Sin(float64(i))}
	}
	tbl := divdiff.Build(pts)
	require.Equal(t, 6, tbl.Orders())
	for k := 0; k <= tbl.Orders(); k++ {
		row, err := tbl.Row(k)
		require.NoError(t, err)
		assert.Len(t, row, len(pts)-k)
	}
	assert.Len(t, tbl.Cells(), 7*6/2)
}

func TestBuild_Degenerate(t *testing.T) {
	empty := divdiff.Build(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Orders())
	assert.Empty(t, empty.Cells())
	_, ok := empty.First(0)
	assert.False(t, ok)
	_, ok = empty.Last(0)
	assert.False(t, ok)

	single := divdiff.Build([]series.Point{{X: 2, Y: 5}})
	assert.Equal(t, 1, single.Len())
	assert.Equal(t, 0, single.Orders())
	v, ok := single.First(0)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
	_, ok = single.First(1)
	assert.False(t, ok)
}

func TestTable_Value(t *testing.T) {
	tbl := divdiff.Build(cubic())

	v, err := tbl.Value(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	v, err = tbl.Value(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	for _, c := range [][2]int{{-1, 0}, {4, 0}, {1, 3}, {3, 1}, {0, -1}} {
		_, err = tbl.Value(c[0], c[1])
		assert.ErrorIs(t, err, divdiff.ErrOutOfRange, "cell %v", c)
	}

	var nilTable *divdiff.Table
	_, err = nilTable.Value(0, 0)
	assert.ErrorIs(t, err, divdiff.ErrOutOfRange)
}

func TestTable_FirstLast(t *testing.T) {
	tbl := divdiff.Build(cubic())

	first := []float64{0, 1, 3, 1}
	last := []float64{27, 19, 6, 1}
	for k := 0; k <= tbl.Orders(); k++ {
		f, ok := tbl.First(k)
		require.True(t, ok)
		assert.Equal(t, first[k], f, "first of order %d", k)

		l, ok := tbl.Last(k)
		require.True(t, ok)
		assert.Equal(t, last[k], l, "last of order %d", k)
	}
}

func TestTable_DoesNotAliasInput(t *testing.T) {
	pts := cubic()
	tbl := divdiff.Build(pts)
	pts[0].Y = 1000

	v, err := tbl.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	row[0] = -1
	again, _ := tbl.Row(1)
	assert.Equal(t, 1.0, again[0])
}

func TestTable_DuplicateAbscissa(t *testing.T) {
	tbl := divdiff.Build([]series.Point{{X: 1, Y: 2}, {X: 1, Y: 5}, {X: 3, Y: 7}})
	assert.False(t, tbl.Finite())

	v, err := tbl.Value(1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	top, ok := tbl.First(2)
	require.True(t, ok)
	assert.True(t, math.IsNaN(top) || math.IsInf(top, 0))

	same := divdiff.Build([]series.Point{{X: 1, Y: 2}, {X: 1, Y: 2}})
	v, _ = same.Value(1, 0)
	assert.True(t, math.IsNaN(v))
	assert.True(t, divdiff.Build(cubic()).Finite())
}

func TestTable_Abscissa(t *testing.T) {
	tbl := divdiff.Build(cubic())
	x, err := tbl.Abscissa(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
	_, err = tbl.Abscissa(4)
	assert.ErrorIs(t, err, divdiff.ErrOutOfRange)
}

func TestCell_Span(t *testing.T) {
	first, last := divdiff.Cell{Order: 2, Index: 1}.Span()
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)
}
