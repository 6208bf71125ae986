package dataset_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/finter/dataset"
	"github.com/katalvlaran/finter/formula"
	"github.com/katalvlaran/finter/interp"
	"github.com/katalvlaran/finter/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubic() []series.Point {
	return []series.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 8}, {X: 3, Y: 27}}
}

func TestNew(t *testing.T) {
	pts := cubic()
	d, err := dataset.New("cube", pts)
	require.NoError(t, err)

	assert.Equal(t, "cube", d.Name())
	assert.Equal(t, 4, d.Len())
	assert.True(t, d.Equidistant())
	assert.Equal(t, 3, d.Table().Orders())

	// the dataset owns a copy
	pts[0].Y = 100
	assert.Equal(t, 0.0, d.Points()[0].Y)
}

func TestNew_Errors(t *testing.T) {
	_, err := dataset.New(strings.Repeat("a", 256), nil)
	assert.ErrorIs(t, err, dataset.ErrNameTooLong)

	_, err = dataset.New(strings.Repeat("ж", 255), nil)
	assert.NoError(t, err, "limit counts runes, not bytes")

	_, err = dataset.New("short", nil, dataset.WithMaxNameLen(3))
	assert.ErrorIs(t, err, dataset.ErrNameTooLong)

	_, err = dataset.New("nan", []series.Point{{X: math.NaN(), Y: 1}})
	assert.ErrorIs(t, err, dataset.ErrBadPoint)

	assert.Panics(t, func() { dataset.WithMaxNameLen(0)(&dataset.Options{}) })
	assert.Panics(t, func() { dataset.WithEpsilon(-1)(&dataset.Options{}) })
}

func TestSetName(t *testing.T) {
	d, err := dataset.New("", nil)
	require.NoError(t, err)

	require.NoError(t, d.SetName("renamed"))
	assert.Equal(t, "renamed", d.Name())
	assert.ErrorIs(t, d.SetName(strings.Repeat("x", 300)), dataset.ErrNameTooLong)
	assert.Equal(t, "renamed", d.Name())
}

func TestFallbackName(t *testing.T) {
	d, err := dataset.New("", nil, dataset.WithMaxNameLen(2), dataset.WithFallbackName("generated"))
	require.NoError(t, err)
	assert.Equal(t, "generated", d.Name())

	require.NoError(t, d.SetName("ok"))
	assert.ErrorIs(t, d.SetName("long"), dataset.ErrNameTooLong)
	require.NoError(t, d.SetName(""))
	assert.Equal(t, "generated", d.Name())
}

// TestEdits_Recompute verifies every mutator refreshes the flag and the table.
func TestEdits_Recompute(t *testing.T) {
	d, err := dataset.New("edits", cubic())
	require.NoError(t, err)

	require.NoError(t, d.SetPoint(3, series.Point{X: 5, Y: 125}))
	assert.False(t, d.Equidistant())
	y, err := d.Evaluate(interp.NewtonForward, 4)
	require.NoError(t, err)
	assert.InDelta(t, 64, y, 1e-9)

	require.NoError(t, d.RemovePoint(3))
	assert.True(t, d.Equidistant())
	assert.Equal(t, 2, d.Table().Orders())

	require.NoError(t, d.AddPoint(series.Point{X: 3, Y: 27}))
	assert.Equal(t, cubic(), d.Points())
	assert.Equal(t, 3, d.Table().Orders())

	require.NoError(t, d.SetPoints([]series.Point{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}))
	assert.False(t, d.Equidistant())
	assert.Equal(t, 3, d.Table().Len())

	require.NoError(t, d.SetPoints(nil))
	assert.Zero(t, d.Len())
	y, err = d.Evaluate(interp.Lagrange, 7)
	require.NoError(t, err)
	assert.Zero(t, y)
}

func TestEdits_Errors(t *testing.T) {
	d, err := dataset.New("edits", cubic())
	require.NoError(t, err)

	assert.ErrorIs(t, d.SetPoint(4, series.Point{}), dataset.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.SetPoint(-1, series.Point{}), dataset.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemovePoint(9), dataset.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.AddPoint(series.Point{X: math.Inf(1)}), dataset.ErrBadPoint)
	assert.ErrorIs(t, d.SetPoints([]series.Point{{Y: math.NaN()}}), dataset.ErrBadPoint)
	assert.Equal(t, cubic(), d.Points())
}

func TestEvaluateAndSample(t *testing.T) {
	d, err := dataset.New("cube", cubic())
	require.NoError(t, err)

	for _, v := range interp.Variants() {
		y, err := d.Evaluate(v, 1.5)
		require.NoError(t, err)
		assert.InDelta(t, 3.375, y, 1e-9, v.String())
	}

	pts, err := d.Sample(interp.NewtonBackward, -1, 1, 3)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.InDelta(t, -1, pts[0].Y, 1e-9)
	assert.InDelta(t, 0, pts[1].Y, 1e-9)
	assert.InDelta(t, 1, pts[2].Y, 1e-9)

	_, err = d.Sample(interp.Lagrange, 1, 1, 3)
	assert.ErrorIs(t, err, interp.ErrBadRange)
}

func TestFormulaAndCoefficients(t *testing.T) {
	d, err := dataset.New("line", []series.Point{{X: -2, Y: -4}, {X: 1, Y: 5}})
	require.NoError(t, err)

	f, err := d.Formula(formula.NewFormatter(), interp.NewtonForward)
	require.NoError(t, err)
	assert.Equal(t, `P(x) = -4 + 3 \cdot (x + 2)`, f.Px)

	c, err := d.Coefficients()
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.InDelta(t, 2, c[0], 1e-9)
	assert.InDelta(t, 3, c[1], 1e-9)
}

func TestDescribe(t *testing.T) {
	d, err := dataset.New("list", []series.Point{{X: 1, Y: 2.5}, {X: -0.126, Y: 3}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x=1.00 y=2.50", "x=-0.13 y=3.00"}, d.Describe())
}

func TestSnapshot(t *testing.T) {
	d, err := dataset.New("snap", cubic())
	require.NoError(t, err)

	s := d.Snapshot()
	require.NoError(t, d.AddPoint(series.Point{X: 4, Y: 64}))

	assert.Equal(t, "snap", s.Name)
	assert.Len(t, s.Points, 4)
	assert.Equal(t, 4, s.Table.Len())
	assert.True(t, s.Equidistant)
	assert.Equal(t, 5, d.Table().Len())
}

// TestConcurrentEditAndEvaluate races writers against readers; every read
// must see points and table of the same generation.
func TestConcurrentEditAndEvaluate(t *testing.T) {
	d, err := dataset.New("race", cubic())
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				_ = d.AddPoint(series.Point{X: float64(4 + id), Y: math.Pow(float64(4+id), 3)})
			} else {
				_ = d.RemovePoint(d.Len() - 1)
			}
		}(i)
		go func() {
			defer wg.Done()
			s := d.Snapshot()
			assert.Equal(t, len(s.Points), s.Table.Len())
			_, err := d.Evaluate(interp.NewtonForward, 0.5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
