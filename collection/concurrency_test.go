// Package collection_test verifies thread-safety of collection.Collection under concurrent operations.
package collection_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/finter/collection"
	"github.com/katalvlaran/finter/interp"
	"github.com/katalvlaran/finter/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAdd ensures concurrent Add calls yield distinct IDs.
func TestConcurrentAdd(t *testing.T) {
	c := collection.New()
	const num = 200
	ids := make([]collection.ID, num)
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(n int) {
			defer wg.Done()
			id, err := c.Add(fmt.Sprintf("set %d", n), []series.Point{{X: float64(n), Y: 1}})
			assert.NoError(t, err)
			ids[n] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[collection.ID]bool, num)
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	require.Equal(t, num, c.Len())
	require.Len(t, c.List(), num)
}

// TestConcurrentEvaluateAndEdit mixes evaluation, edits and removals on
// several datasets; no race or panic may occur and every surviving dataset
// stays consistent.
func TestConcurrentEvaluateAndEdit(t *testing.T) {
	c := collection.New()
	ids := make([]collection.ID, 8)
	for i := range ids {
		var err error
		ids[i], err = c.AddText("", "0,0; 1,1; 2,8; 3,27")
		require.NoError(t, err)
	}

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		id := ids[i%len(ids)]
		go func() {
			defer wg.Done()
			if y, err := c.Evaluate(id, interp.NewtonForward, 1.5); err == nil {
				assert.InDelta(t, 3.375, y, 1e-9)
			}
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Formula(id, interp.Lagrange, true)
			_ = c.List()
		}()
		go func(n int) {
			defer wg.Done()
			if n%25 == 0 {
				_ = c.Remove(id)

				return
			}
			_ = c.SetPoints(id, []series.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 8}, {X: 3, Y: 27}})
		}(i)
	}
	wg.Wait()

	for _, e := range c.List() {
		assert.Len(t, e.Points, 4)
	}
}
