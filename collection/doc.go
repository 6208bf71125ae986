// Package collection keeps the user's interpolation datasets in a catalog
// addressed by stable IDs.
//
// IDs come from an atomic counter and are never reused, so a handle held by a
// caller stays valid (or becomes ErrNotFound) no matter how many datasets are
// added or removed around it. List returns entries in insertion order.
//
// Datasets added without a name are called "interpolation #<id>"; the
// generated name is exempt from the WithNameLimit rune limit.
//
// Concurrency:
//
//	The catalog map is guarded by its own sync.RWMutex, held only long enough
//	to resolve an ID. Evaluation, sampling and formatting then run under the
//	dataset's lock, so work on distinct datasets proceeds in parallel.
//
// Example:
//
//	c := collection.New()
//	id, _ := c.AddText("", "0,1; 1,3; 2,7")
//	y, _ := c.Evaluate(id, interp.NewtonForward, 1.5)
//	lines, _ := c.Formula(id, interp.Lagrange, true)
package collection
