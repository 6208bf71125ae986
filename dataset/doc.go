// Package dataset holds one named interpolation dataset together with the
// values derived from it.
//
// A Dataset owns its points in insertion order, the equidistance flag and
// the divided-difference table. Every mutator (SetPoints, SetPoint, AddPoint,
// RemovePoint) recomputes both derived values before it releases the lock,
// so a reader never observes points paired with a stale table.
//
// Concurrency:
//
//	One sync.RWMutex per Dataset. Evaluation, sampling and formatting hold the
//	read lock; edits hold the write lock. Distinct datasets never contend.
//
// Names are limited to MaxNameLen runes (255 by default); longer names are
// rejected with ErrNameTooLong rather than truncated.
package dataset
