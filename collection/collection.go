package collection

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/finter/dataset"
	"github.com/katalvlaran/finter/formula"
	"github.com/katalvlaran/finter/interp"
	"github.com/katalvlaran/finter/series"
)

// Collection is an ordered catalog of datasets.
type Collection struct {
	mu     sync.RWMutex // guards sets and order
	nextID uint64       // atomic ID generator
	sets   map[ID]*dataset.Dataset
	order  []ID

	formatter   *formula.Formatter
	datasetOpts []dataset.Option
	log         zerolog.Logger
}

// New creates an empty Collection.
// Defaults: formula.NewFormatter(), dataset.DefaultOptions(), zerolog.Nop().
func New(opts ...Option) *Collection {
	c := &Collection{
		sets:      make(map[ID]*dataset.Dataset),
		formatter: formula.NewFormatter(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add stores a new dataset built from a copy of points and returns its ID.
// An empty name becomes "interpolation #<id>".
func (c *Collection) Add(name string, points []series.Point) (ID, error) {
	id := ID(atomic.AddUint64(&c.nextID, 1))
	opts := append(append([]dataset.Option(nil), c.datasetOpts...), dataset.WithFallbackName(DefaultName(id)))
	d, err := dataset.New(name, points, opts...)
	if err != nil {
		return 0, err
	}
	name = d.Name()

	c.mu.Lock()
	c.sets[id] = d
	c.order = append(c.order, id)
	c.mu.Unlock()

	c.log.Debug().Uint64("id", uint64(id)).Str("name", name).Int("points", len(points)).
		Bool("equidistant", d.Equidistant()).Msg("dataset added")

	return id, nil
}

// AddText parses text with series.ParseWith and adds the result.
func (c *Collection) AddText(name, text string, opts ...series.Option) (ID, error) {
	points, err := series.ParseWith(text, opts...)
	if err != nil {
		return 0, err
	}

	return c.Add(name, points)
}

// Remove deletes the dataset with the given ID.
func (c *Collection) Remove(id ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sets[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(c.sets, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.log.Debug().Uint64("id", uint64(id)).Msg("dataset removed")

	return nil
}

// Get returns the dataset with the given ID.
func (c *Collection) Get(id ID) (*dataset.Dataset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.sets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return d, nil
}

// Has reports whether id is in the collection.
func (c *Collection) Has(id ID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.sets[id]

	return ok
}

// IDs returns the IDs in insertion order.
func (c *Collection) IDs() []ID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]ID(nil), c.order...)
}

// List returns a snapshot of every dataset in insertion order.
func (c *Collection) List() []Entry {
	c.mu.RLock()
	sets := make([]*dataset.Dataset, len(c.order))
	ids := append([]ID(nil), c.order...)
	for i, id := range ids {
		sets[i] = c.sets[id]
	}
	c.mu.RUnlock()

	out := make([]Entry, len(ids))
	for i, d := range sets {
		s := d.Snapshot()
		out[i] = Entry{ID: ids[i], Name: s.Name, Points: s.Points}
	}

	return out
}

// Len returns the number of datasets.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.sets)
}

// Clear removes every dataset. IDs are not reused afterwards.
func (c *Collection) Clear() {
	c.mu.Lock()
	n := len(c.sets)
	c.sets = make(map[ID]*dataset.Dataset)
	c.order = nil
	c.mu.Unlock()

	c.log.Debug().Int("removed", n).Msg("collection cleared")
}

// Rename changes the display name of a dataset.
// An empty name restores DefaultName(id).
func (c *Collection) Rename(id ID, name string) error {
	d, err := c.Get(id)
	if err != nil {
		return err
	}

	return d.SetName(name)
}

// SetPoints replaces the points of a dataset.
func (c *Collection) SetPoints(id ID, points []series.Point) error {
	d, err := c.Get(id)
	if err != nil {
		return err
	}
	if err = d.SetPoints(points); err != nil {
		return err
	}
	c.log.Debug().Uint64("id", uint64(id)).Int("points", len(points)).Msg("dataset points replaced")

	return nil
}

// Evaluate computes P(x) for a dataset with variant v.
func (c *Collection) Evaluate(id ID, v interp.Variant, x float64) (float64, error) {
	d, err := c.Get(id)
	if err != nil {
		return 0, err
	}

	return d.Evaluate(v, x)
}

// Sample evaluates variant v of a dataset over [from, to].
func (c *Collection) Sample(id ID, v interp.Variant, from, to float64, steps int) ([]series.Point, error) {
	d, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	return d.Sample(v, from, to, steps)
}

// Formula returns the display lines of variant v for a dataset: the
// step-by-step derivation when stepByStep is set, otherwise P(x) alone.
func (c *Collection) Formula(id ID, v interp.Variant, stepByStep bool) ([]string, error) {
	d, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	f, err := d.Formula(c.formatter, v)
	if err != nil {
		return nil, err
	}

	return f.Lines(stepByStep), nil
}

// DefaultName is the name given to a dataset added without one.
func DefaultName(id ID) string {
	return "interpolation #" + id.String()
}
