package collection

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/finter/dataset"
	"github.com/katalvlaran/finter/formula"
	"github.com/katalvlaran/finter/series"
)

// ErrNotFound indicates an ID that is not in the collection.
var ErrNotFound = errors.New("collection: dataset not found")

// ID identifies a dataset within one Collection.
type ID uint64

// String renders the ID in decimal.
func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Entry is one line of List.
type Entry struct {
	ID     ID
	Name   string
	Points []series.Point
}

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger for catalog events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Collection) { c.log = l }
}

// WithFormatter sets the formatter used by Formula.
func WithFormatter(f *formula.Formatter) Option {
	return func(c *Collection) {
		if f == nil {
			panic("collection: nil formatter")
		}
		c.formatter = f
	}
}

// WithNameLimit sets the rune limit for dataset names.
func WithNameLimit(n int) Option {
	return func(c *Collection) {
		c.datasetOpts = append(c.datasetOpts, dataset.WithMaxNameLen(n))
	}
}

// WithDatasetOptions forwards opts to every dataset the collection creates.
func WithDatasetOptions(opts ...dataset.Option) Option {
	return func(c *Collection) {
		c.datasetOpts = append(c.datasetOpts, opts...)
	}
}
