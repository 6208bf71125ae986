package rendercache

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Sentinel errors for the render cache.
var (
	// ErrBadCapacity indicates a capacity below one.
	ErrBadCapacity = errors.New("rendercache: capacity must be >= 1")

	// ErrRenderFailed wraps every error returned by a RenderFunc.
	ErrRenderFailed = errors.New("rendercache: render failed")

	// ErrNilRender indicates GetOrRender was called without a renderer.
	ErrNilRender = errors.New("rendercache: nil render func")
)

// DefaultNamespace prefixes the prometheus counter names.
const DefaultNamespace = "finter"

// RenderFunc turns formula text into an asset. It runs under the cache mutex.
type RenderFunc[A any] func(text string) (A, error)

// ReleaseFunc disposes of an asset that left the cache. It may be nil.
// It runs under the cache mutex.
type ReleaseFunc[A any] func(text string, asset A)

// Options configures a Cache.
type Options struct {
	Namespace  string
	Registerer prometheus.Registerer
	Logger     zerolog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithRegisterer registers the cache counters on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// WithNamespace overrides DefaultNamespace. Panics on an empty namespace.
func WithNamespace(ns string) Option {
	return func(o *Options) {
		if ns == "" {
			panic("rendercache: empty metrics namespace")
		}
		o.Namespace = ns
	}
}

// WithLogger sets the logger used for eviction and failure events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the finter namespace, no registerer and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Namespace: DefaultNamespace,
		Logger:    zerolog.Nop(),
	}
}
