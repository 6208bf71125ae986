package rendercache

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type counters struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	failures  prometheus.Counter
}

func newCounters(ns string) counters {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "render_cache",
			Name:      name,
			Help:      help,
		})
	}

	return counters{
		hits:      counter("hits_total", "Formula renders served from the cache."),
		misses:    counter("misses_total", "Formula renders that invoked the renderer."),
		evictions: counter("evictions_total", "Rendered assets evicted for capacity."),
		failures:  counter("failures_total", "Renderer calls that returned an error."),
	}
}

func (c counters) register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.hits, c.misses, c.evictions, c.failures} {
		if err := reg.Register(col); err != nil {
			return fmt.Errorf("rendercache: register metrics: %w", err)
		}
	}

	return nil
}
