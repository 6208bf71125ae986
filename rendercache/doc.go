// Package rendercache keeps a bounded set of rendered formula assets keyed by
// the exact formula text they were produced from.
//
// Cache is a least-recently-used map backed by hashicorp/golang-lru's simplelru.
// A hit promotes the entry and never invokes the renderer. A miss renders,
// inserts the asset as most recently used and evicts the oldest entries until
// the size is back at capacity; every evicted or purged asset is handed to the
// ReleaseFunc exactly once.
//
// A failed render inserts nothing: the cache content and recency are left as
// they were and the renderer's error is returned wrapped in ErrRenderFailed.
//
// All methods are safe for concurrent use. One mutex serialises callers,
// including the time spent inside the renderer, so a text is never rendered
// twice by racing misses. RenderFunc and ReleaseFunc run under that mutex and
// must not call back into the same Cache.
//
// Observability:
//
//	<ns>_render_cache_hits_total       GetOrRender served from the cache
//	<ns>_render_cache_misses_total     GetOrRender invoked the renderer
//	<ns>_render_cache_evictions_total  assets dropped for capacity
//	<ns>_render_cache_failures_total   renderer returned an error
//
// The counters are registered only when WithRegisterer is given.
package rendercache
