// Package promhooks adapts paramcache.Hooks onto Prometheus counters.
package promhooks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/planvault/paramcache"
)

type Hooks struct {
	storeWriteFailures prometheus.Counter
	simInvalidations   *prometheus.CounterVec
	simEntriesCleared  prometheus.Counter
	coercionFailures   prometheus.Counter
	groupCascades      prometheus.Counter
}

var _ paramcache.Hooks = (*Hooks)(nil)

// New registers the counters on reg (use prometheus.DefaultRegisterer for
// the process-wide registry).
func New(reg prometheus.Registerer) *Hooks {
	f := promauto.With(reg)
	return &Hooks{
		storeWriteFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "paramcache_store_write_failures_total",
			Help: "Writes that reached the cache only because the backing store rejected them.",
		}),
		simInvalidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paramcache_simcache_invalidations_total",
			Help: "External simulation cache invalidation attempts.",
		}, []string{"scope", "result"}),
		simEntriesCleared: f.NewCounter(prometheus.CounterOpts{
			Name: "paramcache_simcache_entries_cleared_total",
			Help: "Entries reported cleared by the external simulation cache.",
		}),
		coercionFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "paramcache_coercion_failures_total",
			Help: "Numeric-path string values kept as strings after a failed parse.",
		}),
		groupCascades: f.NewCounter(prometheus.CounterOpts{
			Name: "paramcache_group_cascades_total",
			Help: "Writes that cleared at least one cached group variant.",
		}),
	}
}

func scopeLabel(pattern string) string {
	if pattern == "" {
		return "all"
	}
	return "profile"
}

func (h *Hooks) StoreWriteFailed(string, error) {
	h.storeWriteFailures.Inc()
}

func (h *Hooks) SimCacheInvalidated(pattern string, count int) {
	h.simInvalidations.WithLabelValues(scopeLabel(pattern), "ok").Inc()
	h.simEntriesCleared.Add(float64(count))
}

func (h *Hooks) SimCacheInvalidateFailed(pattern string, _ error) {
	h.simInvalidations.WithLabelValues(scopeLabel(pattern), "error").Inc()
}

func (h *Hooks) CoercionFailed(string, string) {
	h.coercionFailures.Inc()
}

func (h *Hooks) GroupCascade(string, int) {
	h.groupCascades.Inc()
}
