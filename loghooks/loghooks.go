// Package loghooks adapts paramcache.Hooks onto slog. Group cascades fire
// on every write and can be sampled; failures always log.
package loghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/planvault/paramcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CascadeEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	cascadeCtr atomic.Uint64
}

var _ paramcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) StoreWriteFailed(path string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("paramcache.store_write_failed",
		"path", path,
		"err", err)
}

func (h *Hooks) SimCacheInvalidated(pattern string, count int) {
	if h.l == nil {
		return
	}
	h.l.Debug("paramcache.simcache_invalidated",
		"pattern", pattern,
		"count", count)
}

func (h *Hooks) SimCacheInvalidateFailed(pattern string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("paramcache.simcache_invalidate_failed",
		"pattern", pattern,
		"err", err)
}

func (h *Hooks) CoercionFailed(path, raw string) {
	if h.l == nil {
		return
	}
	h.l.Debug("paramcache.coercion_failed",
		"path", path,
		"raw", raw)
}

func (h *Hooks) GroupCascade(path string, groups int) {
	if h.l == nil || !sample(h.opts.CascadeEvery, &h.cascadeCtr) {
		return
	}
	h.l.Debug("paramcache.group_cascade",
		"path", path,
		"groups", groups)
}
