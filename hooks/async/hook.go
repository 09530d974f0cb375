// Package asynchook decouples hook consumers from write paths: events are
// queued and delivered by workers, and dropped when the queue is full.
//
//	raw := loghooks.New(slog.Default(), loghooks.Options{CascadeEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
package asynchook

import (
	"sync"

	"github.com/planvault/paramcache"
)

type Hooks struct {
	inner paramcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ paramcache.Hooks = (*Hooks)(nil)

func New(inner paramcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) StoreWriteFailed(path string, err error) {
	h.try(func() { h.inner.StoreWriteFailed(path, err) })
}

func (h *Hooks) SimCacheInvalidated(pattern string, count int) {
	h.try(func() { h.inner.SimCacheInvalidated(pattern, count) })
}

func (h *Hooks) SimCacheInvalidateFailed(pattern string, err error) {
	h.try(func() { h.inner.SimCacheInvalidateFailed(pattern, err) })
}

func (h *Hooks) CoercionFailed(path, raw string) {
	h.try(func() { h.inner.CoercionFailed(path, raw) })
}

func (h *Hooks) GroupCascade(path string, groups int) {
	h.try(func() { h.inner.GroupCascade(path, groups) })
}
