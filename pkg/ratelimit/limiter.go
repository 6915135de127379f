package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// window is one fixed-window counter for a single client key.
type window struct {
	count int
	start time.Time
}

// Limiter throttles requests per client key using a fixed window, not a
// sliding one. A burst can double across a window boundary; that trade-off
// is accepted in exchange for the simpler counter.
type Limiter struct {
	mu       sync.Mutex
	windows  *cache.Cache
	max      int
	interval time.Duration
	now      func() time.Time
}

// New creates a limiter allowing max requests per interval and key.
// Stale windows are evicted by the cache once they are two intervals old,
// so abandoned client keys do not accumulate for the process lifetime.
func New(max int, interval time.Duration) *Limiter {
	return &Limiter{
		windows:  cache.New(2*interval, 10*time.Minute),
		max:      max,
		interval: interval,
		now:      time.Now,
	}
}

// Allow records one request for the key and reports whether it is within
// the limit. The read-modify-write on the key's window happens under a
// single lock, so concurrent calls never lose counts.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w := &window{start: now}
	if x, found := l.windows.Get(key); found {
		w = x.(*window)
	}

	if now.Sub(w.start) > l.interval {
		w.count = 1
		w.start = now
	} else {
		w.count++
	}

	l.windows.Set(key, w, cache.DefaultExpiration)
	return w.count <= l.max
}
