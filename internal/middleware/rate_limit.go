package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/baharkarakas/portfolio-api/internal/api/httpx"
)

const bucketIdle = 10 * time.Minute

type bucket struct {
	tokens float64
	last   time.Time
}

// tokenBucket keeps one bucket per client key. Buckets idle for longer than
// bucketIdle are dropped on the next sweep.
type tokenBucket struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rate      float64
	burst     float64
	now       func() time.Time
	lastSweep time.Time
}

func newTokenBucket(rps int, now func() time.Time) *tokenBucket {
	return &tokenBucket{
		buckets:   make(map[string]*bucket),
		rate:      float64(rps),
		burst:     float64(rps),
		now:       now,
		lastSweep: now(),
	}
}

func (tb *tokenBucket) allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	if now.Sub(tb.lastSweep) > bucketIdle {
		for k, b := range tb.buckets {
			if now.Sub(b.last) > bucketIdle {
				delete(tb.buckets, k)
			}
		}
		tb.lastSweep = now
	}

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.burst, last: now}
		tb.buckets[key] = b
	}
	b.tokens = min(b.tokens+now.Sub(b.last).Seconds()*tb.rate, tb.burst)
	b.last = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// RateLimit allows rps requests per second per client IP, with a burst of
// rps. A non-positive rps disables limiting.
func RateLimit(rps int) func(http.Handler) http.Handler {
	return rateLimit(rps, time.Now)
}

func rateLimit(rps int, now func() time.Time) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	tb := newTokenBucket(rps, now)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tb.allow(clientKey(r)) {
				w.Header().Set("Retry-After", "1")
				httpx.WriteError(w, http.StatusTooManyRequests, httpx.CodeRateLimited, "Too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
