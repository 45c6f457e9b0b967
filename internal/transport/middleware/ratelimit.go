package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter counts requests per client IP in fixed windows.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	counters sync.Map // map[string]*counter
	stop     chan struct{}
	once     sync.Once
}

type counter struct {
	mu    sync.Mutex
	start time.Time
	count int
}

// NewRateLimiter creates a limiter allowing limit requests per window and
// starts background cleanup of idle counters. Call Stop() on shutdown.
func NewRateLimiter(limit int, window, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter := rl.allow(clientIP(r))
			if !ok {
				secs := int(retryAfter.Round(time.Second) / time.Second)
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	now := rl.now()
	val, _ := rl.counters.LoadOrStore(key, &counter{start: now})
	c := val.(*counter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.start) >= rl.window {
		c.start = now
		c.count = 0
	}
	if c.count >= rl.limit {
		return false, c.start.Add(rl.window).Sub(now)
	}
	c.count++
	return true, 0
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := rl.now()
			rl.counters.Range(func(key, value any) bool {
				c := value.(*counter)
				c.mu.Lock()
				expired := now.Sub(c.start) >= rl.window
				c.mu.Unlock()
				if expired {
					rl.counters.Delete(key)
				}
				return true
			})
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
