package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/precinct-records/pkg/ctxutil"
)

// idleEviction drops a client's limiter after it has been unused this long.
const idleEviction = 10 * time.Minute

// RateLimiter hands out per-client token buckets. Each Limit call gets its
// own keyspace; routes wrapped with the same Limit value share a budget.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*limitScope
	stop   chan struct{}
	once   sync.Once
}

type limitScope struct {
	every rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a sweeper that runs every cleanupInterval to forget
// idle clients. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows max requests per window for each client IP as recorded by
// ClientIP, falling back to the connection address. max or window <= 0
// disables limiting.
func (rl *RateLimiter) Limit(max int, window time.Duration) Middleware {
	if max <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	s := &limitScope{
		every:   rate.Every(window / time.Duration(max)),
		burst:   max,
		clients: make(map[string]*clientLimiter),
	}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, s)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ctxutil.ClientIPFromCtx(r.Context())
			if key == "" {
				key = r.RemoteAddr
			}

			if wait := s.reserve(key, time.Now()); wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// reserve takes a token for key and returns 0, or returns how long the
// client has to wait without consuming anything.
func (s *limitScope) reserve(key string, now time.Time) time.Duration {
	s.mu.Lock()
	c, ok := s.clients[key]
	if !ok {
		c = &clientLimiter{lim: rate.NewLimiter(s.every, s.burst)}
		s.clients[key] = c
	}
	c.lastSeen = now
	s.mu.Unlock()

	res := c.lim.ReserveN(now, 1)
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return d
	}
	return 0
}

func (s *limitScope) forgetIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, c := range s.clients {
		if now.Sub(c.lastSeen) > idleEviction {
			delete(s.clients, k)
		}
	}
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			scopes := append([]*limitScope(nil), rl.scopes...)
			rl.mu.Unlock()
			for _, s := range scopes {
				s.forgetIdle(now)
			}
		}
	}
}
