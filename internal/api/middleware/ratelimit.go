package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds limiter memory; the least recently seen client is evicted
const maxTrackedClients = 10000

// RateLimiter is a per-client token bucket limiter
type RateLimiter struct {
	clients *lru.Cache[string, *rate.Limiter]
	keyOf   func(r *http.Request) string
	limit   rate.Limit
	window  time.Duration
	burst   int
	mu      sync.Mutex
}

// NewRateLimiter creates a limiter keyed by the connection's remote address.
// requests: maximum number of requests allowed per window
// window: time window duration (e.g., 1 minute)
//
// Forwarding headers are not consulted. Behind a trusted proxy, mount
// chi's middleware.RealIP ahead of the limiter.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return newRateLimiter(requests, window, ipKey)
}

// NewUserRateLimiter creates a limiter keyed by the authenticated user.
// It must run after RequireAuth; anonymous requests fall back to the IP key.
func NewUserRateLimiter(requests int, window time.Duration) *RateLimiter {
	return newRateLimiter(requests, window, userKey)
}

func newRateLimiter(requests int, window time.Duration, keyOf func(*http.Request) string) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	// lru.New only fails for a non-positive size
	clients, _ := lru.New[string, *rate.Limiter](maxTrackedClients)
	return &RateLimiter{
		clients: clients,
		keyOf:   keyOf,
		limit:   rate.Every(window / time.Duration(requests)),
		window:  window,
		burst:   requests,
	}
}

// Middleware returns a rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(rl.keyOf(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			writeJSONError(w, http.StatusTooManyRequests, "RateLimitExceeded", "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow checks if a client is allowed to make a request
func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	limiter, ok := rl.clients.Get(clientID)
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.clients.Add(clientID, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

func ipKey(r *http.Request) string {
	return "ip:" + getClientIP(r)
}

func userKey(r *http.Request) string {
	if userID := GetUserID(r); userID != "" {
		return "user:" + userID
	}
	return ipKey(r)
}

// getClientIP returns the host part of RemoteAddr
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
