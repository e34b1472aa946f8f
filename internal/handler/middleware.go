package handler

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders sets the response headers a JSON API should always carry.
// The CSP forbids everything; nothing served here is a document.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// RateLimitConfig tunes the per-client request limiter.
type RateLimitConfig struct {
	// PerMinute is the number of requests one client may make per window.
	PerMinute int
	// TrustedProxies is how many reverse proxies sit in front of the
	// service and append to X-Forwarded-For. Zero means RemoteAddr is the
	// client.
	TrustedProxies int
}

// window counts requests in the current fixed one-minute window.
type window struct {
	start time.Time
	count int
}

// RateLimiter caps requests per client per minute, keyed by client IP.
type RateLimiter struct {
	cfg  RateLimitConfig
	mu   sync.Mutex
	seen map[string]*window
	done chan struct{}
}

// NewRateLimiter starts a limiter allowing perMinute requests per client,
// assuming one trusted reverse proxy. Call Stop when done with it.
func NewRateLimiter(perMinute int) *RateLimiter {
	return NewRateLimiterWithConfig(RateLimitConfig{PerMinute: perMinute, TrustedProxies: 1})
}

// NewRateLimiterWithConfig starts a limiter with explicit settings.
func NewRateLimiterWithConfig(cfg RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		cfg:  cfg,
		seen: make(map[string]*window),
		done: make(chan struct{}),
	}
	go rl.janitor()
	return rl
}

// Stop ends the janitor goroutine. The limiter keeps working after Stop,
// but stale clients are no longer evicted.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// janitor evicts clients whose window has long expired.
func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, w := range rl.seen {
				if now.Sub(w.start) > time.Minute {
					delete(rl.seen, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Middleware rejects clients over the limit with 429 and a Retry-After.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		now := time.Now()

		rl.mu.Lock()
		win, ok := rl.seen[ip]
		if !ok || now.Sub(win.start) >= time.Minute {
			win = &window{start: now}
			rl.seen[ip] = win
		}
		win.count++
		over := win.count > rl.cfg.PerMinute
		retryAfter := win.start.Add(time.Minute).Sub(now)
		rl.mu.Unlock()

		if over {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(ceilSeconds(retryAfter)))
			writeError(w, http.StatusTooManyRequests, "rate_limited")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func ceilSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// clientIP resolves the client address. With trusted proxies configured,
// the entry our own infrastructure appended to X-Forwarded-For is the
// rightmost minus the proxy count; anything left of it is caller-supplied
// and cannot be trusted.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.cfg.TrustedProxies > 0 {
		hops := strings.Split(xff, ",")
		if i := len(hops) - rl.cfg.TrustedProxies; i >= 0 && i < len(hops) {
			return strings.TrimSpace(hops[i])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
