package handler

import (
	"log/slog"
	"net/http"
	"time"
)

// responseMeter records what the handler wrote so the access log can
// report it.
type responseMeter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (m *responseMeter) WriteHeader(code int) {
	m.status = code
	m.ResponseWriter.WriteHeader(code)
}

func (m *responseMeter) Write(p []byte) (int, error) {
	n, err := m.ResponseWriter.Write(p)
	m.bytes += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (m *responseMeter) Unwrap() http.ResponseWriter { return m.ResponseWriter }

// AccessLog logs one line per request: method, path, outcome, timing and
// the acting role when the caller sent one.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		meter := &responseMeter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(meter, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", meter.status,
			"bytes", meter.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
		}
		if role := r.Header.Get("X-Role"); role != "" {
			attrs = append(attrs, "role", role)
		}
		slog.Info("request", attrs...)
	})
}
