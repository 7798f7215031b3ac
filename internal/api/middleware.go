package api

import (
	"log/slog"
	"net/http"
	"survey-distance-service/internal/platform/metrics"
	"survey-distance-service/internal/platform/obs"
	"time"
)

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestIDMiddleware reuses the caller's X-Request-ID when it is well formed
// and mints one otherwise, then stores it in the request context for logging.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(obs.HeaderRequestID)
		if !obs.ValidRequestID(id) {
			id = obs.NewRequestID()
		}

		w.Header().Set(obs.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(obs.WithRequestID(r.Context(), id)))
	})
}

// accessMiddleware logs end-to-end request duration and response size, and
// feeds the same numbers to Prometheus.
func accessMiddleware(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		next.ServeHTTP(sw, r)

		dur := time.Since(start)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		// ServeMux records the matched pattern on r; unmatched paths share
		// one label so arbitrary URLs cannot grow the series count.
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(r.Method, path, sw.status, dur)

		slog.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", sw.status,
			"bytes", sw.bytes,
			"dur_ms", dur.Milliseconds(),
		)
	})
}
