package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rohanthewiz/rroute/consts"
	"github.com/rohanthewiz/rroute/internal/shared"
)

type requestIDKey struct{}

// RequestID returns the request id stored by the server, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID reuses the caller's X-Request-Id or assigns a new one.
// The id is echoed on the response and forwarded to endpoints as a request header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(consts.HeaderRequestID)
		if id == "" {
			id = shared.GenerateID()
			r.Header.Set(consts.HeaderRequestID, id)
		}

		w.Header().Set(consts.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// rateLimit answers 429 once the shared token bucket is empty.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			w.Header().Set(consts.HeaderRetryAfter, "1")
			s.writeError(w, http.StatusTooManyRequests, "too many requests")
			s.metrics.observe(methodLabel(r.Method), "", http.StatusTooManyRequests, 0)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestInfo logs basic stats for every request that reaches the server.
func (s *Server) requestInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", status,
			"bytes", ww.BytesWritten(), "elapsed", time.Since(start), "request_id", RequestID(r.Context()))
	})
}
