package middleware

import (
	"net/http"
	"time"

	"sentilex/internal/platform/logger"
	"sentilex/internal/platform/metrics"
	pnet "sentilex/internal/platform/net"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests at warn once they take this long, 0 never does
	Slow time.Duration
}

// AccessLogZerolog writes one line per request and observes its latency.
// It reads the request id, so it must run after RequestID; handlers calling
// logger.C(ctx) inherit the id from here
func AccessLogZerolog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			r = r.WithContext(ctx)
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)
			metrics.RequestDuration.WithLabelValues(route, r.Method, metrics.StatusClass(status)).
				Observe(elapsed.Seconds())

			log := logger.C(ctx)
			evt := log.Info()
			if status >= http.StatusInternalServerError {
				evt = log.Error()
			} else if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}

// routePattern keeps metric labels bounded; unmatched paths share one label
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
