package middleware

import (
	"math"
	"net/http"
	"strconv"

	perr "sentilex/internal/platform/errors"
	"sentilex/internal/platform/metrics"
	pnet "sentilex/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond a process-wide token bucket with a 429 envelope.
// rps <= 0 disables limiting
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = int(math.Ceil(rps))
	}
	return Limit(rate.NewLimiter(rate.Limit(rps), burst))
}

// Limit is RateLimit over a caller owned limiter
func Limit(lim *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := lim.Reserve()
			if !res.OK() {
				reject(w, r, 1)
				return
			}
			if d := res.Delay(); d > 0 {
				res.Cancel()
				reject(w, r, int(math.Ceil(d.Seconds())))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, retryAfter int) {
	metrics.RateLimitedTotal.Inc()
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	status, body := pnet.Error(perr.Newf(perr.ErrorCodeTooManyRequests, "too many requests"), pnet.RequestID(r.Context()))
	writeWire(w, status, body)
}
