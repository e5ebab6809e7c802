package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"sentilex/internal/platform/net/middleware"
)

// RequestTimeout bounds every /api request, batch scoring included
const RequestTimeout = 30 * time.Second

// CommonStack returns the middleware every /api route runs through, outermost first.
// origins restricts CORS; none means any origin. Rate limiting is per module
func CommonStack(origins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		// reads the request id, so it follows RequestID
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Second}),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins, MaxAge: 300}),
		middleware.NoCache(),
		middleware.StripSlashes(),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(RequestTimeout),
	}
}
