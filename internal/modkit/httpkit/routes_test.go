package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "sentilex/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func tag(v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Tag", v)
			next.ServeHTTP(w, r)
		})
	}
}

func hit(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func pong(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func TestMountUnder(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	MountUnder(r, "/meta", []func(http.Handler) http.Handler{tag("meta")}, func(sub Router) {
		sub.Get("/health", pong)
	})
	// empty prefix groups on r, middleware stays scoped to the group
	MountUnder(r, "", []func(http.Handler) http.Handler{tag("history")}, func(sub Router) {
		sub.Get("/history", pong)
	})
	MountUnder(r, "/", nil, func(sub Router) {
		sub.Get("/stats", pong)
	})

	for path, want := range map[string]string{"/meta/health": "meta", "/history": "history", "/stats": ""} {
		rec := hit(t, m, path)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s = %d", path, rec.Code)
		}
		if got := rec.Header().Get("X-Tag"); got != want {
			t.Fatalf("%s X-Tag = %q, want %q", path, got, want)
		}
	}
}

func TestMountAPI(t *testing.T) {
	tests := []struct {
		version string
		path    string
	}{
		{"", "/api/analyze"},
		{"v1", "/api/v1/analyze"},
		{"/v2/", "/api/v2/analyze"},
	}
	for _, tc := range tests {
		m := chi.NewRouter()
		MountAPI(phttp.AdaptChi(m), tc.version, []func(http.Handler) http.Handler{tag("api")}, func(api Router) {
			api.Get("/analyze", pong)
		})
		rec := hit(t, m, tc.path)
		if rec.Code != http.StatusNoContent || rec.Header().Get("X-Tag") != "api" {
			t.Fatalf("version %q: %s = %d tag=%q", tc.version, tc.path, rec.Code, rec.Header().Get("X-Tag"))
		}
	}
}
