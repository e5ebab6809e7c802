package module

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sentilex/internal/core/version"
	modkit "sentilex/internal/modkit"
	phttp "sentilex/internal/platform/net/http"
	metahttp "sentilex/internal/services/api/meta/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
)

func get(t *testing.T, mux stdhttp.Handler, path string, into any) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("GET %s = %d (%s)", path, rec.Code, rec.Body.String())
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(env.Data, into); err != nil {
		t.Fatalf("GET %s data: %v", path, err)
	}
}

func TestModule_NoStoresReportsReady(t *testing.T) {
	now := time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)
	m := New(modkit.Deps{Clock: clockwork.NewFakeClockAt(now)}, nil)
	if m.Name() != "meta" || m.Prefix() != "/meta" {
		t.Fatalf("name=%q prefix=%q", m.Name(), m.Prefix())
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	var health metahttp.HealthResponse
	get(t, mux, "/meta/health", &health)
	if !health.OK || health.Service != version.ServiceName || health.Started != "2025-09-03T13:00:00Z" {
		t.Fatalf("health = %+v", health)
	}

	var ready metahttp.ReadyResponse
	get(t, mux, "/meta/ready", &ready)
	if ready.Status != "ok" || len(ready.Checks) != 3 {
		t.Fatalf("ready = %+v", ready)
	}
	for _, c := range ready.Checks {
		if c.Status != "skipped" {
			t.Fatalf("check %+v, want skipped", c)
		}
	}
}
