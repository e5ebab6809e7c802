package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "sentilex/internal/platform/errors"
	pnet "sentilex/internal/platform/net"
	phttp "sentilex/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestJSON_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type %q", ct)
	}
}

func TestHandle_SuccessDefaultsTo200(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Body: map[string]int{"total_analyses": 3}, Header: http.Header{"X-Mode": {"blended"}}}
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID(http.MethodGet, "/api/stats", "rid-1"))

	env := decode(t, rec)
	if rec.Code != http.StatusOK || env.StatusCode != http.StatusOK || env.RequestID != "rid-1" {
		t.Fatalf("code=%d env=%+v", rec.Code, env)
	}
	if rec.Header().Get("X-Mode") != "blended" {
		t.Fatal("header not copied")
	}
	if m, ok := env.Data.(map[string]any); !ok || m["total_analyses"] != float64(3) {
		t.Fatalf("data = %v", env.Data)
	}
}

func TestHandle_ErrorBodyMapsStatus(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.WithField(perr.New(perr.ErrorCodeValidation, "Texto muito longo. Máximo 1000 caracteres."), "text"))
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID(http.MethodPost, "/api/analyze", "rid-2"))

	env := decode(t, rec)
	if rec.Code != http.StatusBadRequest || env.Code != perr.ErrorCodeValidation {
		t.Fatalf("code=%d env=%+v", rec.Code, env)
	}
	if env.Error != "Texto muito longo. Máximo 1000 caracteres." || env.Data != nil {
		t.Fatalf("env = %+v", env)
	}
}

func TestHandle_ForeignErrorIs500(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(errors.New("boom")) })
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID(http.MethodGet, "/", ""))
	if rec.Code != http.StatusInternalServerError || decode(t, rec).Error != "boom" {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestOK(t *testing.T) {
	if r := phttp.OK("x"); r.Status != http.StatusOK || r.Body != "x" {
		t.Fatalf("OK = %+v", r)
	}
}
