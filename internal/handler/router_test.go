package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/language"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
)

func TestRouterServesCatalogues(t *testing.T) {
	r := NewRouter(persona.NewMemoryStore(persona.Seed()), language.MustDirectory(language.Seed()), nil)

	for _, path := range []string{"/healthz", "/api/personas", "/api/languages"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
		if resp.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Fatalf("%s: missing CORS header", path)
		}
	}
}

func TestRouterWithoutOrchestrator(t *testing.T) {
	r := NewRouter(persona.NewMemoryStore(persona.Seed()), language.MustDirectory(language.Seed()), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/answers", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
