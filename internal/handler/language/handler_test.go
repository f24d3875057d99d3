package language

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/language"
)

func TestListLanguages(t *testing.T) {
	r := chi.NewRouter()
	New(language.MustDirectory(language.Seed())).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/languages", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got []languageView
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 languages, got %d", len(got))
	}
	if got[1].Name != "Hindi" || got[1].Code != "hi" {
		t.Fatalf("unexpected second language %+v", got[1])
	}
	if got[1].NativeName == "" {
		t.Fatal("native name should be filled")
	}
}
