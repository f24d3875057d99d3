package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTeapot)
	})
	h := CORS(next)

	cases := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantCalls  int
		wantOrigin string
	}{
		{"preflight short-circuits", http.MethodOptions, "http://localhost:5173", http.StatusNoContent, 0, "http://localhost:5173"},
		{"get passes through", http.MethodGet, "", http.StatusTeapot, 1, "*"},
		{"post reflects origin", http.MethodPost, "https://panel.example", http.StatusTeapot, 1, "https://panel.example"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls = 0
			req := httptest.NewRequest(tc.method, "/api/answers", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalls, calls)
			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
		})
	}
}
