package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	const dashboard = "https://pitwall.driveahead.example.com"

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantVary    bool
		wantExposed bool
	}{
		{name: "configured origin", allowed: []string{dashboard}, method: http.MethodGet, origin: dashboard, wantStatus: http.StatusOK, wantOrigin: dashboard, wantVary: true, wantExposed: true},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: dashboard, wantStatus: http.StatusNoContent, wantOrigin: "*", wantExposed: true},
		{name: "unconfigured origin", allowed: []string{dashboard}, method: http.MethodGet, origin: "https://elsewhere.example.com", wantStatus: http.StatusOK},
		{name: "unconfigured preflight", allowed: []string{dashboard}, method: http.MethodOptions, origin: "https://elsewhere.example.com", wantStatus: http.StatusNoContent},
		{name: "same origin request", allowed: []string{" ", dashboard}, method: http.MethodGet, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tt.method, "/v1/standings/drivers", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin=%q want=%q", got, tt.wantOrigin)
			}
			if got := rec.Header().Get("Vary") == "Origin"; got != tt.wantVary {
				t.Fatalf("Vary Origin=%v want=%v", got, tt.wantVary)
			}
			if got := rec.Header().Get("Access-Control-Expose-Headers") == requestIDHeader; got != tt.wantExposed {
				t.Fatalf("exposes %s=%v want=%v", requestIDHeader, got, tt.wantExposed)
			}
			if tt.wantOrigin != "" {
				if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET,OPTIONS" {
					t.Fatalf("Access-Control-Allow-Methods=%q", got)
				}
			}
		})
	}
}
