package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akio-byte/aki-eduro/internal/shared/config"
)

func TestHealthEndpoint(t *testing.T) {
	r := NewRouter(config.Load())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["ok"] != true {
		t.Errorf("ok = %v, want true", body["ok"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(config.Load())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestGenerateElfImageWithoutCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	r := NewRouter(config.Load())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-elf-image", nil)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Missing body is rejected before the credential check.
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9090":  ":9090",
		":7777": ":7777",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
