package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := services.NewTransactionService(storage.NewMemoryStore(), nil)
	srv := NewServer(":0", svc, Options{RateLimitPerMinute: 1000})
	t.Cleanup(func() { srv.rateLimiter.Stop() })
	return srv
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Finance Tracker") {
		t.Fatalf("index body missing heading")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestIndexCarriesThemeToggle(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler.ServeHTTP(rr, req)

	body := rr.Body.String()
	if !strings.Contains(body, `id="theme-toggle"`) {
		t.Errorf("index missing theme toggle button")
	}
	// Early theme script must load from the head so the saved/system theme
	// applies before first paint.
	if !strings.Contains(body, `/static/theme.js`) {
		t.Errorf("index missing theme bootstrap script")
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rr.Header().Get("Content-Security-Policy"); got == "" {
		t.Errorf("missing Content-Security-Policy header")
	}
}

func TestSummaryPartialRenders(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transactions",
		strings.NewReader(`{"amount":42.5,"date":"2024-03-01","description":"groceries","category":"Food"}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("seed create status=%d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ui/summary", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("summary partial status=%d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "₹42.50") {
		t.Errorf("summary missing total: %s", body)
	}
	if !strings.Contains(body, "Food") {
		t.Errorf("summary missing top category: %s", body)
	}
}

func TestListPartialRenders(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ui/transactions", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("list partial status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No transactions yet") {
		t.Errorf("empty list should render placeholder: %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/transactions",
		strings.NewReader(`{"amount":12,"date":"2024-03-02","description":"bus ticket","category":"Transport"}`))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("seed create status=%d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ui/transactions", nil)
	srv.Handler.ServeHTTP(rr, req)
	if !strings.Contains(rr.Body.String(), "bus ticket") {
		t.Errorf("list partial missing row: %s", rr.Body.String())
	}
}

func TestRateLimitOnMutations(t *testing.T) {
	svc := services.NewTransactionService(storage.NewMemoryStore(), nil)
	srv := NewServer(":0", svc, Options{RateLimitPerMinute: 2})
	defer srv.rateLimiter.Stop()

	body := `{"amount":1,"date":"2024-01-01","description":"x","category":"Other"}`
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusCreated {
			t.Fatalf("request %d status=%d", i, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q", rr.Header().Get("Retry-After"))
	}

	// Reads are never rate limited.
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("read after limit status=%d", rr.Code)
	}
}
