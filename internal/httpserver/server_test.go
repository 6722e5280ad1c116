package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"porter-saathi/config"
	"porter-saathi/internal/assistant/usecase"
	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/driver/repository/memory"
	"porter-saathi/internal/httpserver"
	"porter-saathi/internal/knowledge"
	"porter-saathi/internal/middleware"
	"porter-saathi/internal/model"
	"porter-saathi/internal/router"
	"porter-saathi/pkg/log"
)

func newServer(t *testing.T, env string, readiness ...httpserver.ReadinessCheck) http.Handler {
	t.Helper()
	l := log.NewNop()

	repo := memory.New(l)
	if err := repository.Seed(context.Background(), repo, model.DateOf(time.Now())); err != nil {
		t.Fatalf("seed: %v", err)
	}
	rt := router.New(l)
	uc := usecase.New(l, repo, rt, knowledge.Default(), nil, usecase.Options{})

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: env,
		Middleware:  middleware.New(l, middleware.Config{}),
		AssistantUC: uc,
		Router:      rt,
		Readiness:   readiness,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func get(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, config.EnvironmentDevelopment)

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := get(h, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}

	w := get(h, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || w.Body.String() != httpserver.HealthMessage {
		t.Errorf("unexpected /api/health reply %d %q", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Errorf("request id middleware not installed")
	}
}

func TestAssistantRoutesMounted(t *testing.T) {
	h := newServer(t, config.EnvironmentDevelopment)

	w := get(h, http.MethodPost, "/api/query", `{"driverId":"driver123","query":"Namaste"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Porter Saathi") {
		t.Errorf("unexpected query reply %d %s", w.Code, w.Body.String())
	}

	if w := get(h, http.MethodGet, "/api/driver/driver123", ""); w.Code != http.StatusOK {
		t.Errorf("driver detail: expected 200, got %d", w.Code)
	}
	if w := get(h, http.MethodGet, "/api/commands", ""); w.Code != http.StatusOK {
		t.Errorf("commands: expected 200, got %d", w.Code)
	}
}

func TestClassifyRouteOnlyOutsideProduction(t *testing.T) {
	body := `{"text":"Namaste"}`

	if w := get(newServer(t, config.EnvironmentDevelopment), http.MethodPost, "/test/classify", body); w.Code != http.StatusOK {
		t.Errorf("development: expected 200, got %d", w.Code)
	}
	if w := get(newServer(t, config.EnvironmentProduction), http.MethodPost, "/test/classify", body); w.Code != http.StatusNotFound {
		t.Errorf("production: expected 404, got %d", w.Code)
	}
}

func TestReadinessFailure(t *testing.T) {
	h := newServer(t, config.EnvironmentDevelopment, httpserver.ReadinessCheck{
		Name:  "postgres",
		Check: func(*gin.Context) error { return errors.New("connection refused") },
	})

	if w := get(h, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Errorf("expected error without assistant usecase")
	}
}
