package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/middleware"
	"porter-saathi/internal/router"
	"porter-saathi/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Assistant domain
	assistantUC assistant.UseCase
	router      router.Router

	// Realtime channel
	wsHandler gin.HandlerFunc

	// Readiness probes, e.g. a database ping
	readiness []ReadinessCheck
}

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck struct {
	Name  string
	Check func(*gin.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Assistant domain
	AssistantUC assistant.UseCase
	Router      router.Router

	// Realtime channel, mounted at /ws when set
	WebSocketHandler gin.HandlerFunc

	Readiness []ReadinessCheck
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		assistantUC: cfg.AssistantUC,
		router:      cfg.Router,
		wsHandler:   cfg.WebSocketHandler,
		readiness:   cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	return nil
}
