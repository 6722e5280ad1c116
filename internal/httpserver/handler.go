package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"porter-saathi/config"
	assistantHTTP "porter-saathi/internal/assistant/delivery/http"
	"porter-saathi/internal/test"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger(), gin.Recovery())
	srv.gin.Use(srv.mw.RequestID(), srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == config.EnvironmentProduction {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase (in cmd/api, injected through Config)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	api.GET("/health", srv.apiHealthCheck)

	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Assistant domain registered under /api")

	if srv.wsHandler != nil {
		srv.gin.GET("/ws", srv.wsHandler)
		srv.l.Infof(ctx, "WebSocket route registered at GET /ws")
	} else {
		srv.l.Infof(ctx, "WebSocket handler not configured, skipping /ws")
	}

	if srv.router != nil && srv.environment != config.EnvironmentProduction {
		th := test.New(srv.l, srv.router)
		srv.gin.POST("/test/classify", th.HandleClassify)
		srv.l.Infof(ctx, "Debug route registered at POST /test/classify")
	}

	return nil
}
