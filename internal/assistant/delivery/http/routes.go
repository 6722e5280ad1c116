package http

import (
	"github.com/gin-gonic/gin"

	"porter-saathi/internal/middleware"
)

// RegisterRoutes maps the assistant API under rg. Query and emergency calls
// are rate limited per driver.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RateLimit(), h.Query)
	rg.POST("/emergency/:driverId", mw.RateLimit(), h.Emergency)
	rg.GET("/commands", h.Commands)

	drivers := rg.Group("/driver")
	{
		drivers.GET("/:id", h.Detail)
		drivers.PUT("/:id", h.Upsert)
		drivers.PUT("/:id/earnings/:date", h.SetEarnings)
	}
}
