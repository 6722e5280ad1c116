package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"porter-saathi/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Porter Saathi API is running"
	HealthVersion = "1.0.0"
	ServiceName   = "porter-saathi"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// apiHealthCheck is the plain-text health probe kept for the mobile client.
// @Summary API Health Check
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Porter Saathi API is running"
// @Router /api/health [get]
func (srv *HTTPServer) apiHealthCheck(c *gin.Context) {
	c.String(http.StatusOK, HealthMessage)
}

// readyCheck runs every readiness probe.
// @Summary Readiness Check
// @Description Check if the API and its dependencies are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	for _, r := range srv.readiness {
		if err := r.Check(c); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %s: %v", r.Name, err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   r.Name + " not ready",
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
