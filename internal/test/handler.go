package test

import (
	"github.com/gin-gonic/gin"

	"porter-saathi/internal/router"
	pkgLog "porter-saathi/pkg/log"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleClassify runs the intent classifier without touching driver data
// @Summary Test intent classification
// @Description Classify a query and report the matching rule and keyword
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Query text"
// @Success 200 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	out := h.router.Classify(ctx, req.Text)

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q intent=%s rule=%d keyword=%q",
		req.Text, out.Intent, out.Rule, out.Keyword)

	c.JSON(200, ClassifyResponse{
		Success: true,
		Intent:  string(out.Intent),
		Rule:    out.Rule,
		Keyword: out.Keyword,
		Text:    req.Text,
	})
}
