package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/middleware"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/types"
)

// SafetyHandler serves label analysis.
type SafetyHandler struct {
	analysis service.IAnalysisService
	auth     middleware.TokenValidator
	limiter  *middleware.RateLimiter
}

// NewSafetyHandler accepts a nil limiter.
func NewSafetyHandler(analysis service.IAnalysisService, auth middleware.TokenValidator, limiter *middleware.RateLimiter) *SafetyHandler {
	return &SafetyHandler{analysis: analysis, auth: auth, limiter: limiter}
}

func (h *SafetyHandler) RegisterRoutes(router *gin.RouterGroup) {
	chain := []gin.HandlerFunc{middleware.OptionalAuth(h.auth)}
	if h.limiter != nil {
		chain = append(chain, h.limiter.RateLimitMiddleware())
	}
	chain = append(chain, h.Analyze)

	safety := router.Group("/safety")
	safety.POST("/analyze", chain...)
}

// Analyze scores a label for the caller. Anonymous callers get the default profile.
func (h *SafetyHandler) Analyze(c *gin.Context) {
	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.analysis.Analyze(c.Request.Context(), req, middleware.UserIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
