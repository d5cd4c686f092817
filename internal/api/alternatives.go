package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/types"
)

type AlternativesHandler struct {
	alternatives service.IAlternativeService
}

func NewAlternativesHandler(alternatives service.IAlternativeService) *AlternativesHandler {
	return &AlternativesHandler{alternatives: alternatives}
}

func (h *AlternativesHandler) RegisterRoutes(router *gin.RouterGroup) {
	alts := router.Group("/alternatives")
	{
		alts.GET("", h.ByThreshold)
		alts.GET("/category", h.ByCategory)
	}
}

// ByThreshold finds products rated above a 0-10 safety score.
func (h *AlternativesHandler) ByThreshold(c *gin.Context) {
	var req types.ThresholdAlternativesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.alternatives.ForThreshold(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ByCategory runs the tiered search against a 0-100 risk score.
func (h *AlternativesHandler) ByCategory(c *gin.Context) {
	var req types.CategoryAlternativesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	set, err := h.alternatives.ForCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}
