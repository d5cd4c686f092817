package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/middleware"
	"github.com/pageza/labellens/backend/internal/service"
)

type HistoryHandler struct {
	history service.IHistoryService
	auth    middleware.TokenValidator
}

func NewHistoryHandler(history service.IHistoryService, auth middleware.TokenValidator) *HistoryHandler {
	return &HistoryHandler{history: history, auth: auth}
}

func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/history", middleware.AuthMiddleware(h.auth), h.List)
}

// List returns the caller's latest scans, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	entries, err := h.history.List(c.Request.Context(), *userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}
