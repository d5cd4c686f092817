package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/middleware"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/types"
)

type PreferencesHandler struct {
	preferences service.IPreferenceService
	auth        middleware.TokenValidator
}

func NewPreferencesHandler(preferences service.IPreferenceService, auth middleware.TokenValidator) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences, auth: auth}
}

func (h *PreferencesHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.auth))
	{
		profile.GET("/preferences", h.GetPreferences)
		profile.PUT("/preferences", h.UpdatePreferences)
	}
}

func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	profile, err := h.preferences.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req types.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := h.preferences.UpdateProfile(c.Request.Context(), *userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
