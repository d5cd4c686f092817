package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/middleware"
	"github.com/pageza/labellens/backend/internal/service"
)

// AdminHandler exposes reference catalog administration.
type AdminHandler struct {
	catalog service.ICatalogAdminService
	auth    middleware.TokenValidator
}

func NewAdminHandler(catalog service.ICatalogAdminService, auth middleware.TokenValidator) *AdminHandler {
	return &AdminHandler{catalog: catalog, auth: auth}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.auth), middleware.RequireAdmin())
	{
		admin.GET("/additives", h.Status)
		admin.POST("/additives/reload", h.Reload)
	}
}

func (h *AdminHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Status())
}

// Reload swaps in a fresh reference catalog. A failed reload leaves the
// current snapshot serving and reports it alongside the error.
func (h *AdminHandler) Reload(c *gin.Context) {
	status, err := h.catalog.Reload(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "reference catalog reload failed",
			"message": err.Error(),
			"catalog": status,
		})
		return
	}
	c.JSON(http.StatusOK, status)
}
