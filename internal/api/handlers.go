package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/service"
)

// Version is reported by the health check.
var Version = "dev"

type HealthHandler struct {
	catalog service.ICatalogAdminService
}

func NewHealthHandler(catalog service.ICatalogAdminService) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// HealthCheck reports the API as healthy even when the reference catalog is
// not loaded; analysis keeps working in degraded mode.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	catalog := h.catalog.Status()
	if !catalog.Loaded {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"message": "LabelLens API is running",
		"version": Version,
		"catalog": catalog,
	})
}
