package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/middleware"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/taxonomy"
)

// Services are the dependencies behind the HTTP surface.
type Services struct {
	Analysis       service.IAnalysisService
	Alternatives   service.IAlternativeService
	Preferences    service.IPreferenceService
	History        service.IHistoryService
	Catalog        service.ICatalogAdminService
	Auth           middleware.TokenValidator
	Taxonomy       *taxonomy.Taxonomy
	AnalyzeLimiter *middleware.RateLimiter
}

// SetupAPI registers every route on router.
func SetupAPI(router *gin.Engine, s Services) {
	router.GET("/health", NewHealthHandler(s.Catalog).HealthCheck)

	v1 := router.Group("/api/v1")
	{
		NewSafetyHandler(s.Analysis, s.Auth, s.AnalyzeLimiter).RegisterRoutes(v1)
		NewAlternativesHandler(s.Alternatives).RegisterRoutes(v1)
		NewCategoryHandler(s.Taxonomy).RegisterRoutes(v1)
		NewPreferencesHandler(s.Preferences, s.Auth).RegisterRoutes(v1)
		NewHistoryHandler(s.History, s.Auth).RegisterRoutes(v1)
		NewAdminHandler(s.Catalog, s.Auth).RegisterRoutes(v1)
	}
}
