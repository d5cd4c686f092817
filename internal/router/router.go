package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/api"
	"github.com/pageza/labellens/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(services api.Services, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.ErrorHandler(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(allowedOrigins),
	)

	api.SetupAPI(router, services)
	return router
}
