package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/service"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrMissingCategory),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrUnknownPreference):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, alternatives.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "product catalog unavailable"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Message: err.Error()})
}
