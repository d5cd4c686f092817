package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/labellens/backend/internal/taxonomy"
)

type CategoryHandler struct {
	taxonomy *taxonomy.Taxonomy
}

func NewCategoryHandler(tax *taxonomy.Taxonomy) *CategoryHandler {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &CategoryHandler{taxonomy: tax}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.List)
}

func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.taxonomy.Groups()})
}
