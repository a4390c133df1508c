// internal/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/custom-creations-api/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/projects
func (h *CatalogHandler) GetProjects(c *gin.Context) {
	projects, err := h.catalogService.ListProjects(c.Request.Context(), c.Query("service"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// POST /api/seed
func (h *CatalogHandler) Seed(c *gin.Context) {
	summary, err := h.catalogService.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": summary.Products,
		"projects": summary.Projects,
	})
}
