package handler

import (
	"errors"
	"net/http"

	"homecatalog/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListCatalogs handles GET /api/v1/catalogs
func (h *CatalogHandler) ListCatalogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":  h.catalogService.Version(),
		"catalogs": h.catalogService.Catalogs(),
	})
}

// Browse handles GET /api/v1/catalogs/:catalog/homes
func (h *CatalogHandler) Browse(c *gin.Context) {
	view, err := h.catalogService.Browse(c.Param("catalog"), c.Request.URL.Query())
	if err != nil {
		if errors.Is(err, service.ErrCatalogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catalog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to browse catalog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetHome handles GET /api/v1/homes/:id
func (h *CatalogHandler) GetHome(c *gin.Context) {
	home := h.catalogService.GetHome(c.Param("id"))
	if home == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Home not found"})
		return
	}

	c.JSON(http.StatusOK, home)
}

// Featured handles GET /api/v1/homes/featured
func (h *CatalogHandler) Featured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"homes": h.catalogService.Featured()})
}

// Manufacturers handles GET /api/v1/manufacturers
func (h *CatalogHandler) Manufacturers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"manufacturers": h.catalogService.Manufacturers()})
}
