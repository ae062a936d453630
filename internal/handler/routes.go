package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API v1 routes
func RegisterRoutes(router gin.IRouter, catalogHandler *CatalogHandler, contactHandler *ContactHandler) {
	apiV1 := router.Group("/api/v1")
	{
		// Catalog endpoints
		apiV1.GET("/catalogs", catalogHandler.ListCatalogs)
		apiV1.GET("/catalogs/:catalog/homes", catalogHandler.Browse)

		// Home endpoints
		apiV1.GET("/homes/featured", catalogHandler.Featured)
		apiV1.GET("/homes/:id", catalogHandler.GetHome)
		apiV1.GET("/manufacturers", catalogHandler.Manufacturers)

		// Contact form
		apiV1.POST("/contact", contactHandler.Submit)
	}
}
