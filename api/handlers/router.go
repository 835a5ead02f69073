package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the catalog routes onto a gin engine.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	h := New(db)

	// Ping endpoint for health check
	r.GET("/ping", h.Ping)

	api := r.Group("/api")
	{
		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories/:id", h.GetCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		api.GET("/products", h.ListProducts)
		api.POST("/products", h.CreateProduct)
		api.GET("/products/:id", h.GetProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		api.GET("/tags", h.ListTags)
		api.POST("/tags", h.CreateTag)
		api.GET("/tags/:id", h.GetTag)
		api.PUT("/tags/:id", h.UpdateTag)
		api.DELETE("/tags/:id", h.DeleteTag)
	}

	return r
}
