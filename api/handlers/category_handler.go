package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/gearstore/pkg/models"
	"gorm.io/gorm"
)

// CategoryInput DTO for creating or renaming a category
type CategoryInput struct {
	CategoryName string `json:"category_name" binding:"required"`
}

// ListCategories returns every category including its associated products.
func (h *Handler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Preload("Products").Find(&categories).Error; err != nil {
		log.Printf("list categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	for i := range categories {
		if categories[i].Products == nil {
			categories[i].Products = []models.Product{}
		}
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a single category by its ID including its
// associated products.
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	if err := h.db.Preload("Products").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No category found with that id!"})
			return
		}
		log.Printf("get category %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		return
	}

	if category.Products == nil {
		category.Products = []models.Product{}
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a new category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_name is required"})
		return
	}

	category := models.Category{CategoryName: input.CategoryName}
	if err := h.db.Create(&category).Error; err != nil {
		log.Printf("create category: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create category"})
		return
	}

	category.Products = []models.Product{}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory renames the category matching the ID and responds with
// the updated entity.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_name is required"})
		return
	}

	res := h.db.Model(&models.Category{}).Where("id = ?", id).Update("category_name", input.CategoryName)
	if res.Error != nil {
		log.Printf("update category %d: %v", id, res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No category found with that id!"})
		return
	}

	var category models.Category
	if err := h.db.Preload("Products").First(&category, id).Error; err != nil {
		log.Printf("reload category %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		return
	}
	if category.Products == nil {
		category.Products = []models.Product{}
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes the category matching the ID. Products in the
// category are kept; the store nulls their category_id.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		log.Printf("delete category %d: %v", id, res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No category found with that id!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
