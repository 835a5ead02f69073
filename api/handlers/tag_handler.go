package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/gearstore/pkg/models"
	"gorm.io/gorm"
)

// TagInput DTO for creating or renaming a tag
type TagInput struct {
	TagName string `json:"tag_name" binding:"required"`
}

// ListTags returns every tag including the products it labels.
func (h *Handler) ListTags(c *gin.Context) {
	var tags []models.Tag
	if err := h.db.Preload("Products").Find(&tags).Error; err != nil {
		log.Printf("list tags: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}

	for i := range tags {
		if tags[i].Products == nil {
			tags[i].Products = []models.Product{}
		}
	}

	c.JSON(http.StatusOK, tags)
}

// GetTag retrieves a single tag by its ID including the products it labels.
func (h *Handler) GetTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var tag models.Tag
	if err := h.db.Preload("Products").First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No tag found with that id!"})
			return
		}
		log.Printf("get tag %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tag"})
		return
	}

	if tag.Products == nil {
		tag.Products = []models.Product{}
	}

	c.JSON(http.StatusOK, tag)
}

// CreateTag creates a new tag.
func (h *Handler) CreateTag(c *gin.Context) {
	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag_name is required"})
		return
	}

	tag := models.Tag{TagName: input.TagName}
	if err := h.db.Create(&tag).Error; err != nil {
		log.Printf("create tag: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create tag"})
		return
	}

	tag.Products = []models.Product{}
	c.JSON(http.StatusOK, tag)
}

// UpdateTag renames the tag matching the ID and responds with the
// updated entity.
func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag_name is required"})
		return
	}

	res := h.db.Model(&models.Tag{}).Where("id = ?", id).Update("tag_name", input.TagName)
	if res.Error != nil {
		log.Printf("update tag %d: %v", id, res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No tag found with that id!"})
		return
	}

	var tag models.Tag
	if err := h.db.Preload("Products").First(&tag, id).Error; err != nil {
		log.Printf("reload tag %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tag"})
		return
	}
	if tag.Products == nil {
		tag.Products = []models.Product{}
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes the tag matching the ID. The store cascades the
// tag's product pairings away with it.
func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Tag{}, id)
	if res.Error != nil {
		log.Printf("delete tag %d: %v", id, res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No tag found with that id!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
