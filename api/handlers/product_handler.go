package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/gearstore/pkg/models"
	"gorm.io/gorm"
)

// CreateProductInput DTO for creating a new product. TagIDs lists the
// tags to pair with the product; an absent field means no pairings.
type CreateProductInput struct {
	ProductName string  `json:"product_name" binding:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  *uint   `json:"category_id"`
	TagIDs      []uint  `json:"tagIds"`
}

// UpdateProductInput DTO for updating a product. Pointer fields
// distinguish "absent" from zero values: a nil TagIDs leaves the
// product's pairings untouched, an empty one clears them.
type UpdateProductInput struct {
	ProductName *string  `json:"product_name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryID  *uint    `json:"category_id"`
	TagIDs      *[]uint  `json:"tagIds"`
}

// ListProducts returns every product including its category and tags.
func (h *Handler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := h.db.Preload("Category").Preload("Tags").Find(&products).Error; err != nil {
		log.Printf("list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}

	for i := range products {
		if products[i].Tags == nil {
			products[i].Tags = []models.Tag{}
		}
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a single product by its ID including its
// category and tags.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.loadProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No product found with that id!"})
			return
		}
		log.Printf("get product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product and, when tag ids are supplied, its
// tag pairings. Both writes share one transaction so a rejected pairing
// never leaves a half-created product behind.
func (h *Handler) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_name is required"})
		return
	}

	product := models.Product{
		ProductName: input.ProductName,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		if len(input.TagIDs) == 0 {
			return nil
		}
		pairings := make([]models.ProductTag, 0, len(input.TagIDs))
		for _, tagID := range input.TagIDs {
			pairings = append(pairings, models.ProductTag{ProductID: product.ID, TagID: tagID})
		}
		return tx.Create(&pairings).Error
	})
	if err != nil {
		log.Printf("create product: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create product"})
		return
	}

	created, err := h.loadProduct(product.ID)
	if err != nil {
		log.Printf("reload product %d: %v", product.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateProduct applies whichever product fields the body supplies, and
// when tagIds is present replaces the product's tag pairings with the
// given set. All writes share one transaction; a failure at any step
// rolls back the rest. Responds with the product re-fetched after the
// update.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if input.ProductName != nil {
		updates["product_name"] = *input.ProductName
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		} else {
			var count int64
			if err := tx.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if input.TagIDs == nil {
			return nil
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.ProductTag{}).Error; err != nil {
			return err
		}
		if len(*input.TagIDs) == 0 {
			return nil
		}
		pairings := make([]models.ProductTag, 0, len(*input.TagIDs))
		for _, tagID := range *input.TagIDs {
			pairings = append(pairings, models.ProductTag{ProductID: id, TagID: tagID})
		}
		return tx.Create(&pairings).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No product found with that id!"})
			return
		}
		log.Printf("update product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	product, err := h.loadProduct(id)
	if err != nil {
		log.Printf("reload product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes the product matching the ID. The store cascades
// the product's tag pairings away with it.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		log.Printf("delete product %d: %v", id, res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No product found with that id!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}

// loadProduct fetches one product with its category and tags, with the
// tag list normalized to an empty slice when the product has none.
func (h *Handler) loadProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := h.db.Preload("Category").Preload("Tags").First(&product, id).Error; err != nil {
		return nil, err
	}
	if product.Tags == nil {
		product.Tags = []models.Tag{}
	}
	return &product, nil
}
