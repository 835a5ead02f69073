package repository

import (
	"fmt"

	"github.com/kutbudev/gearstore/pkg/models"
	"gorm.io/gorm"
)

func ptr(v uint) *uint { return &v }

// Seed populates an empty store with the sample catalog. Ordering
// matters: products reference categories, pairings reference both
// products and tags.
func Seed(db *gorm.DB) error {
	categories := []models.Category{
		{CategoryName: "Shirts"},
		{CategoryName: "Shorts"},
		{CategoryName: "Music"},
		{CategoryName: "Hats"},
		{CategoryName: "Shoes"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	tags := []models.Tag{
		{TagName: "rock music"},
		{TagName: "pop music"},
		{TagName: "blue"},
		{TagName: "red"},
		{TagName: "green"},
		{TagName: "white"},
		{TagName: "gold"},
		{TagName: "pop culture"},
	}
	if err := db.Create(&tags).Error; err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}

	products := []models.Product{
		{ProductName: "Plain T-Shirt", Price: 14.99, Stock: 14, CategoryID: ptr(categories[0].ID)},
		{ProductName: "Running Sneakers", Price: 90, Stock: 25, CategoryID: ptr(categories[4].ID)},
		{ProductName: "Branded Baseball Hat", Price: 22.99, Stock: 12, CategoryID: ptr(categories[3].ID)},
		{ProductName: "Top 40 Music Compilation Double CD", Price: 12.99, Stock: 50, CategoryID: ptr(categories[2].ID)},
		{ProductName: "Cargo Shorts", Price: 29.99, Stock: 22, CategoryID: ptr(categories[1].ID)},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	pairings := []models.ProductTag{
		{ProductID: products[0].ID, TagID: tags[5].ID},
		{ProductID: products[0].ID, TagID: tags[6].ID},
		{ProductID: products[0].ID, TagID: tags[7].ID},
		{ProductID: products[1].ID, TagID: tags[5].ID},
		{ProductID: products[2].ID, TagID: tags[0].ID},
		{ProductID: products[2].ID, TagID: tags[2].ID},
		{ProductID: products[2].ID, TagID: tags[3].ID},
		{ProductID: products[2].ID, TagID: tags[4].ID},
		{ProductID: products[3].ID, TagID: tags[0].ID},
		{ProductID: products[3].ID, TagID: tags[1].ID},
		{ProductID: products[3].ID, TagID: tags[7].ID},
		{ProductID: products[4].ID, TagID: tags[2].ID},
	}
	if err := db.Create(&pairings).Error; err != nil {
		return fmt.Errorf("failed to seed product tags: %w", err)
	}

	return nil
}
