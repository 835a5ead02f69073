package models

// Category represents a product category in the catalog
type Category struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CategoryName string `json:"category_name" gorm:"not null"`

	// One-to-Many Relations
	Products []Product `json:"products" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
