package models

// Tag labels products across categories
type Tag struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TagName string `json:"tag_name"`

	// Many-to-Many Relations
	Products []Product `json:"products" gorm:"many2many:product_tags;constraint:OnDelete:CASCADE"`
}
