package models

// Product represents a sellable item in the catalog
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ProductName string  `json:"product_name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null;type:decimal(10,2);check:price >= 0"`
	Stock       int     `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	CategoryID  *uint   `json:"category_id" gorm:"index"`

	// Foreign Key Relations
	Category *Category `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`

	// Many-to-Many Relations
	Tags []Tag `json:"tags" gorm:"many2many:product_tags;constraint:OnDelete:CASCADE"`
}

// ProductTag is the junction record pairing a product with a tag.
// Its lifecycle is owned entirely by the product create/update flows;
// it is never exposed through a route of its own.
type ProductTag struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	ProductID uint `json:"product_id" gorm:"not null;index"`
	TagID     uint `json:"tag_id" gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ProductTag) TableName() string {
	return "product_tags"
}
