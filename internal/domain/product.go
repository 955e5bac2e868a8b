package domain

import "github.com/shopspring/decimal"

// Product is an item offered for sale in a category.
type Product struct {
	Model
	Name        string          `gorm:"size:255;not null" json:"name"`
	Cost        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Image       *string         `gorm:"size:255" json:"image"`
	Description *string         `json:"description"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	SoftDelete
}

// TableName implements gorm's schema.Tabler.
func (Product) TableName() string { return "product" }
