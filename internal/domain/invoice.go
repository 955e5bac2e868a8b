package domain

import "github.com/shopspring/decimal"

// Invoice is a sale recorded by a user.
type Invoice struct {
	Model
	UserID int64           `gorm:"not null;index" json:"user_id"`
	Total  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	SoftDelete
}

// TableName implements gorm's schema.Tabler.
func (Invoice) TableName() string { return "invoice" }

// InvoiceItem is one product line on an invoice.
type InvoiceItem struct {
	Model
	InvoiceID int64           `gorm:"not null;index" json:"invoice_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Qty       int             `gorm:"not null" json:"qty"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	SoftDelete
}

// TableName implements gorm's schema.Tabler.
func (InvoiceItem) TableName() string { return "invoice_item" }
