package postgres

import (
	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/store"
	"gorm.io/gorm"
)

var (
	_ store.BranchStore      = (*ResourceStore[domain.Branch])(nil)
	_ store.CategoryStore    = (*ResourceStore[domain.Category])(nil)
	_ store.ProductStore     = (*ResourceStore[domain.Product])(nil)
	_ store.PositionStore    = (*ResourceStore[domain.Position])(nil)
	_ store.StaffStore       = (*ResourceStore[domain.Staff])(nil)
	_ store.InvoiceStore     = (*ResourceStore[domain.Invoice])(nil)
	_ store.InvoiceItemStore = (*ResourceStore[domain.InvoiceItem])(nil)
)

// NewBranchStore returns the branch repository.
func NewBranchStore(db *gorm.DB) *ResourceStore[domain.Branch] {
	return NewResourceStore[domain.Branch](db, ResourceOptions{
		Entity: "branch",
		Search: []string{"name", "location", "contact_number"},
	})
}

// NewCategoryStore returns the category repository.
func NewCategoryStore(db *gorm.DB) *ResourceStore[domain.Category] {
	return NewResourceStore[domain.Category](db, ResourceOptions{
		Entity: "category",
		Search: []string{"name", "description"},
	})
}

// NewProductStore returns the product repository.
func NewProductStore(db *gorm.DB) *ResourceStore[domain.Product] {
	return NewResourceStore[domain.Product](db, ResourceOptions{
		Entity:  "product",
		Search:  []string{"name", "description"},
		Filters: []string{"category_id"},
	})
}

// NewPositionStore returns the position repository.
func NewPositionStore(db *gorm.DB) *ResourceStore[domain.Position] {
	return NewResourceStore[domain.Position](db, ResourceOptions{
		Entity:  "position",
		Search:  []string{"name", "description"},
		Filters: []string{"branch_id"},
	})
}

// NewStaffStore returns the staff repository.
func NewStaffStore(db *gorm.DB) *ResourceStore[domain.Staff] {
	return NewResourceStore[domain.Staff](db, ResourceOptions{
		Entity:  "staff",
		Search:  []string{"name", "gender", "pob", "address", "phone", "nation_id_card"},
		Filters: []string{"position_id"},
	})
}

// NewInvoiceStore returns the invoice repository.
func NewInvoiceStore(db *gorm.DB) *ResourceStore[domain.Invoice] {
	return NewResourceStore[domain.Invoice](db, ResourceOptions{
		Entity:  "invoice",
		Filters: []string{"user_id"},
	})
}

// NewInvoiceItemStore returns the invoice item repository.
func NewInvoiceItemStore(db *gorm.DB) *ResourceStore[domain.InvoiceItem] {
	return NewResourceStore[domain.InvoiceItem](db, ResourceOptions{
		Entity:  "invoice item",
		Filters: []string{"invoice_id", "product_id"},
	})
}
