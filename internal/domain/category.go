package domain

// Category groups products. Categories are removed outright on delete.
type Category struct {
	Model
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `json:"description"`
}

// TableName implements gorm's schema.Tabler.
func (Category) TableName() string { return "category" }
