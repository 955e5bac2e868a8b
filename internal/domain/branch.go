package domain

// Branch is a physical store location.
type Branch struct {
	Model
	Name          string `gorm:"size:255;not null" json:"name"`
	Location      string `gorm:"size:255;not null" json:"location"`
	ContactNumber string `gorm:"size:20;not null" json:"contact_number"`
	SoftDelete
}

// TableName implements gorm's schema.Tabler.
func (Branch) TableName() string { return "branch" }
