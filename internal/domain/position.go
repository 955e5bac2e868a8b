package domain

// Position is a job role offered at a branch.
type Position struct {
	Model
	BranchID    int64   `gorm:"not null;index" json:"branch_id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `json:"description"`
	SoftDelete
}

// TableName implements gorm's schema.Tabler.
func (Position) TableName() string { return "position" }
