package domain

// Gender values accepted for staff records.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Genders lists the accepted gender values in display order.
var Genders = []string{GenderMale, GenderFemale, GenderOther}

// Staff is an employee holding a position.
type Staff struct {
	Model
	PositionID   int64  `gorm:"not null;index" json:"position_id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Gender       string `gorm:"size:10;not null" json:"gender"`
	DOB          Date   `gorm:"column:dob;type:date;not null" json:"dob"`
	POB          string `gorm:"column:pob;size:255;not null" json:"pob"`
	Address      string `gorm:"size:255;not null" json:"address"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	NationIDCard string `gorm:"size:50;not null" json:"nation_id_card"`
	SoftDelete
}

// TableName implements gorm's schema.Tabler.
func (Staff) TableName() string { return "staff" }
