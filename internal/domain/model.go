package domain

import (
	"time"

	"gorm.io/gorm"
)

// Model holds the identity and timestamp columns every table carries.
type Model struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity returns the primary key.
func (m *Model) Identity() int64 { return m.ID }

// SetIdentity assigns the primary key.
func (m *Model) SetIdentity(id int64) { m.ID = id }

// Entity is implemented by every persisted type through Model.
type Entity interface {
	Identity() int64
	SetIdentity(id int64)
}

// SoftDelete marks a row as trashed instead of removing it. gorm excludes
// trashed rows from default queries once this is embedded.
type SoftDelete struct {
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// Trashed reports whether the row is in the trashed state.
func (s *SoftDelete) Trashed() bool { return s.DeletedAt.Valid }

// Trash moves the row to the trashed state.
func (s *SoftDelete) Trash(at time.Time) {
	s.DeletedAt = gorm.DeletedAt{Time: at, Valid: true}
}

// Untrash returns the row to the active state.
func (s *SoftDelete) Untrash() { s.DeletedAt = gorm.DeletedAt{} }

// SoftDeletable is implemented by entities embedding SoftDelete.
type SoftDeletable interface {
	Trashed() bool
	Trash(at time.Time)
	Untrash()
}

// IsSoftDeletable reports whether values of T use the trashed lifecycle.
func IsSoftDeletable[T any]() bool {
	_, ok := any(new(T)).(SoftDeletable)
	return ok
}
