package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors
var (
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User is an operator account. Password holds the bcrypt hash and is never
// rendered.
type User struct {
	Model
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	StaffID  int64  `gorm:"not null" json:"staff_id"`
}

// TableName implements gorm's schema.Tabler.
func (User) TableName() string { return "users" }

// NewUser builds a user from already-hashed credentials.
func NewUser(name, email, hashedPassword string, staffID int64) (*User, error) {
	u := &User{
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashedPassword,
		StaffID:  staffID,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the invariants the datastore relies on.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	at := strings.LastIndex(u.Email, "@")
	if at <= 0 || at == len(u.Email)-1 {
		return ErrInvalidEmail
	}
	if u.Password == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// RevokedToken records a logged-out token until it would have expired anyway.
type RevokedToken struct {
	JTI       string    `gorm:"column:jti;primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName implements gorm's schema.Tabler.
func (RevokedToken) TableName() string { return "revoked_tokens" }
