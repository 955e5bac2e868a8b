package mocks

import (
	"errors"
	"strings"

	"github.com/phrazzld/mart-api/internal/service/auth"
)

const mockHashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher with a reversible,
// prefix-based "hash" so tests can seed users without bcrypt's cost.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// MockHash returns what MockPasswordHasher.Hash produces for password.
func MockHash(password string) string {
	return mockHashPrefix + password
}

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return MockHash(password), nil
}

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if !strings.HasPrefix(hashedPassword, mockHashPrefix) {
		return errors.New("mock: malformed hash")
	}
	if hashedPassword != MockHash(password) {
		return auth.ErrPasswordMismatch
	}
	return nil
}
