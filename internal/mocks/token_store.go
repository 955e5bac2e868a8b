package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/mart-api/internal/store"
)

// MockTokenStore implements store.TokenStore in memory.
type MockTokenStore struct {
	RevokeFn       func(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevokedFn    func(ctx context.Context, jti string) (bool, error)
	PurgeExpiredFn func(ctx context.Context, now time.Time) (int64, error)

	// Revoked maps token ids to their expiry.
	Revoked map[string]time.Time

	mu sync.Mutex
}

var _ store.TokenStore = (*MockTokenStore)(nil)

// NewMockTokenStore creates an empty token store.
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{Revoked: make(map[string]time.Time)}
}

// Revoke implements store.TokenStore.
func (m *MockTokenStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, jti, expiresAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Revoked[jti]; !ok {
		m.Revoked[jti] = expiresAt
	}
	return nil
}

// IsRevoked implements store.TokenStore.
func (m *MockTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.IsRevokedFn != nil {
		return m.IsRevokedFn(ctx, jti)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Revoked[jti]
	return ok, nil
}

// PurgeExpired implements store.TokenStore.
func (m *MockTokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.PurgeExpiredFn != nil {
		return m.PurgeExpiredFn(ctx, now)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for jti, exp := range m.Revoked {
		if !exp.After(now) {
			delete(m.Revoked, jti)
			n++
		}
	}
	return n, nil
}
