//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/platform/postgres"
	"github.com/phrazzld/mart-api/internal/store"
	"github.com/phrazzld/mart-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	users := postgres.NewPostgresUserStore(db)

	u, err := domain.NewUser("Dara", "dara@example.com", "$2a$10$hash", 1)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))
	require.NotZero(t, u.ID)

	dup, err := domain.NewUser("Other", "DARA@example.com", "$2a$10$hash", 2)
	require.NoError(t, err)
	dup.Email = "DARA@example.com"
	assert.ErrorIs(t, users.Create(ctx, dup), store.ErrEmailExists)

	got, err := users.GetByEmail(ctx, "Dara@Example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, users.UpdatePassword(ctx, u.ID, "$2a$10$newhash"))
	got, err = users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$newhash", got.Password)

	_, err = users.GetByID(ctx, u.ID+1)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.ErrorIs(t, users.UpdatePassword(ctx, u.ID+1, "x"), store.ErrUserNotFound)
}

func TestTokenStore(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	tokens := postgres.NewTokenStore(db)
	now := time.Now()

	require.NoError(t, tokens.Revoke(ctx, "live", now.Add(time.Hour)))
	require.NoError(t, tokens.Revoke(ctx, "live", now.Add(time.Hour)), "revoking twice is fine")
	require.NoError(t, tokens.Revoke(ctx, "stale", now.Add(-time.Minute)))

	revoked, err := tokens.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = tokens.IsRevoked(ctx, "never")
	require.NoError(t, err)
	assert.False(t, revoked)

	purged, err := tokens.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}
